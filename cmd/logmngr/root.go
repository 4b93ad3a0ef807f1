// Copyright 2024-2025 logmngr authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/flaviut/logmngr/internal/config"
	"github.com/flaviut/logmngr/internal/i18n"
)

var (
	indexDir   string
	configPath string
	verbose    bool
)

func newRootCommand(localizer *i18n.Localizer) *cobra.Command {
	cmd := &cobra.Command{
		Use:          "logmngr",
		Short:        "Partition and search your logs",
		SilenceUsage: true,
	}

	cmd.PersistentFlags().StringVar(&indexDir, "index", ".", "partition index directory")
	cmd.PersistentFlags().StringVar(&configPath, "config", "", "YAML config file")
	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	cmd.AddCommand(newProcessCommand(localizer))
	cmd.AddCommand(newSearchCommand(localizer))
	return cmd
}

func loadConfig() (config.Config, error) {
	if configPath == "" {
		return config.Default(), nil
	}
	return config.Load(configPath)
}

func newLogger(cfg config.Config) *logrus.Logger {
	logger := logrus.New()
	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = logrus.InfoLevel
	}
	if verbose {
		level = logrus.DebugLevel
	}
	logger.SetLevel(level)
	return logger
}
