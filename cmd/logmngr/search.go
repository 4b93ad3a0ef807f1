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
	"os"
	"time"

	"github.com/araddon/dateparse"
	"github.com/spf13/cobra"

	"github.com/flaviut/logmngr/internal/engine"
	"github.com/flaviut/logmngr/internal/errs"
	"github.com/flaviut/logmngr/internal/i18n"
)

var (
	fromFlag string
	toFlag   string
)

func newSearchCommand(localizer *i18n.Localizer) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "search <PATTERN>",
		Short: "Search partitions for a regex within a time window",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			from, err := parseOptionalDate(fromFlag, "--from")
			if err != nil {
				return err
			}
			to, err := parseOptionalDate(toFlag, "--to")
			if err != nil {
				return err
			}

			logger := newLogger(cfg)
			e := engine.New(cfg, logger, localizer)
			return e.Search(cmd.Context(), indexDir, args[0], from, to, os.Stdout)
		},
	}

	cmd.Flags().StringVar(&fromFlag, "from", "", "earliest timestamp to search (inclusive)")
	cmd.Flags().StringVar(&toFlag, "to", "", "latest timestamp to search (inclusive)")
	return cmd
}

func parseOptionalDate(value, flagName string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	t, err := dateparse.ParseAny(value)
	if err != nil {
		return nil, errs.Wrap(errs.KindCompile, err, "parse "+flagName)
	}
	return &t, nil
}
