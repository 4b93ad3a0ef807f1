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
	"github.com/spf13/cobra"

	"github.com/flaviut/logmngr/internal/engine"
	"github.com/flaviut/logmngr/internal/i18n"
)

func newProcessCommand(localizer *i18n.Localizer) *cobra.Command {
	return &cobra.Command{
		Use:   "process <INPUT>...",
		Short: "Ingest log files into the partition index",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			logger := newLogger(cfg)
			e := engine.New(cfg, logger, localizer)
			_, err = e.Process(cmd.Context(), indexDir, args)
			return err
		},
	}
}
