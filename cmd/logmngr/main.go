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

// Command logmngr partitions plain-text log files by event time and
// answers regex queries restricted to a time window.
package main

import (
	"fmt"
	"os"

	"github.com/flaviut/logmngr/internal/i18n"
	"github.com/flaviut/logmngr/internal/renderer"
)

func main() {
	localizer := i18n.NewLocalizerFromEnv()

	logo := renderer.NewLogoRenderer(isTTY(), isTTY(), localizer.T("banner.tagline"))
	fmt.Fprint(os.Stderr, logo.GetASCIILogo())

	root := newRootCommand(localizer)
	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", localizer.T("term.failed"), err)
		os.Exit(1)
	}
}

func isTTY() bool {
	fi, err := os.Stdout.Stat()
	if err != nil {
		return false
	}
	return (fi.Mode() & os.ModeCharDevice) != 0
}
