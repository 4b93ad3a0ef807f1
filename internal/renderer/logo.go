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

// Package renderer draws the logmngr startup banner.
package renderer

import (
	"fmt"
	"os"
)

// LogoRenderer handles ASCII logo and branding elements.
type LogoRenderer struct {
	colorOutput bool
	isTTY       bool
	tagline     string
}

// NewLogoRenderer creates a new logo renderer. tagline is the localized
// value-proposition line printed under the logo.
func NewLogoRenderer(colorOutput, isTTY bool, tagline string) *LogoRenderer {
	return &LogoRenderer{colorOutput: colorOutput, isTTY: isTTY, tagline: tagline}
}

// ShouldShowLogo determines if the ASCII logo should be displayed.
// Only shows the logo on a TTY with color support, and respects NO_COLOR.
func (l *LogoRenderer) ShouldShowLogo() bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	return l.isTTY && l.colorOutput
}

// GetASCIILogo returns the logmngr ASCII logo with branding.
func (l *LogoRenderer) GetASCIILogo() string {
	if !l.ShouldShowLogo() {
		return ""
	}

	return fmt.Sprintf(`%s
 ██╗      ██████╗  ██████╗ ███╗   ███╗███╗   ██╗ ██████╗ ██████╗
 ██║     ██╔═══██╗██╔════╝ ████╗ ████║████╗  ██║██╔════╝ ██╔══██╗
 ██║     ██║   ██║██║  ███╗██╔████╔██║██╔██╗ ██║██║  ███╗██████╔╝
 ██║     ██║   ██║██║   ██║██║╚██╔╝██║██║╚██╗██║██║   ██║██╔══██╗
 ███████╗╚██████╔╝╚██████╔╝██║ ╚═╝ ██║██║ ╚████║╚██████╔╝██║  ██║
 ╚══════╝ ╚═════╝  ╚═════╝ ╚═╝     ╚═╝╚═╝  ╚═══╝ ╚═════╝ ╚═╝  ╚═╝
%s
 %s%s%s
`, l.getColor("green"), l.getColor("reset"), l.getColor("dim"), l.tagline, l.getColor("reset"))
}

// GetBrandingMessage returns the value proposition tagline.
func (l *LogoRenderer) GetBrandingMessage() string {
	if !l.colorOutput {
		return l.tagline
	}
	return fmt.Sprintf("%s%s%s", l.getColor("dim"), l.tagline, l.getColor("reset"))
}

// getColor returns ANSI color codes if color output is enabled.
func (l *LogoRenderer) getColor(colorName string) string {
	if !l.colorOutput {
		return ""
	}

	colors := map[string]string{
		"reset": "\033[0m",
		"bold":  "\033[1m",
		"dim":   "\033[2m",
		"red":   "\033[31m",
		"green": "\033[32m",
	}
	return colors[colorName]
}
