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

package record

import (
	"fmt"
	"strings"

	"github.com/lestrrat-go/strftime"
)

// directiveLayouts maps the strftime directives the configured date
// format is expected to use to their Go reference-time layout
// equivalent.
var directiveLayouts = map[byte]string{
	'Y': "2006",
	'y': "06",
	'm': "01",
	'd': "02",
	'H': "15",
	'M': "04",
	'S': "05",
	'z': "-0700",
	'Z': "MST",
}

// compileDateFormat turns a strftime-style format string into a Go
// time layout usable with time.Parse/time.ParseInLocation.
//
// github.com/lestrrat-go/strftime only formats (time.Time -> string);
// it has no inverse, so the actual %-directive-to-layout translation
// below is hand-written. strftime.New is still used first, purely to
// validate the format against strftime's own directive grammar and
// fail fast on a typo'd directive before the translation table below
// (a strict subset of what strftime itself accepts) gets a chance to
// produce a more confusing "unsupported directive" error.
func compileDateFormat(format string) (string, error) {
	if _, err := strftime.New(format); err != nil {
		return "", fmt.Errorf("invalid date format %q: %w", format, err)
	}

	var layout strings.Builder
	for i := 0; i < len(format); i++ {
		if format[i] != '%' || i+1 >= len(format) {
			layout.WriteByte(format[i])
			continue
		}
		i++
		goToken, ok := directiveLayouts[format[i]]
		if !ok {
			return "", fmt.Errorf("unsupported date directive %%%c in %q", format[i], format)
		}
		layout.WriteString(goToken)
	}
	return layout.String(), nil
}
