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

import "github.com/flaviut/logmngr/internal/regexadapt"

// Parser applies one compiled regex to a single line, producing a
// Record. Grounded on original_source/src/parsers.rs's RegexParser:
// capture indices are walked starting at 1, and a group that did not
// participate in the match is simply omitted rather than inserted
// empty.
//
// A Parser holds only its compiled Regex, which is immutable and safe
// for concurrent use; ingest still creates one Parser per input file.
type Parser struct {
	re *regexadapt.Regex
}

// NewParser wraps a compiled regex for line parsing.
func NewParser(re *regexadapt.Regex) *Parser {
	return &Parser{re: re}
}

// Parse matches line against the parser's regex. On a match, the
// returned Record holds one field per named capture that participated,
// in group-number order, and matched is true. On no match (including a
// regex engine error, treated the same as a miss), the Record holds a
// single "message" field set to the raw line and matched is false —
// the pipeline still continues with this record rather than dropping
// the line.
func (p *Parser) Parse(line string) (rec Record, matched bool) {
	rec = New()

	caps, ok, err := p.re.ReadCaptures(line)
	if err != nil || !ok {
		rec.Set("message", line)
		return rec, false
	}

	for _, name := range p.re.OrderedNames() {
		if value, participated := caps[name]; participated {
			rec.Set(name, value)
		}
	}
	return rec, true
}
