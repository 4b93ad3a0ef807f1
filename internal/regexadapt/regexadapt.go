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

// Package regexadapt wraps github.com/dlclark/regexp2 behind the
// narrow surface the rest of the pipeline needs: compile a pattern
// once, read its named captures against one line, and iterate all
// non-overlapping matches in a larger buffer. Named-capture validation
// happens once at Compile time rather than per match.
//
// regexp2 compiles and matches over runes rather than bytes; callers
// that need byte-accurate match offsets (the partition searcher,
// attributing a match to a line by byte position) must go through
// IterateMatches, which already returns byte offsets.
package regexadapt

import (
	"sort"
	"strconv"
	"time"
	"unicode/utf8"

	"github.com/dlclark/regexp2"

	"github.com/flaviut/logmngr/internal/errs"
)

// matchTimeout bounds pathological backtracking. The original engine
// (pcre2 with JIT) never needed this; regexp2 has no JIT, so a timeout
// is the adapter's safety net in its place.
const matchTimeout = 5 * time.Second

// Regex is a compiled pattern together with its capture-name table.
// A *Regex is immutable after Compile and safe for concurrent use by
// multiple goroutines, matching spec's "the regex object is immutable
// and shareable" requirement.
type Regex struct {
	re      *regexp2.Regexp
	pattern string
	// names maps 1-based capture group number to its configured name.
	// Every entry present here is guaranteed non-numeric: Compile
	// rejects patterns with unnamed groups.
	names map[int]string
}

// Compile compiles pattern, trying regexp2's RE2-compatible syntax
// mode first and falling back to its default syntax mode for patterns
// that fail to compile there. Matching backtracks in both modes;
// matchTimeout is what bounds it. Every capturing group in pattern must
// be named; an unnamed group is treated as a pattern bug and rejected
// here rather than trapped during matching.
func Compile(pattern string) (*Regex, error) {
	re, err := regexp2.Compile(pattern, regexp2.RE2)
	if err != nil {
		re, err = regexp2.Compile(pattern, regexp2.None)
		if err != nil {
			return nil, errs.Wrap(errs.KindCompile, err, "compile regex "+strconv.Quote(pattern))
		}
	}
	re.MatchTimeout = matchTimeout

	names := make(map[int]string)
	for _, num := range re.GetGroupNumbers() {
		if num == 0 {
			continue
		}
		name := re.GroupNameFromNumber(num)
		if name == strconv.Itoa(num) {
			return nil, errs.New(errs.KindCompile,
				"capture group "+strconv.Itoa(num)+" in "+strconv.Quote(pattern)+" is unnamed")
		}
		names[num] = name
	}

	return &Regex{re: re, pattern: pattern, names: names}, nil
}

// String returns the original pattern text.
func (r *Regex) String() string { return r.pattern }

// OrderedNames returns every named capture group's name, ordered by
// increasing group number (group 0, the whole match, is never
// included). The line parser iterates captures in this order, matching
// "capture indices starting at 1".
func (r *Regex) OrderedNames() []string {
	nums := make([]int, 0, len(r.names))
	for num := range r.names {
		nums = append(nums, num)
	}
	sort.Ints(nums)

	names := make([]string, len(nums))
	for i, num := range nums {
		names[i] = r.names[num]
	}
	return names
}

// Captures is the field map produced by a successful ReadCaptures call:
// capture name to the substring of the subject it matched.
type Captures map[string]string

// ReadCaptures runs the regex against line and, on a match, returns the
// named-capture field map. Groups that did not participate in the
// match (e.g. inside an alternation branch that wasn't taken) are
// omitted, matching the original engine's "only iterate participating
// captures" behavior.
func (r *Regex) ReadCaptures(line string) (Captures, bool, error) {
	m, err := r.re.FindStringMatch(line)
	if err != nil {
		return nil, false, errs.Wrap(errs.KindParse, err, "regex match")
	}
	if m == nil {
		return nil, false, nil
	}

	out := make(Captures, len(r.names))
	for num, name := range r.names {
		g := m.GroupByNumber(num)
		if g == nil || len(g.Captures) == 0 {
			continue
		}
		out[name] = g.String()
	}
	return out, true, nil
}

// Match is one non-overlapping match found by IterateMatches, expressed
// as a byte range into the subject that was searched.
type Match struct {
	Start, End int
}

// IterateMatches finds every non-overlapping match of r in subject and
// calls fn with each match's byte offsets, in order. fn returning false
// stops iteration early. subject is assumed to already be validated
// UTF-8 (the decompressed partition stream), matching the original
// engine's "skip the UTF-8 check, upstream already validated it" design.
func (r *Regex) IterateMatches(subject string, fn func(Match) bool) error {
	if len(subject) == 0 {
		return nil
	}

	// regexp2 reports match Index/Length in runes, not bytes; build a
	// rune-index -> byte-offset table once so every match lookup below
	// is an O(1) slice index instead of a re-scan.
	runeByteOffset := make([]int, 0, len(subject)+1)
	byteOff := 0
	for _, ru := range subject {
		runeByteOffset = append(runeByteOffset, byteOff)
		byteOff += utf8.RuneLen(ru)
	}
	runeByteOffset = append(runeByteOffset, byteOff)

	m, err := r.re.FindStringMatch(subject)
	for err == nil && m != nil {
		match := Match{
			Start: runeByteOffset[m.Index],
			End:   runeByteOffset[m.Index+m.Length],
		}
		if !fn(match) {
			return nil
		}
		m, err = r.re.FindNextMatch(m)
	}
	if err != nil {
		return errs.Wrap(errs.KindPartitionRead, err, "regex iterate")
	}
	return nil
}
