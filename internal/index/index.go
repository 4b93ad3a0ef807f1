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

// Package index implements the BRIN-style partition index (C7):
// enumerate a directory, parse sealed-segment filenames into their
// declared time span, sort, and filter by query window.
//
// Grounded on original_source/src/readers.rs's IndexSearcher::load and
// parse_filename.
package index

import (
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strconv"

	"github.com/flaviut/logmngr/internal/errs"
)

// sealedNamePattern is the filename grammar from spec section 6:
// ^(-?\d+)-(-?\d+)-([A-Za-z0-9]{8})\.json\.zst$. A plain split on '-'
// (what the original source does) breaks on a leading '-' in the start
// timestamp; matching the documented grammar directly handles negative
// timestamps correctly instead of inheriting that bug.
var sealedNamePattern = regexp.MustCompile(`^(-?\d+)-(-?\d+)-[A-Za-z0-9]{8}\.json\.zst$`)

// Partition is one entry of the index: a sealed segment's declared
// time span and its path on disk.
type Partition struct {
	Start int64
	End   int64
	Path  string
}

// Index is an immutable, sorted list of partitions.
type Index struct {
	partitions []Partition
}

// Load scans directory's immediate entries and builds an Index from
// every name that parses as a sealed-segment filename. Names that do
// not match sealedNamePattern, or whose two timestamps don't fit in a
// signed 64-bit integer, are skipped silently — this naturally
// excludes in-flight ".part-*" files, whose first component isn't
// numeric.
func Load(directory string) (*Index, error) {
	entries, err := os.ReadDir(directory)
	if err != nil {
		return nil, errs.Wrap(errs.KindIndexLoad, err, "list partition directory")
	}

	partitions := make([]Partition, 0, len(entries))
	for _, entry := range entries {
		start, end, ok := parseFilename(entry.Name())
		if !ok {
			continue
		}
		partitions = append(partitions, Partition{
			Start: start,
			End:   end,
			Path:  filepath.Join(directory, entry.Name()),
		})
	}

	sort.Slice(partitions, func(i, j int) bool {
		if partitions[i].Start != partitions[j].Start {
			return partitions[i].Start < partitions[j].Start
		}
		return partitions[i].End < partitions[j].End
	})

	return &Index{partitions: partitions}, nil
}

func parseFilename(name string) (start, end int64, ok bool) {
	m := sealedNamePattern.FindStringSubmatch(name)
	if m == nil {
		return 0, 0, false
	}
	start, err := strconv.ParseInt(m[1], 10, 64)
	if err != nil {
		return 0, 0, false
	}
	end, err = strconv.ParseInt(m[2], 10, 64)
	if err != nil {
		return 0, 0, false
	}
	return start, end, true
}

// OverlapFilter returns the partitions whose declared span overlaps
// the inclusive window [from, to]: start <= to && end >= from.
func (idx *Index) OverlapFilter(from, to int64) []Partition {
	out := make([]Partition, 0, len(idx.partitions))
	for _, p := range idx.partitions {
		if p.Start <= to && p.End >= from {
			out = append(out, p)
		}
	}
	return out
}

// Len returns the number of partitions in the index.
func (idx *Index) Len() int {
	return len(idx.partitions)
}
