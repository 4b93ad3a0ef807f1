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

package search

import (
	"bufio"
	"bytes"
	"sort"
)

// batchTargetSize is the minimum number of bytes readBatch tries to
// accumulate before returning, amortizing per-batch overhead (line
// index construction, one regex pass, one vectored write) over many
// lines.
const batchTargetSize = 1 << 20

// readBatch reads from r until at least batchTargetSize bytes have
// been accumulated, always stopping at a line boundary so the batch
// returned contains a whole number of complete lines. The returned
// error is io.EOF at end of stream (with any final partial data still
// included in the batch) or a genuine read error.
func readBatch(r *bufio.Reader) ([]byte, error) {
	var buf []byte
	for len(buf) < batchTargetSize {
		chunk, err := r.ReadBytes('\n')
		buf = append(buf, chunk...)
		if err != nil {
			return buf, err
		}
	}
	return buf, nil
}

// buildLineIndex returns the sorted byte offsets at which lines begin
// within batch: 0, then the offset of every '\n'. bytes.IndexByte is
// Go's architecture-specific SIMD byte search, matching the "locate
// line boundaries via SIMD-accelerated byte search" requirement.
func buildLineIndex(batch []byte) []int {
	lineIndex := []int{0}
	offset := 0
	for {
		idx := bytes.IndexByte(batch[offset:], '\n')
		if idx == -1 {
			break
		}
		lineIndex = append(lineIndex, offset+idx)
		offset += idx + 1
	}
	return lineIndex
}

// findLine returns the index into lineIndex of the line containing
// byte offset pos: an exact hit returns that index, a miss returns the
// insertion point minus one (the line started before pos).
func findLine(lineIndex []int, pos int) int {
	i := sort.Search(len(lineIndex), func(i int) bool { return lineIndex[i] >= pos })
	if i < len(lineIndex) && lineIndex[i] == pos {
		return i
	}
	return i - 1
}
