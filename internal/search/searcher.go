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

// Package search implements the partition searcher (C8): decompress
// each partition overlapping a query window, locate line boundaries,
// run the compiled regex, and emit matching lines to standard output
// via a vectored write, preserving on-disk order within each
// partition.
//
// Grounded on original_source/src/readers.rs's IndexSearcher::search
// and search_partition; the rayon par_iter fan-out there is replaced
// by golang.org/x/sync/errgroup.
package search

import (
	"bufio"
	"context"
	"errors"
	"io"
	"os"
	"runtime"
	"sync"
	"syscall"

	"github.com/klauspost/compress/zstd"
	"golang.org/x/sync/errgroup"

	"github.com/flaviut/logmngr/internal/errs"
	"github.com/flaviut/logmngr/internal/index"
	"github.com/flaviut/logmngr/internal/regexadapt"
)

// Searcher scans a fixed set of partitions for matches of one compiled
// regex, fanning out across a worker pool. A Searcher is safe for
// concurrent use by its own internal workers; the regex it wraps is
// immutable and shareable, matching spec's ownership model.
type Searcher struct {
	regex   *regexadapt.Regex
	workers int
}

// NewSearcher returns a Searcher. workers <= 0 defaults to
// runtime.GOMAXPROCS(0).
func NewSearcher(regex *regexadapt.Regex, workers int) *Searcher {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	return &Searcher{regex: regex, workers: workers}
}

// Search scans every partition in partitions (already filtered by
// overlap against the query window) and writes matching lines to out.
// A broken pipe on out is treated as graceful shutdown: Search returns
// nil rather than propagating it.
func (s *Searcher) Search(ctx context.Context, partitions []index.Partition, out *os.File) error {
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(s.workers)

	var mu sync.Mutex
	for _, p := range partitions {
		p := p
		g.Go(func() error {
			return s.searchPartition(ctx, p, out, &mu)
		})
	}

	err := g.Wait()
	if isBrokenPipe(err) {
		return nil
	}
	return err
}

func (s *Searcher) searchPartition(ctx context.Context, p index.Partition, out *os.File, mu *sync.Mutex) error {
	file, err := os.Open(p.Path)
	if err != nil {
		return errs.Wrap(errs.KindPartitionRead, err, "open partition "+p.Path)
	}
	defer file.Close()

	zr, err := zstd.NewReader(file)
	if err != nil {
		return errs.Wrap(errs.KindPartitionRead, err, "open decompressor for "+p.Path)
	}
	defer zr.Close()

	reader := bufio.NewReaderSize(zr, batchTargetSize)
	for {
		select {
		case <-ctx.Done():
			return nil
		default:
		}

		batch, readErr := readBatch(reader)
		if len(batch) > 0 {
			if err := s.searchBatch(batch, out, mu); err != nil {
				return err
			}
		}
		if readErr == io.EOF {
			return nil
		}
		if readErr != nil {
			return errs.Wrap(errs.KindPartitionRead, readErr, "read partition "+p.Path)
		}
	}
}

// searchBatch implements the bitset-then-gather algorithm from spec
// section 4.8: build the line index, mark every line containing at
// least one match, then gather and emit the matched lines' byte
// ranges in on-disk order as a single vectored write.
func (s *Searcher) searchBatch(batch []byte, out *os.File, mu *sync.Mutex) error {
	lineIndex := buildLineIndex(batch)
	if len(lineIndex) <= 1 {
		return nil
	}

	bitset := make([]bool, len(lineIndex))
	err := s.regex.IterateMatches(string(batch), func(m regexadapt.Match) bool {
		if lineno := findLine(lineIndex, m.Start); lineno >= 0 && lineno < len(lineIndex)-1 {
			bitset[lineno] = true
		}
		return true
	})
	if err != nil {
		return errs.Wrap(errs.KindPartitionRead, err, "match partition batch")
	}

	var lines [][]byte
	for i := 0; i < len(lineIndex)-1; i++ {
		if !bitset[i] {
			continue
		}
		lineStart := lineIndex[i]
		if lineStart != 0 {
			lineStart++
		}
		lineEnd := lineIndex[i+1] + 1
		lines = append(lines, batch[lineStart:lineEnd])
	}
	if len(lines) == 0 {
		return nil
	}

	mu.Lock()
	defer mu.Unlock()
	if err := writeVectored(out, lines); err != nil {
		return errs.Wrap(errs.KindPartitionRead, err, "write matches")
	}
	return nil
}

func isBrokenPipe(err error) bool {
	return errors.Is(err, syscall.EPIPE)
}
