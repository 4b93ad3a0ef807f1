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

// Package ingest is the per-worker front end for the process
// subcommand: walk each input file, parse and augment every line, and
// hand the serialized record to the shared partition writer. Run fans
// out across input files; internal/engine calls it once per process
// run.
package ingest

import (
	"bufio"
	"context"
	"os"
	"runtime"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/flaviut/logmngr/internal/errs"
	"github.com/flaviut/logmngr/internal/ingestor"
	"github.com/flaviut/logmngr/internal/partition"
	"github.com/flaviut/logmngr/internal/record"
	"github.com/flaviut/logmngr/internal/regexadapt"
)

// scanBufferSize caps the length of a single line bufio.Scanner will
// accept before erroring, generously above any realistic log line.
const scanBufferSize = 1 << 20

// Pipeline holds the compiled, reusable pieces of the extraction
// pipeline shared by every file-ingest worker: the regex, the
// timestamp key it augments, and the date augmenter built from the
// configured strftime format and default timezone.
type Pipeline struct {
	Regex         *regexadapt.Regex
	TimestampKey  string
	DateAugmenter *record.DateAugmenter
}

// Run ingests every file in inputs into writer, fanning out across up
// to workers concurrent file-ingest workers. Workers share one
// ingestor.SliceIterator over inputs, each claiming the next
// unprocessed file as it finishes its current one, so a pool smaller
// than len(inputs) still keeps every worker busy until the list is
// drained. Each file's lines are processed strictly in order by
// whichever worker claims it; there is no ordering guarantee across
// files, matching the "worker pool, no cross-file ordering" model.
// Returns the combined Metrics for the whole run.
func Run(ctx context.Context, inputs []string, p Pipeline, writer *partition.Writer, workers int) (Metrics, error) {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	if workers > len(inputs) {
		workers = len(inputs)
	}

	files := ingestor.NewSliceIterator(inputs)
	var pullMu sync.Mutex
	next := func() (string, bool) {
		pullMu.Lock()
		defer pullMu.Unlock()
		if !files.Next() {
			return "", false
		}
		return files.Value(), true
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	var resultsMu sync.Mutex
	var total Metrics
	for n := 0; n < workers; n++ {
		g.Go(func() error {
			for {
				path, ok := next()
				if !ok {
					return nil
				}
				m, err := ingestFile(ctx, path, p, writer)
				resultsMu.Lock()
				total.Merge(m)
				resultsMu.Unlock()
				if err != nil {
					return err
				}
			}
		})
	}

	if err := g.Wait(); err != nil {
		return Metrics{}, err
	}
	return total, nil
}

func ingestFile(ctx context.Context, path string, p Pipeline, writer *partition.Writer) (Metrics, error) {
	file, err := os.Open(path)
	if err != nil {
		return Metrics{}, errs.Wrap(errs.KindCodec, err, "open input "+path)
	}
	defer file.Close()

	parser := record.NewParser(p.Regex)
	serializer := record.NewSerializer()
	pathAugmenter := record.PathAugmenter{Value: path}

	var metrics Metrics
	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), scanBufferSize)

	for scanner.Scan() {
		select {
		case <-ctx.Done():
			return metrics, ctx.Err()
		default:
		}

		line := scanner.Text()
		metrics.AddTotal()

		rec, matched := parser.Parse(line)
		if matched {
			metrics.AddParsed()
		} else {
			metrics.AddError(line)
		}

		p.DateAugmenter.Augment(&rec)
		pathAugmenter.Augment(&rec)

		timestamp, _ := rec.Get(p.TimestampKey)
		ts, _ := timestamp.(int64)

		serialized := serializer.Serialize(rec)
		if err := writer.WriteLog(serialized, ts); err != nil {
			return metrics, err
		}
	}
	if err := scanner.Err(); err != nil {
		return metrics, errs.Wrap(errs.KindCodec, err, "read input "+path)
	}
	return metrics, nil
}
