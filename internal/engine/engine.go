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

// Package engine coordinates the process and search subcommands:
// compiling the configured pipeline once, driving the ingest and
// search fan-outs, and logging a summary of each run. Grounded on the
// teacher's internal/engine.DefaultAlignmentEngine/EngineConfig shape
// (a config-holding coordinator wrapping a worker pool), repurposed
// from spec alignment to log partitioning and search.
package engine

import (
	"context"
	"math"
	"os"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/flaviut/logmngr/internal/config"
	"github.com/flaviut/logmngr/internal/errs"
	"github.com/flaviut/logmngr/internal/i18n"
	"github.com/flaviut/logmngr/internal/index"
	"github.com/flaviut/logmngr/internal/ingest"
	"github.com/flaviut/logmngr/internal/partition"
	"github.com/flaviut/logmngr/internal/record"
	"github.com/flaviut/logmngr/internal/regexadapt"
	"github.com/flaviut/logmngr/internal/search"
)

// Engine holds the resolved configuration and dependencies shared by
// both subcommands.
type Engine struct {
	Config config.Config
	Logger *logrus.Logger
	I18n   *i18n.Localizer
}

// New returns an Engine ready to run either subcommand.
func New(cfg config.Config, logger *logrus.Logger, localizer *i18n.Localizer) *Engine {
	return &Engine{Config: cfg, Logger: logger, I18n: localizer}
}

// buildPipeline compiles the configured extraction regex and date
// augmenter once, shared read-only across every ingest worker.
func (e *Engine) buildPipeline() (ingest.Pipeline, error) {
	re, err := regexadapt.Compile(e.Config.Pipeline.Pattern)
	if err != nil {
		return ingest.Pipeline{}, err
	}

	var tz *time.Location
	if e.Config.Pipeline.DefaultTimezone != "" {
		tz, err = time.LoadLocation(e.Config.Pipeline.DefaultTimezone)
		if err != nil {
			return ingest.Pipeline{}, errs.Wrap(errs.KindCompile, err, "default timezone")
		}
	}

	aug, err := record.NewDateAugmenter(e.Config.Pipeline.TimestampKey, e.Config.Pipeline.DateFormat, tz)
	if err != nil {
		return ingest.Pipeline{}, err
	}

	return ingest.Pipeline{
		Regex:         re,
		TimestampKey:  e.Config.Pipeline.TimestampKey,
		DateAugmenter: aug,
	}, nil
}

// Process ingests every file in inputs into indexDir, sealing
// partitions as they cross the configured size threshold, and the
// trailing partial segment on completion.
func (e *Engine) Process(ctx context.Context, indexDir string, inputs []string) (ingest.Metrics, error) {
	pipeline, err := e.buildPipeline()
	if err != nil {
		return ingest.Metrics{}, err
	}

	e.Logger.Info(e.I18n.T("process.starting", len(inputs), indexDir))
	start := time.Now()

	writer := partition.NewWriter(indexDir, e.Config.Partition.MaxSizeBytes)
	metrics, err := ingest.Run(ctx, inputs, pipeline, writer, e.Config.Workers())
	if err != nil {
		writer.Close()
		return metrics, err
	}
	if err := writer.Close(); err != nil {
		return metrics, err
	}
	metrics.Duration = time.Since(start)

	e.Logger.Info(e.I18n.T("process.completed", metrics.TotalLines, metrics.ParsedLines, metrics.ErrorLines, metrics.Duration))
	if metrics.IsIncomplete() {
		e.Logger.Warn(e.I18n.T("process.incomplete", metrics.ErrorRate()*100))
	}
	return metrics, nil
}

// Search loads the partition index from indexDir, restricts it to
// partitions overlapping [from, to] (a nil bound is unrestricted on
// that side), and streams every matching line to out.
func (e *Engine) Search(ctx context.Context, indexDir, pattern string, from, to *time.Time, out *os.File) error {
	re, err := regexadapt.Compile(pattern)
	if err != nil {
		return err
	}

	idx, err := index.Load(indexDir)
	if err != nil {
		return err
	}

	lo, hi := queryBounds(from, to)
	partitions := idx.OverlapFilter(lo, hi)

	e.Logger.Info(e.I18n.T("search.starting", len(partitions), pattern))
	start := time.Now()

	searcher := search.NewSearcher(re, e.Config.Workers())
	if err := searcher.Search(ctx, partitions, out); err != nil {
		return err
	}

	e.Logger.Info(e.I18n.T("search.completed", len(partitions), time.Since(start)))
	return nil
}

func queryBounds(from, to *time.Time) (lo, hi int64) {
	lo, hi = math.MinInt64, math.MaxInt64
	if from != nil {
		lo = from.UnixMilli()
	}
	if to != nil {
		hi = to.UnixMilli()
	}
	return lo, hi
}
