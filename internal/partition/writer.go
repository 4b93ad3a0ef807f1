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

// Package partition implements the partition writer state machine
// (C5/C6): accumulate serialized records into a temporary compressed
// segment, track the timestamp span of its contents, and atomically
// seal it to a final name encoding that span once a size threshold is
// crossed.
//
// Grounded on original_source/src/writers.rs's MeasuringWriter and
// PartitionWriter. A Writer is safe for concurrent use: WriteLog and
// Close each hold the Writer's own mutex for the whole call, so the
// ingest workers share one Writer without a lock of their own (see
// internal/ingest).
package partition

import (
	"fmt"
	"math"
	"os"
	"path/filepath"
	"sync"

	"github.com/klauspost/compress/zstd"

	"github.com/flaviut/logmngr/internal/errs"
)

type writerState int

const (
	stateIdle writerState = iota
	stateWriting
)

// Writer manages the lifecycle of one partition segment at a time.
type Writer struct {
	mu sync.Mutex

	directory string
	maxSize   int64

	state    writerState
	tempPath string
	file     *os.File
	encoder  *zstd.Encoder
	sink     *measuringSink

	minTime int64
	maxTime int64
}

// NewWriter returns a Writer rooted at directory, sealing a segment
// once its uncompressed contents exceed maxSize bytes.
func NewWriter(directory string, maxSize int64) *Writer {
	return &Writer{
		directory: directory,
		maxSize:   maxSize,
		minTime:   math.MaxInt64,
		maxTime:   math.MinInt64,
	}
}

// WriteLog appends one serialized record (without its own trailing
// newline) to the current segment, opening a new segment first if
// idle, and seals the segment if this write crosses maxSize.
func (w *Writer) WriteLog(line []byte, timestamp int64) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.state == stateIdle {
		if err := w.begin(); err != nil {
			return err
		}
	}

	if timestamp < w.minTime {
		w.minTime = timestamp
	}
	if timestamp > w.maxTime {
		w.maxTime = timestamp
	}

	if _, err := w.sink.Write(line); err != nil {
		return errs.Wrap(errs.KindCodec, err, "write record")
	}
	if _, err := w.sink.Write([]byte("\n")); err != nil {
		return errs.Wrap(errs.KindCodec, err, "write record terminator")
	}

	if w.sink.bytes > w.maxSize {
		return w.seal()
	}
	return nil
}

// Close seals any in-flight segment that has at least one record in
// it. An empty in-flight segment (no WriteLog call has ever landed on
// this Writer since the last seal) is removed rather than sealed,
// since sealing an empty segment is forbidden. Spec.md never finalizes
// the trailing segment at end-of-input, but a complete implementation
// needs to: otherwise the last batch of a run is permanently invisible
// to search.
func (w *Writer) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.state != stateWriting {
		return nil
	}
	if w.sink.bytes == 0 {
		path := w.tempPath
		w.resetToIdle()
		if err := os.Remove(path); err != nil {
			return errs.Wrap(errs.KindCodec, err, "remove empty in-flight segment")
		}
		return nil
	}
	return w.seal()
}

func (w *Writer) begin() error {
	suffix, err := randomSuffix(8)
	if err != nil {
		return err
	}
	path := filepath.Join(w.directory, fmt.Sprintf(".part-%s.json.zst", suffix))

	file, err := os.Create(path)
	if err != nil {
		return errs.Wrap(errs.KindCodec, err, "create partition file")
	}

	encoder, err := zstd.NewWriter(file,
		zstd.WithEncoderLevel(zstd.SpeedFastest),
		zstd.WithEncoderCRC(true))
	if err != nil {
		file.Close()
		os.Remove(path)
		return errs.Wrap(errs.KindCodec, err, "create zstd encoder")
	}

	w.file = file
	w.encoder = encoder
	w.sink = newMeasuringSink(encoder)
	w.tempPath = path
	w.state = stateWriting
	return nil
}

// seal finalizes the codec frame, closes the file, and renames the
// in-flight segment to its sealed name. Caller must hold w.mu and know
// the segment is non-empty.
func (w *Writer) seal() error {
	if err := w.encoder.Close(); err != nil {
		return errs.Wrap(errs.KindCodec, err, "finalize partition frame")
	}
	if err := w.file.Close(); err != nil {
		return errs.Wrap(errs.KindCodec, err, "close partition file")
	}

	suffix, err := randomSuffix(8)
	if err != nil {
		return err
	}
	finalPath := filepath.Join(w.directory, fmt.Sprintf("%d-%d-%s.json.zst", w.minTime, w.maxTime, suffix))
	if err := os.Rename(w.tempPath, finalPath); err != nil {
		return errs.Wrap(errs.KindCodec, err, "seal partition")
	}

	w.resetToIdle()
	return nil
}

func (w *Writer) resetToIdle() {
	w.file = nil
	w.encoder = nil
	w.sink = nil
	w.tempPath = ""
	w.minTime = math.MaxInt64
	w.maxTime = math.MinInt64
	w.state = stateIdle
}
