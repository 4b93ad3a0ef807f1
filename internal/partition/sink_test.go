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

package partition

import (
	"bytes"
	"errors"
	"testing"
)

type countingFlusher struct {
	bytes.Buffer
	flushed bool
}

func (c *countingFlusher) Flush() error {
	c.flushed = true
	return nil
}

func TestMeasuringSinkCountsBytes(t *testing.T) {
	var buf bytes.Buffer
	sink := newMeasuringSink(&buf)

	if _, err := sink.Write([]byte("hello")); err != nil {
		t.Fatal(err)
	}
	if _, err := sink.Write([]byte(" world")); err != nil {
		t.Fatal(err)
	}

	if sink.bytes != 11 {
		t.Errorf("got %d, want 11", sink.bytes)
	}
	if buf.String() != "hello world" {
		t.Errorf("unexpected target content: %q", buf.String())
	}
}

func TestMeasuringSinkForwardsFlush(t *testing.T) {
	target := &countingFlusher{}
	sink := newMeasuringSink(target)
	if err := sink.Flush(); err != nil {
		t.Fatal(err)
	}
	if !target.flushed {
		t.Error("expected Flush to be forwarded to the target")
	}
}

func TestMeasuringSinkFlushNoopWithoutFlusher(t *testing.T) {
	sink := newMeasuringSink(&bytes.Buffer{})
	if err := sink.Flush(); err != nil {
		t.Errorf("expected nil, got %v", err)
	}
}

type errWriter struct{ err error }

func (e errWriter) Write([]byte) (int, error) { return 0, e.err }

func TestMeasuringSinkPropagatesWriteError(t *testing.T) {
	want := errors.New("disk full")
	sink := newMeasuringSink(errWriter{err: want})
	_, err := sink.Write([]byte("x"))
	if !errors.Is(err, want) {
		t.Errorf("expected propagated error, got %v", err)
	}
}
