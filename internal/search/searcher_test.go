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
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/klauspost/compress/zstd"

	"github.com/flaviut/logmngr/internal/index"
	"github.com/flaviut/logmngr/internal/regexadapt"
)

func writeCompressedPartition(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	w, err := zstd.NewWriter(f)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := w.Write([]byte(content)); err != nil {
		t.Fatal(err)
	}
	if err := w.Close(); err != nil {
		t.Fatal(err)
	}
	return path
}

func captureOutput(t *testing.T, fn func(out *os.File)) string {
	t.Helper()
	out, err := os.CreateTemp(t.TempDir(), "search-out")
	if err != nil {
		t.Fatal(err)
	}
	defer out.Close()

	fn(out)

	data, err := os.ReadFile(out.Name())
	if err != nil {
		t.Fatal(err)
	}
	return string(data)
}

// Mirrors spec's line-boundary match scenario.
func TestSearchLineBoundaryMatch(t *testing.T) {
	dir := t.TempDir()
	path := writeCompressedPartition(t, dir, "1-1-aaaaaaaa.json.zst", "aXb\ncYd\naZb\n")

	re, err := regexadapt.Compile(`X|Z`)
	if err != nil {
		t.Fatal(err)
	}
	searcher := NewSearcher(re, 1)

	out := captureOutput(t, func(f *os.File) {
		err := searcher.Search(context.Background(), []index.Partition{{Start: 1, End: 1, Path: path}}, f)
		if err != nil {
			t.Fatalf("search: %v", err)
		}
	})

	if out != "aXb\naZb\n" {
		t.Errorf("got %q, want %q", out, "aXb\naZb\n")
	}
}

// Mirrors spec's "match on first line of batch" boundary behavior.
func TestSearchFirstLineOfBatch(t *testing.T) {
	dir := t.TempDir()
	path := writeCompressedPartition(t, dir, "1-1-aaaaaaaa.json.zst", "hit\nmiss\n")

	re, err := regexadapt.Compile(`hit`)
	if err != nil {
		t.Fatal(err)
	}
	searcher := NewSearcher(re, 1)

	out := captureOutput(t, func(f *os.File) {
		if err := searcher.Search(context.Background(), []index.Partition{{Path: path}}, f); err != nil {
			t.Fatalf("search: %v", err)
		}
	})

	if out != "hit\n" {
		t.Errorf("got %q, want %q", out, "hit\n")
	}
}

func TestSearchNoMatchesProducesNoOutput(t *testing.T) {
	dir := t.TempDir()
	path := writeCompressedPartition(t, dir, "1-1-aaaaaaaa.json.zst", "nothing here\nor here\n")

	re, err := regexadapt.Compile(`ZZZ`)
	if err != nil {
		t.Fatal(err)
	}
	searcher := NewSearcher(re, 1)

	out := captureOutput(t, func(f *os.File) {
		if err := searcher.Search(context.Background(), []index.Partition{{Path: path}}, f); err != nil {
			t.Fatalf("search: %v", err)
		}
	})

	if out != "" {
		t.Errorf("expected no output, got %q", out)
	}
}

func TestSearchTwoMatchesOnOneLineEmittedOnce(t *testing.T) {
	dir := t.TempDir()
	path := writeCompressedPartition(t, dir, "1-1-aaaaaaaa.json.zst", "foo foo\nbar\n")

	re, err := regexadapt.Compile(`foo`)
	if err != nil {
		t.Fatal(err)
	}
	searcher := NewSearcher(re, 1)

	out := captureOutput(t, func(f *os.File) {
		if err := searcher.Search(context.Background(), []index.Partition{{Path: path}}, f); err != nil {
			t.Fatalf("search: %v", err)
		}
	})

	if out != "foo foo\n" {
		t.Errorf("got %q, want %q", out, "foo foo\n")
	}
}

func TestSearchMultiplePartitionsFanOut(t *testing.T) {
	dir := t.TempDir()
	p1 := writeCompressedPartition(t, dir, "1-1-aaaaaaaa.json.zst", "match one\n")
	p2 := writeCompressedPartition(t, dir, "2-2-bbbbbbbb.json.zst", "match two\n")

	re, err := regexadapt.Compile(`match`)
	if err != nil {
		t.Fatal(err)
	}
	searcher := NewSearcher(re, 4)

	out := captureOutput(t, func(f *os.File) {
		partitions := []index.Partition{{Path: p1}, {Path: p2}}
		if err := searcher.Search(context.Background(), partitions, f); err != nil {
			t.Fatalf("search: %v", err)
		}
	})

	if !strings.Contains(out, "match one\n") || !strings.Contains(out, "match two\n") {
		t.Errorf("expected both partitions' lines in output, got %q", out)
	}
}
