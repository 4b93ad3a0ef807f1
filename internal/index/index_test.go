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

package index

import (
	"os"
	"path/filepath"
	"testing"
)

func touch(t *testing.T, dir, name string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), nil, 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestLoadSkipsInflightAndGarbage(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir, "100-200-aaaaaaaa.json.zst")
	touch(t, dir, ".part-bbbbbbbb.json.zst")
	touch(t, dir, "not-a-partition.txt")
	touch(t, dir, "300-400-cccccccc.json.zst")

	idx, err := Load(dir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if idx.Len() != 2 {
		t.Fatalf("expected 2 partitions, got %d", idx.Len())
	}
}

func TestLoadSortsByStartThenEnd(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir, "300-400-cccccccc.json.zst")
	touch(t, dir, "100-250-aaaaaaaa.json.zst")
	touch(t, dir, "100-200-bbbbbbbb.json.zst")

	idx, err := Load(dir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	all := idx.OverlapFilter(-1<<62, 1<<62)
	if len(all) != 3 {
		t.Fatalf("expected 3 partitions, got %d", len(all))
	}
	if all[0].Start != 100 || all[0].End != 200 {
		t.Errorf("expected (100,200) first, got (%d,%d)", all[0].Start, all[0].End)
	}
	if all[1].Start != 100 || all[1].End != 250 {
		t.Errorf("expected (100,250) second, got (%d,%d)", all[1].Start, all[1].End)
	}
	if all[2].Start != 300 {
		t.Errorf("expected start 300 third, got %d", all[2].Start)
	}
}

func TestLoadHandlesNegativeTimestamps(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir, "-500--100-aaaaaaaa.json.zst")

	idx, err := Load(dir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if idx.Len() != 1 {
		t.Fatalf("expected 1 partition, got %d", idx.Len())
	}
	got := idx.OverlapFilter(-1<<62, 1<<62)[0]
	if got.Start != -500 || got.End != -100 {
		t.Errorf("got (%d,%d), want (-500,-100)", got.Start, got.End)
	}
}

// Mirrors spec's overlap filter scenario.
func TestOverlapFilterScenario(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir, "100-200-aaaaaaaa.json.zst")
	touch(t, dir, "150-250-bbbbbbbb.json.zst")
	touch(t, dir, "300-400-cccccccc.json.zst")

	idx, err := Load(dir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	matched := idx.OverlapFilter(210, 260)
	if len(matched) != 1 || matched[0].Start != 150 || matched[0].End != 250 {
		t.Fatalf("expected only 150-250 to match, got %+v", matched)
	}
}

func TestLoadNonexistentDirectory(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing")); err == nil {
		t.Error("expected an error for a nonexistent directory")
	}
}
