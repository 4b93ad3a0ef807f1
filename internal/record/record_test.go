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

package record

import "testing"

func TestRecordPreservesInsertionOrder(t *testing.T) {
	rec := New()
	rec.Set("b", "2")
	rec.Set("a", "1")
	rec.Set("c", "3")

	got := rec.Keys()
	want := []string{"b", "a", "c"}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("key %d: got %s, want %s", i, got[i], want[i])
		}
	}
}

func TestRecordOverwriteKeepsPosition(t *testing.T) {
	rec := New()
	rec.Set("a", "1")
	rec.Set("b", "2")
	rec.Set("a", "99")

	got := rec.Keys()
	if len(got) != 2 || got[0] != "a" || got[1] != "b" {
		t.Errorf("unexpected key order after overwrite: %v", got)
	}
	v, _ := rec.Get("a")
	if v != "99" {
		t.Errorf("expected overwritten value, got %v", v)
	}
}

func TestRecordDelete(t *testing.T) {
	rec := New()
	rec.Set("a", "1")
	rec.Set("b", "2")
	rec.Delete("a")

	if _, ok := rec.Get("a"); ok {
		t.Error("expected a to be deleted")
	}
	if got := rec.Keys(); len(got) != 1 || got[0] != "b" {
		t.Errorf("unexpected keys after delete: %v", got)
	}

	// Deleting an absent key is a no-op.
	rec.Delete("missing")
	if rec.Len() != 1 {
		t.Errorf("expected length 1, got %d", rec.Len())
	}
}
