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

import (
	"time"

	"github.com/flaviut/logmngr/internal/errs"
)

// Augmenter mutates a Record in place. The ingest pipeline applies a
// fixed ordered chain: the date augmenter must run before the record
// reaches the writer, since its output is the partition key.
type Augmenter interface {
	Augment(rec *Record)
}

// DateAugmenter normalizes the field named Key to a signed 64-bit
// millisecond Unix timestamp, replacing whatever text value it held.
// Grounded on original_source/src/augmenters.rs's DateAugmenter: if the
// field is absent, not a string, or fails to parse against Layout, the
// timestamp falls back to the current wall-clock time in UTC rather
// than failing the record.
type DateAugmenter struct {
	Key             string
	Layout          string
	DefaultTimezone *time.Location // nil means the input is already timezone-aware

	now func() time.Time
}

// NewDateAugmenter compiles strftimeFormat once and returns a ready
// DateAugmenter. defaultTimezone may be nil, meaning the configured
// format itself carries a UTC offset or zone abbreviation.
func NewDateAugmenter(key, strftimeFormat string, defaultTimezone *time.Location) (*DateAugmenter, error) {
	layout, err := compileDateFormat(strftimeFormat)
	if err != nil {
		return nil, errs.Wrap(errs.KindCompile, err, "date augmenter format")
	}
	return &DateAugmenter{
		Key:             key,
		Layout:          layout,
		DefaultTimezone: defaultTimezone,
		now:             time.Now,
	}, nil
}

func (a *DateAugmenter) Augment(rec *Record) {
	raw, present := rec.Get(a.Key)

	parsed, ok := a.parse(raw, present)
	if !ok {
		parsed = a.now().UTC()
	}
	// Set on an already-present key overwrites in place, keeping the
	// field's original position; on an absent key it appends, matching
	// original_source's json::JsonValue::insert semantics either way.
	rec.Set(a.Key, parsed.UnixMilli())
}

func (a *DateAugmenter) parse(raw any, present bool) (time.Time, bool) {
	if !present {
		return time.Time{}, false
	}
	s, ok := raw.(string)
	if !ok {
		return time.Time{}, false
	}

	if a.DefaultTimezone != nil {
		t, err := time.ParseInLocation(a.Layout, s, a.DefaultTimezone)
		if err != nil {
			return time.Time{}, false
		}
		return t.UTC(), true
	}

	t, err := time.Parse(a.Layout, s)
	if err != nil {
		return time.Time{}, false
	}
	return t.UTC(), true
}

// PathAugmenter inserts or overwrites the "filename" field. It always
// succeeds.
type PathAugmenter struct {
	Value string
}

func (a PathAugmenter) Augment(rec *Record) {
	rec.Set("filename", a.Value)
}
