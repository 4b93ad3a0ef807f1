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
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// Serializer encodes a Record as a braced mapping of quoted string
// keys to quoted-string or bare-integer values. Serialize does not
// append the record-separating '\n' itself — that belongs to whatever
// writes the serialized bytes out (the partition writer appends it on
// the way into the segment), so that two records end up separated
// solely by that one terminator with no record-boundary tokens.
//
// A Serializer reuses its internal buffer across calls (matching C4's
// "must not allocate per-record state beyond its output buffer"), so
// the slice returned by Serialize is only valid until the next call.
// It is not safe for concurrent use; each ingest worker owns its own
// instance.
type Serializer struct {
	buf bytes.Buffer
}

// NewSerializer returns a ready Serializer.
func NewSerializer() *Serializer {
	return &Serializer{}
}

// Serialize encodes rec into the serializer's reusable buffer and
// returns it. The returned slice aliases that buffer and is
// invalidated by the next call to Serialize.
func (s *Serializer) Serialize(rec Record) []byte {
	s.buf.Reset()
	s.buf.WriteByte('{')

	for i, key := range rec.Keys() {
		if i > 0 {
			s.buf.WriteString(", ")
		}
		writeJSONString(&s.buf, key)
		s.buf.WriteString(": ")

		value, _ := rec.Get(key)
		switch v := value.(type) {
		case string:
			writeJSONString(&s.buf, v)
		case int64:
			s.buf.WriteString(strconv.FormatInt(v, 10))
		case int:
			s.buf.WriteString(strconv.Itoa(v))
		default:
			// Parser and the bundled augmenters only ever produce string
			// or int64 field values; this branch exists for a custom
			// Augmenter that doesn't follow that convention.
			fmt.Fprintf(&s.buf, "%v", v)
		}
	}

	s.buf.WriteByte('}')
	return s.buf.Bytes()
}

func writeJSONString(buf *bytes.Buffer, s string) {
	// encoding/json already implements correct, fast UTF-8-aware string
	// escaping; no need to hand-roll it here.
	encoded, _ := json.Marshal(s)
	buf.Write(encoded)
}
