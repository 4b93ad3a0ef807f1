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

import "io"

// measuringSink wraps a byte sink, counting logical bytes presented to
// Write since construction. It counts input bytes, not whatever the
// wrapped codec eventually emits, so the writer can bound uncompressed
// payload per segment regardless of compression ratio.
type measuringSink struct {
	bytes  int64
	target io.Writer
}

func newMeasuringSink(target io.Writer) *measuringSink {
	return &measuringSink{target: target}
}

func (m *measuringSink) Write(p []byte) (int, error) {
	n, err := m.target.Write(p)
	m.bytes += int64(n)
	return n, err
}

type flusher interface {
	Flush() error
}

func (m *measuringSink) Flush() error {
	if f, ok := m.target.(flusher); ok {
		return f.Flush()
	}
	return nil
}
