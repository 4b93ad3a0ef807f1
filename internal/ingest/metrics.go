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

package ingest

import "time"

const maxErrorSamples = 10

// Metrics accumulates per-run ingest bookkeeping: how many lines were
// seen, how many matched the extraction pattern, and a capped sample of
// the ones that didn't. Grounded on the teacher's
// traffic.IngestMetrics, repurposed from HTTP-traffic-ingest
// bookkeeping to generic line-ingest bookkeeping: the same
// total/parsed/error counters and error-rate threshold, without the
// traffic-specific fields (method, path, status).
type Metrics struct {
	TotalLines   int64
	ParsedLines  int64
	ErrorLines   int64
	Duration     time.Duration
	ErrorSamples []string
}

// AddTotal increments the total lines counter.
func (m *Metrics) AddTotal() {
	m.TotalLines++
}

// AddParsed increments the parsed lines counter.
func (m *Metrics) AddParsed() {
	m.ParsedLines++
}

// AddError increments the error counter and, if under the sample cap,
// records line as a sample of what failed to parse.
func (m *Metrics) AddError(line string) {
	m.ErrorLines++
	if len(m.ErrorSamples) < maxErrorSamples {
		m.ErrorSamples = append(m.ErrorSamples, line)
	}
}

// ErrorRate returns the fraction of lines that failed to parse, 0 if
// no lines were seen.
func (m *Metrics) ErrorRate() float64 {
	if m.TotalLines == 0 {
		return 0
	}
	return float64(m.ErrorLines) / float64(m.TotalLines)
}

// IsIncomplete reports whether the error rate exceeds 10%, the
// threshold at which the extraction pattern is probably wrong for this
// input rather than just seeing a few odd lines.
func (m *Metrics) IsIncomplete() bool {
	return m.ErrorRate() > 0.1
}

// Merge folds other's counts and error samples into m, capping the
// combined sample list at maxErrorSamples. Used to combine the
// per-worker Metrics produced by concurrent file ingestion into one
// summary for the run.
func (m *Metrics) Merge(other Metrics) {
	m.TotalLines += other.TotalLines
	m.ParsedLines += other.ParsedLines
	m.ErrorLines += other.ErrorLines
	for _, sample := range other.ErrorSamples {
		if len(m.ErrorSamples) >= maxErrorSamples {
			break
		}
		m.ErrorSamples = append(m.ErrorSamples, sample)
	}
}
