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

package i18n

// englishMessages contains all English translations.
var englishMessages = map[string]string{
	"banner.tagline": "Partition and search your logs",

	"process.starting":  "[1/2] Ingesting %d input file(s) into %s...",
	"process.completed":  "✅ Ingest completed: %d lines read, %d parsed, %d errors (took %v)",
	"process.incomplete": "⚠️ Error rate %.1f%% exceeds 10%%, check the input format",

	"search.starting":  "Searching %d partition(s) for /%s/...",
	"search.completed": "✅ Search completed, %d partition(s) scanned (took %v)",

	"error.no_partitions_matched": "no partitions overlap the requested window",
	"error.invalid_pattern":       "invalid regular expression: %s",
	"error.index_load_failed":     "failed to load partition index from %s: %s",
	"error.ingest_failed":         "failed to ingest %s: %s",

	"term.success": "SUCCESS",
	"term.failed":  "FAILED",
}
