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

// Package errs implements the error taxonomy a log-partitioning pipeline
// needs: which failures are per-record and recoverable in place, and
// which ones must abort the file or partition being processed. Each
// kind is a distinct type so callers can classify with errors.As
// instead of matching strings.
package errs

import "fmt"

// Kind categorizes a pipeline error for logging and exit-code purposes.
type Kind string

const (
	// KindParse marks a line that failed the extraction regex. Recovered
	// locally by the line parser; never surfaced as an error value.
	KindParse Kind = "PARSE"
	// KindAugment marks a missing key or unparseable date. Recovered
	// locally by the date augmenter; never surfaced as an error value.
	KindAugment Kind = "AUGMENT"
	// KindCodec marks a failure opening, writing, flushing, or renaming
	// a partition segment.
	KindCodec Kind = "CODEC"
	// KindIndexLoad marks a directory that could not be listed.
	KindIndexLoad Kind = "INDEX_LOAD"
	// KindPartitionRead marks a failure opening, decompressing, or
	// matching against a single partition during search.
	KindPartitionRead Kind = "PARTITION_READ"
	// KindCompile marks an invalid regular expression or config value
	// supplied on the command line.
	KindCompile Kind = "COMPILE"
)

// Error is a typed pipeline error carrying a Kind for classification
// and an optional wrapped cause.
type Error struct {
	Kind    Kind
	Message string
	Cause   error
}

// New creates an Error with no wrapped cause.
func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// Wrap creates an Error wrapping cause under the given kind.
func Wrap(kind Kind, cause error, message string) *Error {
	return &Error{Kind: kind, Message: message, Cause: cause}
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target is an *Error with the same Kind, letting
// callers write errors.Is(err, errs.New(errs.KindCodec, "")).
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind
}
