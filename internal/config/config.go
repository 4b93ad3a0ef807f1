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

// Package config loads the YAML configuration file accepted by
// --config, overlaying it onto the hard-coded defaults for partition
// size, the extraction pipeline, and worker concurrency.
//
// Grounded on internal/parser/yaml_file_parser.go's yaml.v3 usage: read
// the file, unmarshal into a struct, wrap failures as a single
// surfaced error rather than a per-field diagnostic.
package config

import (
	"os"
	"runtime"

	"gopkg.in/yaml.v3"

	"github.com/flaviut/logmngr/internal/errs"
)

const (
	defaultMaxSizeBytes = 64 * 1024 * 1024
	defaultPattern      = `(?<timestamp>[\d/]{8} [\d:]{8}) (?<level>[A-Z]+) (?<component>[^:]+): (?<message>.*)$`
	defaultTimestampKey = "timestamp"
	defaultDateFormat   = `%y/%m/%d %H:%M:%S`
	defaultTimezone     = "UTC"
	defaultLogLevel     = "info"
)

// Config is the fully-resolved configuration for a process or search
// run: partition sizing, the extraction pipeline, concurrency, and log
// level.
type Config struct {
	Partition struct {
		MaxSizeBytes int64 `yaml:"maxSizeBytes"`
	} `yaml:"partition"`

	Pipeline struct {
		Pattern         string `yaml:"pattern"`
		TimestampKey    string `yaml:"timestampKey"`
		DateFormat      string `yaml:"dateFormat"`
		DefaultTimezone string `yaml:"defaultTimezone"`
	} `yaml:"pipeline"`

	Concurrency struct {
		Workers int `yaml:"workers"`
	} `yaml:"concurrency"`

	LogLevel string `yaml:"logLevel"`
}

// Default returns the hard-coded configuration used when --config is
// not given.
func Default() Config {
	var c Config
	c.Partition.MaxSizeBytes = defaultMaxSizeBytes
	c.Pipeline.Pattern = defaultPattern
	c.Pipeline.TimestampKey = defaultTimestampKey
	c.Pipeline.DateFormat = defaultDateFormat
	c.Pipeline.DefaultTimezone = defaultTimezone
	c.Concurrency.Workers = 0
	c.LogLevel = defaultLogLevel
	return c
}

// Load reads path and overlays its fields onto Default(). yaml.v3 only
// assigns keys present in the document, so a field absent from the
// file keeps its default value and unmarshaling onto a
// default-populated struct is sufficient overlay logic without a
// separate merge step. A key given explicitly with an empty or zero
// value does override the default (e.g. defaultTimezone: "").
func Load(path string) (Config, error) {
	c := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, errs.Wrap(errs.KindCompile, err, "read config file "+path)
	}

	if err := yaml.Unmarshal(data, &c); err != nil {
		return Config{}, errs.Wrap(errs.KindCompile, err, "parse config file "+path)
	}

	if c.Concurrency.Workers <= 0 {
		c.Concurrency.Workers = runtime.GOMAXPROCS(0)
	}
	return c, nil
}

// Workers returns the resolved worker count for a Config built via
// Default() (which leaves Workers at 0, the "unset" sentinel, rather
// than resolving it eagerly so tests can observe the literal default).
func (c Config) Workers() int {
	if c.Concurrency.Workers <= 0 {
		return runtime.GOMAXPROCS(0)
	}
	return c.Concurrency.Workers
}
