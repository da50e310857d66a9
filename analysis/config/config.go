// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package config loads and validates the yaml configuration controlling the
// analysis pipeline: verbosity, reporting options and the method filter.
package config

import (
	"fmt"
	"os"
	"regexp"

	"gopkg.in/yaml.v3"
)

// Config controls an analysis run. Fields absent from the yaml file keep
// their zero value and are defaulted by Load; private fields are computed
// after unmarshalling, never read from the file.
type Config struct {
	Options `yaml:",inline"`

	// sourceFile is the path the config was loaded from, empty for defaults
	sourceFile string

	// methodFilterRegex is the compiled MethodFilter, nil when unset
	methodFilterRegex *regexp.Regexp
}

// Options are the user-facing knobs of an analysis run.
type Options struct {
	// LogLevel controls the verbosity of the pipeline. Defaults to InfoLevel.
	LogLevel int `yaml:"log-level"`

	// MethodFilter restricts the pipeline to methods whose name matches this
	// regex. Empty means every method is analyzed.
	MethodFilter string `yaml:"method-filter"`

	// ReportDeadStatements logs every dead statement individually instead of
	// only a per-method count
	ReportDeadStatements bool `yaml:"report-dead-statements"`

	// SilenceWarn suppresses warning output
	SilenceWarn bool `yaml:"silence-warn"`
}

// NewDefault returns the default configuration.
func NewDefault() *Config {
	return &Config{
		Options: Options{
			LogLevel: int(InfoLevel),
		},
	}
}

// Load reads a configuration from a yaml file.
func Load(filename string) (*Config, error) {
	b, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("could not read config file: %w", err)
	}
	c, err := LoadFromBytes(b)
	if err != nil {
		return nil, fmt.Errorf("could not parse config file %s: %w", filename, err)
	}
	c.sourceFile = filename
	return c, nil
}

// LoadFromBytes parses a configuration from yaml bytes and applies defaults.
func LoadFromBytes(b []byte) (*Config, error) {
	c := NewDefault()
	if err := yaml.Unmarshal(b, c); err != nil {
		return nil, fmt.Errorf("could not unmarshal yaml: %w", err)
	}

	// a log level of 0 means the file did not set one
	if c.LogLevel == 0 {
		c.LogLevel = int(InfoLevel)
	}
	if c.LogLevel < int(ErrLevel) || c.LogLevel > int(TraceLevel) {
		return nil, fmt.Errorf("log-level %d out of range [%d,%d]",
			c.LogLevel, ErrLevel, TraceLevel)
	}

	if c.MethodFilter != "" {
		r, err := regexp.Compile(c.MethodFilter)
		if err != nil {
			return nil, fmt.Errorf("invalid method-filter: %w", err)
		}
		c.methodFilterRegex = r
	}
	return c, nil
}

// SourceFile returns the path the config was loaded from, empty when the
// config was built in memory.
func (c *Config) SourceFile() string {
	return c.sourceFile
}

// MatchesMethod reports whether the method filter accepts a method name. A
// config without filter accepts everything.
func (c *Config) MatchesMethod(name string) bool {
	if c.methodFilterRegex == nil {
		return true
	}
	return c.methodFilterRegex.MatchString(name)
}
