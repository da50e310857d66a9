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

package config

import (
	"bytes"
	"embed"
	"path/filepath"
	"strings"
	"testing"
)

//go:embed testdata
var testfsys embed.FS

func TestNewDefault(t *testing.T) {
	c := NewDefault()
	if c.LogLevel != int(InfoLevel) {
		t.Errorf("default log level = %d, want %d", c.LogLevel, InfoLevel)
	}
	if c.MethodFilter != "" || c.ReportDeadStatements || c.SilenceWarn {
		t.Errorf("default config should have zero-valued options, got %+v", c.Options)
	}
	if !c.MatchesMethod("anything") {
		t.Errorf("a config without filter should accept every method")
	}
	if c.SourceFile() != "" {
		t.Errorf("an in-memory config has no source file")
	}
}

func TestLoadFromFile(t *testing.T) {
	filename := filepath.Join("testdata", "config.yaml")
	c, err := Load(filename)
	if err != nil {
		t.Fatalf("Load(%s) failed: %v", filename, err)
	}
	if c.LogLevel != int(DebugLevel) {
		t.Errorf("log level = %d, want %d", c.LogLevel, DebugLevel)
	}
	if !c.ReportDeadStatements {
		t.Errorf("report-dead-statements should be set")
	}
	if c.SourceFile() != filename {
		t.Errorf("SourceFile() = %q, want %q", c.SourceFile(), filename)
	}
	if !c.MatchesMethod("com.example.Foo.bar") {
		t.Errorf("filter should accept methods under com.example")
	}
	if c.MatchesMethod("org.other.Foo.bar") {
		t.Errorf("filter should reject methods outside com.example")
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join("testdata", "no-such-file.yaml")); err == nil {
		t.Errorf("Load on a missing file should fail")
	}
}

// The embedded copy of the testdata must parse to the same config as the
// on-disk file, so tests do not depend on the working directory.
func TestLoadFromEmbeddedBytes(t *testing.T) {
	b, err := testfsys.ReadFile("testdata/config.yaml")
	if err != nil {
		t.Fatalf("reading embedded testdata: %v", err)
	}
	c, err := LoadFromBytes(b)
	if err != nil {
		t.Fatalf("LoadFromBytes failed: %v", err)
	}
	if c.LogLevel != int(DebugLevel) || !c.ReportDeadStatements {
		t.Errorf("embedded config loaded %+v, want debug level and dead statement reports", c.Options)
	}
}

func TestLoadFromBytes(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		wantErr string
	}{
		{"empty input defaults", "", ""},
		{"valid level", "log-level: 5", ""},
		{"level too high", "log-level: 6", "out of range"},
		{"level negative", "log-level: -1", "out of range"},
		{"bad yaml", "log-level: [", "unmarshal"},
		{"bad filter", "method-filter: '['", "invalid method-filter"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := LoadFromBytes([]byte(tt.yaml))
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("LoadFromBytes(%q) failed: %v", tt.yaml, err)
				}
				if c.LogLevel < int(ErrLevel) || c.LogLevel > int(TraceLevel) {
					t.Errorf("loaded log level %d out of range", c.LogLevel)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("LoadFromBytes(%q) error = %v, want it to mention %q",
					tt.yaml, err, tt.wantErr)
			}
		})
	}
}

func TestLogGroupLevels(t *testing.T) {
	c := NewDefault()
	c.LogLevel = int(WarnLevel)
	logger := NewLogGroup(c)
	var buf bytes.Buffer
	logger.SetAllOutput(&buf)
	logger.SetAllFlags(0)

	logger.Errorf("an error")
	logger.Warnf("a warning")
	logger.Infof("some info")
	logger.Debugf("some debug")
	logger.Tracef("a trace")

	out := buf.String()
	if !strings.Contains(out, "an error") || !strings.Contains(out, "a warning") {
		t.Errorf("error and warning should be logged at warn level, got %q", out)
	}
	for _, suppressed := range []string{"some info", "some debug", "a trace"} {
		if strings.Contains(out, suppressed) {
			t.Errorf("%q should be suppressed at warn level", suppressed)
		}
	}
}

func TestLogGroupSilenceWarn(t *testing.T) {
	c := NewDefault()
	c.SilenceWarn = true
	logger := NewLogGroup(c)
	var buf bytes.Buffer
	logger.SetAllOutput(&buf)
	logger.SetAllFlags(0)

	logger.Warnf("a warning")
	if buf.Len() > 0 {
		t.Errorf("warnings should be silenced, got %q", buf.String())
	}
	logger.Errorf("an error")
	if !strings.Contains(buf.String(), "an error") {
		t.Errorf("silencing warnings should not silence errors")
	}
}
