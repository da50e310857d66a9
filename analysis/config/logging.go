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
	"io"
	"log"
	"os"
)

// LogLevel is the verbosity of a LogGroup.
type LogLevel int

const (
	// ErrLevel logs only errors
	ErrLevel LogLevel = iota + 1

	// WarnLevel logs warnings and errors
	WarnLevel

	// InfoLevel logs high-level progress and results
	InfoLevel

	// DebugLevel logs per-method analysis details
	DebugLevel

	// TraceLevel logs per-node solver steps; only usable on small inputs
	TraceLevel
)

// A LogGroup is a set of leveled loggers sharing the verbosity stored in the
// config they were built from.
type LogGroup struct {
	level       LogLevel
	silenceWarn bool
	trace       *log.Logger
	debug       *log.Logger
	info        *log.Logger
	warn        *log.Logger
	err         *log.Logger
}

// NewLogGroup returns a log group configured by c, writing to standard error.
func NewLogGroup(c *Config) *LogGroup {
	l := &LogGroup{
		level:       LogLevel(c.LogLevel),
		silenceWarn: c.SilenceWarn,
		trace:       log.New(os.Stderr, "[TRACE] ", log.LstdFlags),
		debug:       log.New(os.Stderr, "[DEBUG] ", log.LstdFlags),
		info:        log.New(os.Stderr, "[INFO]  ", log.LstdFlags),
		warn:        log.New(os.Stderr, "[WARN]  ", log.LstdFlags),
		err:         log.New(os.Stderr, "[ERROR] ", log.LstdFlags),
	}
	return l
}

// SetAllOutput redirects every logger of the group to w.
func (l *LogGroup) SetAllOutput(w io.Writer) {
	l.trace.SetOutput(w)
	l.debug.SetOutput(w)
	l.info.SetOutput(w)
	l.warn.SetOutput(w)
	l.err.SetOutput(w)
}

// SetAllFlags sets the flags of every logger of the group.
func (l *LogGroup) SetAllFlags(flag int) {
	l.trace.SetFlags(flag)
	l.debug.SetFlags(flag)
	l.info.SetFlags(flag)
	l.warn.SetFlags(flag)
	l.err.SetFlags(flag)
}

// Tracef logs at trace level. Arguments are handled as in fmt.Printf.
func (l *LogGroup) Tracef(format string, v ...any) {
	if l.level >= TraceLevel {
		l.trace.Printf(format, v...)
	}
}

// Debugf logs at debug level. Arguments are handled as in fmt.Printf.
func (l *LogGroup) Debugf(format string, v ...any) {
	if l.level >= DebugLevel {
		l.debug.Printf(format, v...)
	}
}

// Infof logs at info level. Arguments are handled as in fmt.Printf.
func (l *LogGroup) Infof(format string, v ...any) {
	if l.level >= InfoLevel {
		l.info.Printf(format, v...)
	}
}

// Warnf logs at warn level unless warnings are silenced. Arguments are
// handled as in fmt.Printf.
func (l *LogGroup) Warnf(format string, v ...any) {
	if l.level >= WarnLevel && !l.silenceWarn {
		l.warn.Printf(format, v...)
	}
}

// Errorf logs at error level. Arguments are handled as in fmt.Printf.
func (l *LogGroup) Errorf(format string, v ...any) {
	if l.level >= ErrLevel {
		l.err.Printf(format, v...)
	}
}
