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

// Package formatutil colors and sanitizes strings for terminal output.
package formatutil

import (
	"fmt"
	"os"

	"golang.org/x/term"
)

// Helpers wrapping their argument in an ANSI style when standard error is a
// terminal. Log output goes to standard error, so that is the stream whose
// tty-ness decides colorization.
var (
	Bold   = styled("\033[1m%s\033[0m")
	Faint  = styled("\033[2m%s\033[0m")
	Red    = styled("\033[1;31m%s\033[0m")
	Green  = styled("\033[1;32m%s\033[0m")
	Yellow = styled("\033[1;33m%s\033[0m")
	Cyan   = styled("\033[1;36m%s\033[0m")
)

func styled(format string) func(...any) string {
	return func(args ...any) string {
		if term.IsTerminal(int(os.Stderr.Fd())) {
			return fmt.Sprintf(format, fmt.Sprint(args...))
		}
		return fmt.Sprint(args...)
	}
}

// Sanitize removes escape sequences from s so that analyzed input cannot
// inject terminal control codes into reports.
func Sanitize(s string) string {
	quoted := fmt.Sprintf("%q", s)
	if len(quoted) >= 2 {
		return quoted[1 : len(quoted)-1]
	}
	return quoted
}
