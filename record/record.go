// Copyright 2025 Ian Lewis
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

package record

import (
	"errors"
	"fmt"
	"strings"
)

// ErrMalformed indicates that a line is missing one of the delimiters
// required by the record grammar.
var ErrMalformed = errors.New("malformed record")

// Record is a single unprocessed dictionary line.
type Record struct {
	// Traditional is the traditional script headword.
	Traditional string

	// Simplified is the simplified script headword.
	Simplified string

	// Reading is the raw text between the brackets, e.g. "ni3 hao3".
	Reading string

	// Senses are the slash delimited glosses in definition order.
	Senses []string
}

// ParseError is returned for lines that do not follow the record grammar.
type ParseError struct {
	// Line is the 1-based line number. It is zero when the text was parsed
	// outside of a Scanner.
	Line int

	// Text is the offending line.
	Text string

	// Err is the underlying error. It wraps ErrMalformed.
	Err error
}

// Error implements error.
func (e *ParseError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("line %d: %v", e.Line, e.Err)
	}
	return e.Err.Error()
}

// Unwrap returns the underlying error.
func (e *ParseError) Unwrap() error {
	return e.Err
}

// IsComment returns true if line is a comment line.
func IsComment(line string) bool {
	return strings.HasPrefix(line, "#")
}

// Parse parses a single line of the form:
//
//	TRAD SIMP [READING] /SENSE1/SENSE2/.../
//
// A line without any sense segments is valid and results in a Record with no
// senses.
func Parse(line string) (*Record, error) {
	k := strings.IndexByte(line, ' ')
	if k < 0 {
		return nil, malformed(line, "missing simplified form")
	}
	trad := line[:k]
	rest := line[k+1:]

	k = strings.IndexByte(rest, ' ')
	if k < 0 {
		return nil, malformed(line, "missing reading")
	}
	simp := rest[:k]
	rest = rest[k+1:]

	if trad == "" || simp == "" {
		return nil, malformed(line, "empty headword")
	}

	k = strings.IndexByte(rest, '[')
	if k < 0 {
		return nil, malformed(line, "missing '['")
	}
	rest = rest[k+1:]
	k = strings.IndexByte(rest, ']')
	if k < 0 {
		return nil, malformed(line, "missing ']'")
	}
	reading := rest[:k]
	rest = rest[k+1:]

	return &Record{
		Traditional: trad,
		Simplified:  simp,
		Reading:     reading,
		Senses:      senses(rest),
	}, nil
}

// senses returns the segments enclosed by consecutive slashes in s. Any text
// before the first slash or after the last is ignored.
func senses(s string) []string {
	start := strings.IndexByte(s, '/')
	if start < 0 {
		return nil
	}

	var result []string
	for {
		end := strings.IndexByte(s[start+1:], '/')
		if end < 0 {
			return result
		}
		end += start + 1
		result = append(result, s[start+1:end])
		start = end
	}
}

func malformed(line, reason string) error {
	return &ParseError{
		Text: line,
		Err:  fmt.Errorf("%w: %s", ErrMalformed, reason),
	}
}
