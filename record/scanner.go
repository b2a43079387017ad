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
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// MaxLineSize is the maximum size of a single dictionary line.
const MaxLineSize = 1 << 20

// Scanner scans a dictionary from start to end, skipping blank and comment
// lines. Metadata lines are collected as they are passed.
type Scanner struct {
	s    *bufio.Scanner
	line int
	meta Metadata

	rec *Record
	err error
}

// NewScanner returns a new Scanner that reads from r.
func NewScanner(r io.Reader) *Scanner {
	s := bufio.NewScanner(r)
	s.Buffer(make([]byte, 0, 64*1024), MaxLineSize)
	return &Scanner{
		s: s,
	}
}

// Scan advances the Scanner to the next record line. It returns false when
// the scan stops either by reaching the end of the input or an I/O error. A
// line that fails to parse does not stop the scan; its error is reported by
// Record.
func (s *Scanner) Scan() bool {
	for s.s.Scan() {
		s.line++
		text := s.s.Text()
		if s.line == 1 {
			// Strip a UTF-8 byte order mark.
			text = strings.TrimPrefix(text, "\ufeff")
		}
		if strings.TrimSpace(text) == "" {
			continue
		}
		if IsComment(text) {
			if key, value, ok := ParseMetadata(text); ok {
				s.meta.set(key, value)
			}
			continue
		}

		s.rec, s.err = Parse(text)
		if s.err != nil {
			var perr *ParseError
			if errors.As(s.err, &perr) {
				perr.Line = s.line
			}
		}
		return true
	}
	s.rec, s.err = nil, nil
	return false
}

// Record returns the most recent record scanned or a *ParseError if the
// current line is malformed.
func (s *Scanner) Record() (*Record, error) {
	return s.rec, s.err
}

// Metadata returns the metadata read so far.
func (s *Scanner) Metadata() *Metadata {
	return &s.meta
}

// Line returns the 1-based line number of the current line.
func (s *Scanner) Line() int {
	return s.line
}

// Err returns the first I/O error encountered by the Scanner.
func (s *Scanner) Err() error {
	if err := s.s.Err(); err != nil {
		return fmt.Errorf("scanning line %d: %w", s.line+1, err)
	}
	return nil
}
