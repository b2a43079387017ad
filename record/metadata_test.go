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

package record_test

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/ianlewis/go-cedict/record"
)

// TestParseMetadata tests ParseMetadata.
func TestParseMetadata(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		line  string
		key   string
		value string
		ok    bool
	}{
		{
			name:  "version",
			line:  "#! version=1",
			key:   "version",
			value: "1",
			ok:    true,
		},
		{
			name:  "no space",
			line:  "#!charset=UTF-8",
			key:   "charset",
			value: "UTF-8",
			ok:    true,
		},
		{
			name:  "value with equals",
			line:  "#! license=https://example.com/?a=b",
			key:   "license",
			value: "https://example.com/?a=b",
			ok:    true,
		},
		{
			name:  "empty value",
			line:  "#! publisher=",
			key:   "publisher",
			value: "",
			ok:    true,
		},
		{
			name: "plain comment",
			line: "# version=1",
		},
		{
			name: "missing equals",
			line: "#! version",
		},
		{
			name: "invalid key",
			line: "#! a key=1",
		},
		{
			name: "empty key",
			line: "#! =1",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			key, value, ok := record.ParseMetadata(test.line)
			if diff := cmp.Diff(test.ok, ok); diff != "" {
				t.Fatalf("ok (-want, +got):\n%s", diff)
			}
			if diff := cmp.Diff(test.key, key); diff != "" {
				t.Errorf("key (-want, +got):\n%s", diff)
			}
			if diff := cmp.Diff(test.value, value); diff != "" {
				t.Errorf("value (-want, +got):\n%s", diff)
			}
		})
	}
}

// TestScanner_Metadata tests that Scanner collects metadata lines.
func TestScanner_Metadata(t *testing.T) {
	t.Parallel()

	s := record.NewScanner(strings.NewReader(strings.Join([]string{
		"# CC-CEDICT",
		"#! version=1",
		"#! entries=1",
		"#! version=2",
		"你好 你好 [ni3 hao3] /hello/",
	}, "\n")))
	for s.Scan() {
		if _, err := s.Record(); err != nil {
			t.Fatalf("Record: %v", err)
		}
	}
	if err := s.Err(); err != nil {
		t.Fatalf("Err: %v", err)
	}

	m := s.Metadata()
	if diff := cmp.Diff([]string{"version", "entries"}, m.Keys()); diff != "" {
		t.Errorf("Keys (-want, +got):\n%s", diff)
	}
	if diff := cmp.Diff("2", m.Value("version")); diff != "" {
		t.Errorf("Value (-want, +got):\n%s", diff)
	}
	if diff := cmp.Diff("", m.Value("missing")); diff != "" {
		t.Errorf("Value (-want, +got):\n%s", diff)
	}
}

// TestMetadata_zero tests the zero value of Metadata.
func TestMetadata_zero(t *testing.T) {
	t.Parallel()

	var m record.Metadata
	if diff := cmp.Diff(0, m.Len()); diff != "" {
		t.Errorf("Len (-want, +got):\n%s", diff)
	}
	if diff := cmp.Diff("", m.Value("version")); diff != "" {
		t.Errorf("Value (-want, +got):\n%s", diff)
	}
}
