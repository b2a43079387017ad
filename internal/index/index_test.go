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

package index

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

type posting struct {
	key string
	id  int
}

func (p posting) String() string {
	return p.key
}

func ids(ps []posting) []int {
	var result []int
	for _, p := range ps {
		result = append(result, p.id)
	}
	return result
}

func TestIndex_Search(t *testing.T) {
	t.Parallel()

	values := []posting{
		{"行", 0},
		{"银行", 1},
		{"行", 2},
		{"中国", 3},
		{"行", 4},
		{"中國", 3},
	}

	tests := []struct {
		name     string
		query    string
		expected []int
	}{
		{
			name:     "single result",
			query:    "银行",
			expected: []int{1},
		},
		{
			name:     "multiple results keep insertion order",
			query:    "行",
			expected: []int{0, 2, 4},
		},
		{
			name:     "no results",
			query:    "日本",
			expected: nil,
		},
		{
			name:     "empty query",
			query:    "",
			expected: nil,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			index := NewIndex(values, strings.Compare)

			if diff := cmp.Diff(test.expected, ids(index.Search(test.query))); diff != "" {
				t.Fatalf("Search (-want, +got):\n%s", diff)
			}
		})
	}
}

func TestIndex_counts(t *testing.T) {
	t.Parallel()

	index := NewIndex([]posting{{"b", 0}, {"a", 1}, {"b", 2}}, strings.Compare)

	if diff := cmp.Diff(3, index.Len()); diff != "" {
		t.Errorf("Len (-want, +got):\n%s", diff)
	}
	if diff := cmp.Diff(2, index.Keys()); diff != "" {
		t.Errorf("Keys (-want, +got):\n%s", diff)
	}

	empty := NewIndex[posting](nil, strings.Compare)
	if diff := cmp.Diff(0, empty.Keys()); diff != "" {
		t.Errorf("Keys (-want, +got):\n%s", diff)
	}
}
