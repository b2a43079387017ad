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

package trie_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/ianlewis/go-cedict/trie"
)

func newTrie(words ...string) *trie.Trie {
	t := trie.New()
	for _, w := range words {
		t.Insert(w)
	}
	return t
}

// TestTrie_Insert tests Trie.Insert.
func TestTrie_Insert(t *testing.T) {
	t.Parallel()

	tr := trie.New()
	if !tr.Insert("中国") {
		t.Fatalf("Insert(%q): want true", "中国")
	}
	if tr.Insert("中国") {
		t.Fatalf("Insert(%q) again: want false", "中国")
	}
	if !tr.Insert("中") {
		t.Fatalf("Insert(%q): want true", "中")
	}
	if tr.Insert("") {
		t.Fatalf("Insert(%q): want false", "")
	}

	if diff := cmp.Diff(2, tr.Len()); diff != "" {
		t.Fatalf("Len (-want, +got):\n%s", diff)
	}
}

// TestTrie_Contains tests Trie.Contains and Trie.HasPrefix.
func TestTrie_Contains(t *testing.T) {
	t.Parallel()

	tr := newTrie("超級市場", "超")

	tests := []struct {
		name      string
		query     string
		contains  bool
		hasPrefix bool
	}{
		{
			name:      "word",
			query:     "超級市場",
			contains:  true,
			hasPrefix: true,
		},
		{
			name:      "short word",
			query:     "超",
			contains:  true,
			hasPrefix: true,
		},
		{
			name:      "path only",
			query:     "超級",
			contains:  false,
			hasPrefix: true,
		},
		{
			name:      "missing",
			query:     "市場",
			contains:  false,
			hasPrefix: false,
		},
		{
			name:      "empty",
			query:     "",
			contains:  false,
			hasPrefix: false,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			if diff := cmp.Diff(test.contains, tr.Contains(test.query)); diff != "" {
				t.Errorf("Contains (-want, +got):\n%s", diff)
			}
			if diff := cmp.Diff(test.hasPrefix, tr.HasPrefix(test.query)); diff != "" {
				t.Errorf("HasPrefix (-want, +got):\n%s", diff)
			}
		})
	}
}

// TestTrie_LongestPrefix tests Trie.LongestPrefix.
func TestTrie_LongestPrefix(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		words    []string
		text     string
		expected string
	}{
		{
			name:     "empty trie",
			words:    nil,
			text:     "中国",
			expected: "",
		},
		{
			name:     "empty text",
			words:    []string{"中国"},
			text:     "",
			expected: "",
		},
		{
			name:     "exact",
			words:    []string{"中国"},
			text:     "中国",
			expected: "中国",
		},
		{
			name:     "longest wins",
			words:    []string{"中", "中国", "中国人"},
			text:     "中国人民",
			expected: "中国人",
		},
		{
			name:     "path is not a word",
			words:    []string{"中国", "中国人民"},
			text:     "中国人",
			expected: "中国",
		},
		{
			name:     "no word at start",
			words:    []string{"国"},
			text:     "中国",
			expected: "",
		},
		{
			name:     "latin",
			words:    []string{"T恤", "T"},
			text:     "T恤衫",
			expected: "T恤",
		},
		{
			name:     "invalid utf-8",
			words:    []string{"中"},
			text:     "\xff中",
			expected: "",
		},
		{
			name:     "replacement character does not match invalid byte",
			words:    []string{"�"},
			text:     "\xff",
			expected: "",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			tr := newTrie(test.words...)
			n := tr.LongestPrefix(test.text)
			if diff := cmp.Diff(test.expected, test.text[:n]); diff != "" {
				t.Fatalf("LongestPrefix (-want, +got):\n%s", diff)
			}
		})
	}
}
