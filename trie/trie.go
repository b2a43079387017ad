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

// Package trie implements a prefix tree over dictionary headwords keyed by
// rune.
//
// Each node records whether the path leading to it spells a complete word so
// that a longest prefix query only ever returns whole headwords and never a
// path that merely leads on to a longer one.
package trie

import (
	"unicode/utf8"
)

type node struct {
	// word is true if the path to this node spells a complete word.
	word bool

	children map[rune]*node
}

// Trie is a rune keyed prefix tree. The zero value is an empty Trie ready to
// use. A Trie is not safe for concurrent use while words are being inserted
// but any number of goroutines may query it once insertion has finished.
type Trie struct {
	root node
	size int
}

// New returns a new empty Trie.
func New() *Trie {
	return &Trie{}
}

// Insert adds word to the trie. It returns true if word was not already
// present. The empty string is never stored.
func (t *Trie) Insert(word string) bool {
	if word == "" {
		return false
	}

	cur := &t.root
	for _, r := range word {
		if cur.children == nil {
			cur.children = map[rune]*node{}
		}
		next, ok := cur.children[r]
		if !ok {
			next = &node{}
			cur.children[r] = next
		}
		cur = next
	}

	if cur.word {
		return false
	}
	cur.word = true
	t.size++
	return true
}

// Len returns the number of distinct words in the trie.
func (t *Trie) Len() int {
	return t.size
}

// Contains returns true if word was inserted into the trie.
func (t *Trie) Contains(word string) bool {
	n := t.find(word)
	return n != nil && n.word
}

// HasPrefix returns true if prefix is a prefix of at least one word in the
// trie. Every word is a prefix of itself.
func (t *Trie) HasPrefix(prefix string) bool {
	n := t.find(prefix)
	return n != nil && (n.word || len(n.children) > 0)
}

func (t *Trie) find(s string) *node {
	if s == "" {
		return nil
	}
	cur := &t.root
	for _, r := range s {
		next, ok := cur.children[r]
		if !ok {
			return nil
		}
		cur = next
	}
	return cur
}

// LongestPrefix returns the length in bytes of the longest word in the trie
// that is a prefix of s, or zero if there is none. Invalid UTF-8 in s never
// matches.
func (t *Trie) LongestPrefix(s string) int {
	longest := 0
	cur := &t.root
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		if r == utf8.RuneError && size == 1 {
			break
		}
		next, ok := cur.children[r]
		if !ok {
			break
		}
		cur = next
		i += size
		if cur.word {
			longest = i
		}
	}
	return longest
}
