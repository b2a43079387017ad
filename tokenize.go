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

package cedict

import (
	"unicode/utf8"
)

// Kind is the kind of a Token.
type Kind string

// KindWord is the kind of every token produced by Tokenize.
const KindWord Kind = "word"

// Token is a segment of tokenized text.
type Token struct {
	// Text is the token's text.
	Text string `json:"token"`

	// Kind is the token's kind.
	Kind Kind `json:"type"`

	// Offset is the position of the token in the input measured in runes.
	Offset int `json:"index"`
}

// Tokenize segments text by repeatedly taking the longest dictionary headword
// that starts at the current position. Where no headword starts at the
// current position a single character token is emitted instead. Concatenating
// the text of the returned tokens always reproduces text exactly. Bytes that
// are not valid UTF-8 are emitted as single byte tokens.
func (d *Dictionary) Tokenize(text string) []Token {
	var tokens []Token
	offset := 0
	for i := 0; i < len(text); {
		n := d.trie.LongestPrefix(text[i:])
		if n == 0 {
			_, n = utf8.DecodeRuneInString(text[i:])
		}

		t := text[i : i+n]
		tokens = append(tokens, Token{
			Text:   t,
			Kind:   KindWord,
			Offset: offset,
		})
		offset += utf8.RuneCountInString(t)
		i += n
	}
	return tokens
}

// Lookup is a token along with the dictionary entries for its text.
type Lookup struct {
	Token

	// Entries are the entries whose headword is the token's text.
	Entries []*Entry

	// Found is false if the token is not a dictionary headword.
	Found bool
}

// Annotate tokenizes text and looks up each token in the dictionary.
func (d *Dictionary) Annotate(text string) []Lookup {
	tokens := d.Tokenize(text)
	if len(tokens) == 0 {
		return nil
	}

	lookups := make([]Lookup, len(tokens))
	for i, t := range tokens {
		entries, found := d.Search(t.Text)
		lookups[i] = Lookup{
			Token:   t,
			Entries: entries,
			Found:   found,
		}
	}
	return lookups
}
