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

// Package pinyin renders numbered pinyin syllables (e.g. "hao3") with tone
// mark diacritics (e.g. "hǎo").
//
// Tone marks are inserted as Unicode combining characters directly after the
// vowel that carries the tone. The result is therefore in decomposed form. Use
// Compose to convert it to the precomposed (NFC) form for display.
package pinyin

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

// Tone is a 0-indexed pinyin tone.
type Tone int

const (
	// Tone1 is the first (high level) tone, marked with a macron.
	Tone1 Tone = iota

	// Tone2 is the second (rising) tone, marked with an acute accent.
	Tone2

	// Tone3 is the third (dipping) tone, marked with a caron.
	Tone3

	// Tone4 is the fourth (falling) tone, marked with a grave accent.
	Tone4

	// Tone5 is the neutral tone. It is marked with a dot above so that the
	// syllable remains distinguishable from one without tone information.
	Tone5
)

// diacritics maps a Tone to its combining mark.
var diacritics = [...]string{
	Tone1: "\u0304",
	Tone2: "\u0301",
	Tone3: "\u030C",
	Tone4: "\u0300",
	Tone5: "\u0307",
}

// Diacritic returns the combining mark for the tone or the empty string if the
// tone is out of range.
func (t Tone) Diacritic() string {
	if t < Tone1 || t > Tone5 {
		return ""
	}
	return diacritics[t]
}

// ApplyTone inserts the tone mark for tone into syllable. The mark is placed
// after the first vowel matched by these rules, in order:
//
//  1. 'v' (standing in for 'ü'), which is replaced by 'ü'.
//  2. 'a'
//  3. 'e'
//  4. 'o'
//  5. 'i' and 'u' both present: whichever appears later.
//  6. 'i'
//  7. 'u'
//
// Syllables without any of these vowels (e.g. "ng", "hm") and tones outside
// of Tone1-Tone5 return the syllable unchanged.
func ApplyTone(syllable string, tone Tone) string {
	mark := tone.Diacritic()
	if mark == "" {
		return syllable
	}

	if i := strings.IndexByte(syllable, 'v'); i >= 0 {
		return syllable[:i] + "\u00fc" + mark + syllable[i+1:]
	}

	for _, v := range []byte{'a', 'e', 'o'} {
		if i := strings.IndexByte(syllable, v); i >= 0 {
			return insertAfter(syllable, i, mark)
		}
	}

	i := strings.IndexByte(syllable, 'i')
	u := strings.IndexByte(syllable, 'u')
	switch {
	case i >= 0 && u > i:
		return insertAfter(syllable, u, mark)
	case i >= 0:
		return insertAfter(syllable, i, mark)
	case u >= 0:
		return insertAfter(syllable, u, mark)
	}

	return syllable
}

func insertAfter(s string, i int, mark string) string {
	return s[:i+1] + mark + s[i+1:]
}

// ParseSyllable converts a numbered syllable such as "ma1" to its tone marked
// form. The trailing ASCII digit is a 1-indexed tone number; 5 and 0 both
// denote the neutral tone. Digits 6-9 are stripped without marking. The
// CC-CEDICT spelling "u:" is treated as 'ü', which takes the mark unless it
// is followed by 'e' as in "lu:e4" (lüè). Syllables that do not end in a
// digit are returned unchanged.
func ParseSyllable(raw string) string {
	if raw == "" {
		return raw
	}

	last := raw[len(raw)-1]
	if last < '0' || last > '9' {
		return raw
	}

	syllable := raw[:len(raw)-1]
	if strings.Contains(syllable, "u:e") {
		// In "üe" the mark goes on the 'e'.
		syllable = strings.ReplaceAll(syllable, "u:", "\u00fc")
	} else {
		syllable = strings.ReplaceAll(syllable, "u:", "v")
	}
	tone := Tone5
	if last != '0' {
		tone = Tone(last - '1')
	}
	return ApplyTone(syllable, tone)
}

// ParseReading lower-cases a space delimited reading (e.g. "Ni3 hao3") and
// converts each syllable with ParseSyllable. Empty syllables produced by
// repeated spaces are dropped.
func ParseReading(raw string) []string {
	lower := cases.Lower(language.Und).String(raw)

	var syllables []string
	for _, s := range strings.Split(lower, " ") {
		if s == "" {
			continue
		}
		syllables = append(syllables, ParseSyllable(s))
	}
	return syllables
}

// Compose returns s in Unicode normalization form C so that a vowel followed by
// a combining tone mark is rendered as a single precomposed character.
func Compose(s string) string {
	return norm.NFC.String(s)
}
