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
	"strings"

	"github.com/k3a/html2text"

	"github.com/ianlewis/go-cedict/pinyin"
	"github.com/ianlewis/go-cedict/record"
)

// Entry is a dictionary entry.
type Entry struct {
	// ID is the entry's position in the dictionary file, starting at zero.
	// IDs are only stable within a single load of the dictionary.
	ID int

	// Traditional is the traditional script headword.
	Traditional string

	// Simplified is the simplified script headword. It may be equal to
	// Traditional.
	Simplified string

	// Reading is the tone marked pinyin reading, one element per syllable.
	// Tone marks are combining characters; see pinyin.Compose.
	Reading []string

	// RawReading is the reading as it appears in the dictionary file.
	RawReading string

	// Senses are the entry's definitions in dictionary order.
	Senses []string
}

func newEntry(id int, rec *record.Record, stripHTML bool) *Entry {
	senses := rec.Senses
	if stripHTML && len(senses) > 0 {
		senses = make([]string, len(rec.Senses))
		for i, s := range rec.Senses {
			senses[i] = html2text.HTML2Text(s)
		}
	}

	return &Entry{
		ID:          id,
		Traditional: rec.Traditional,
		Simplified:  rec.Simplified,
		Reading:     pinyin.ParseReading(rec.Reading),
		RawReading:  rec.Reading,
		Senses:      senses,
	}
}

// Pinyin returns the entry's reading as a single composed string, e.g.
// "nǐ hǎo".
func (e *Entry) Pinyin() string {
	return pinyin.Compose(strings.Join(e.Reading, " "))
}

// String returns the entry in dictionary file format.
func (e *Entry) String() string {
	var b strings.Builder
	b.WriteString(e.Traditional)
	b.WriteByte(' ')
	b.WriteString(e.Simplified)
	b.WriteString(" [")
	b.WriteString(e.RawReading)
	b.WriteByte(']')
	if len(e.Senses) > 0 {
		b.WriteString(" /")
		for _, s := range e.Senses {
			b.WriteString(s)
			b.WriteByte('/')
		}
	}
	return b.String()
}
