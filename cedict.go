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
	"compress/gzip"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/ianlewis/go-dictzip"
	"golang.org/x/text/transform"

	"github.com/ianlewis/go-cedict/internal/index"
	"github.com/ianlewis/go-cedict/record"
	"github.com/ianlewis/go-cedict/trie"
)

var (
	// ErrOpen indicates that the dictionary file could not be opened.
	ErrOpen = errors.New("opening dictionary")

	// ErrRead indicates that the dictionary could not be read.
	ErrRead = errors.New("reading dictionary")
)

// Options are options for loading a Dictionary.
type Options struct {
	// SkipMalformed causes lines that do not follow the dictionary grammar to
	// be logged and skipped. By default a malformed line fails the load.
	SkipMalformed bool

	// StripHTML removes HTML markup from senses.
	StripHTML bool

	// Folder returns a [transform.Transformer] that performs folding (e.g.
	// whitespace removal) on headwords when they are indexed and on Search
	// queries. Tokenize is not affected.
	Folder func() transform.Transformer

	// Logger receives load progress and skipped lines. Nothing is logged if
	// Logger is nil.
	Logger *slog.Logger
}

// DefaultOptions is the default options for a Dictionary.
var DefaultOptions = &Options{
	Folder: func() transform.Transformer {
		return transform.Nop
	},
}

// headword is an index posting for one of an entry's headwords.
type headword struct {
	folded string
	id     int
}

func (h *headword) String() string {
	return h.folded
}

// Dictionary is an in-memory CC-CEDICT dictionary. A Dictionary is immutable
// and safe for concurrent use.
type Dictionary struct {
	// entries are addressed by Entry.ID.
	entries []*Entry

	// index maps folded headwords to entries.
	index *index.Index[*headword]

	// trie holds every unfolded headword.
	trie *trie.Trie

	// meta holds the dictionary's header metadata.
	meta *record.Metadata

	folder func() transform.Transformer
}

// Open loads the dictionary at path. Files with a .gz extension are
// decompressed with gzip and files with a .dz extension with dictzip.
func Open(path string, opts *Options) (*Dictionary, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrOpen, err)
	}
	defer f.Close()

	var r io.Reader = f
	switch strings.ToLower(filepath.Ext(path)) {
	case ".gz":
		z, err := gzip.NewReader(f)
		if err != nil {
			return nil, fmt.Errorf("%w: %q: %w", ErrOpen, path, err)
		}
		defer z.Close()
		r = z
	case ".dz":
		z, err := dictzip.NewReader(f)
		if err != nil {
			return nil, fmt.Errorf("%w: %q: %w", ErrOpen, path, err)
		}
		// dictzip is read through its random access interface.
		r = io.NewSectionReader(z, 0, math.MaxInt64)
	}

	d, err := New(r, opts)
	if err != nil {
		return nil, fmt.Errorf("%q: %w", path, err)
	}
	return d, nil
}

// New reads a dictionary from r. Comment and blank lines are ignored and do
// not consume an entry ID.
func New(r io.Reader, opts *Options) (*Dictionary, error) {
	if opts == nil {
		opts = DefaultOptions
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	d := &Dictionary{
		trie:   trie.New(),
		folder: DefaultOptions.Folder,
	}
	if opts.Folder != nil {
		d.folder = opts.Folder
	}

	start := time.Now()
	logger.Info("loading dictionary")

	var postings []*headword
	skipped := 0
	s := record.NewScanner(r)
	for s.Scan() {
		rec, err := s.Record()
		if err != nil {
			if !opts.SkipMalformed {
				return nil, err
			}
			logger.Warn("skipping malformed line",
				slog.Int("line", s.Line()),
				slog.String("error", err.Error()),
			)
			skipped++
			continue
		}

		trad, err := d.fold(rec.Traditional)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", s.Line(), err)
		}
		simp, err := d.fold(rec.Simplified)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", s.Line(), err)
		}

		id := len(d.entries)
		d.entries = append(d.entries, newEntry(id, rec, opts.StripHTML))

		d.trie.Insert(rec.Traditional)
		d.trie.Insert(rec.Simplified)

		postings = append(postings, &headword{folded: trad, id: id})
		if simp != trad {
			postings = append(postings, &headword{folded: simp, id: id})
		}
	}
	if err := s.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRead, err)
	}

	d.meta = s.Metadata()
	if v := d.meta.Value("entries"); v != "" {
		if n, err := strconv.Atoi(v); err != nil || n != len(d.entries) {
			logger.Warn("entry count does not match metadata",
				slog.String("metadata", v),
				slog.Int("entries", len(d.entries)),
			)
		}
	}

	// Postings were appended in ID order and the sort is stable so entries
	// sharing a headword stay in ascending ID order.
	d.index = index.NewIndex(postings, strings.Compare)

	logger.Info("dictionary loaded",
		slog.Int("entries", len(d.entries)),
		slog.Int("headwords", d.trie.Len()),
		slog.Int("index_keys", d.index.Keys()),
		slog.Int("skipped", skipped),
		slog.Duration("elapsed", time.Since(start)),
	)

	return d, nil
}

func (d *Dictionary) fold(s string) (string, error) {
	folded, _, err := transform.String(d.folder(), s)
	if err != nil {
		return "", fmt.Errorf("folding %q: %w", s, err)
	}
	return folded, nil
}

// Search returns the entries whose traditional or simplified headword
// exactly matches term, in ascending ID order. The boolean result is false if
// no entry matches. An entry that matches but has no senses is still found.
func (d *Dictionary) Search(term string) ([]*Entry, bool) {
	folded, err := d.fold(term)
	if err != nil {
		// A term that cannot be folded cannot match a folded headword.
		return nil, false
	}

	postings := d.index.Search(folded)
	if len(postings) == 0 {
		return nil, false
	}

	entries := make([]*Entry, 0, len(postings))
	for _, p := range postings {
		entries = append(entries, d.entries[p.id])
	}
	return entries, true
}

// Entry returns the entry with the given ID.
func (d *Dictionary) Entry(id int) (*Entry, bool) {
	if id < 0 || id >= len(d.entries) {
		return nil, false
	}
	return d.entries[id], true
}

// Len returns the number of entries in the dictionary.
func (d *Dictionary) Len() int {
	return len(d.entries)
}

// Metadata returns the key=value metadata from the dictionary's header.
func (d *Dictionary) Metadata() *record.Metadata {
	return d.meta
}

// HasPrefix returns true if any headword begins with prefix.
func (d *Dictionary) HasPrefix(prefix string) bool {
	return d.trie.HasPrefix(prefix)
}

// Headwords returns the number of distinct headwords in the dictionary.
func (d *Dictionary) Headwords() int {
	return d.trie.Len()
}
