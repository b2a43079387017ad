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
	"slices"
	"sync/atomic"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

// HandleOptions are options for a Handle.
type HandleOptions struct {
	// CacheSize is the maximum number of tokenization results to cache. Zero
	// disables the cache.
	CacheSize int

	// CacheTTL is how long cached results are kept. Zero keeps results until
	// they are evicted.
	CacheTTL time.Duration
}

// DefaultHandleOptions is the default options for a Handle.
var DefaultHandleOptions = &HandleOptions{
	CacheSize: 1024,
	CacheTTL:  time.Hour,
}

// snapshot is a dictionary in service along with its generation.
type snapshot struct {
	dict *Dictionary
	gen  uint64
}

type cacheKey struct {
	gen  uint64
	text string
}

// Handle holds the Dictionary currently in service. Readers always see a
// fully built Dictionary; reloading builds the replacement first and then
// swaps it in atomically.
type Handle struct {
	current atomic.Pointer[snapshot]

	// cache holds tokenization results keyed by the generation of the
	// dictionary that produced them.
	cache *expirable.LRU[cacheKey, []Token]
}

// NewHandle returns a Handle serving d. d must not be nil.
func NewHandle(d *Dictionary, opts *HandleOptions) *Handle {
	if opts == nil {
		opts = DefaultHandleOptions
	}

	h := &Handle{}
	if opts.CacheSize > 0 {
		h.cache = expirable.NewLRU[cacheKey, []Token](opts.CacheSize, nil, opts.CacheTTL)
	}
	h.current.Store(&snapshot{dict: d})
	return h
}

// Load returns the Dictionary currently in service.
func (h *Handle) Load() *Dictionary {
	return h.current.Load().dict
}

// Store replaces the Dictionary in service with d. Calls already using the
// previous Dictionary run to completion against it.
func (h *Handle) Store(d *Dictionary) {
	for {
		old := h.current.Load()
		if h.current.CompareAndSwap(old, &snapshot{dict: d, gen: old.gen + 1}) {
			break
		}
	}
	if h.cache != nil {
		h.cache.Purge()
	}
}

// Reload loads the dictionary at path and puts it in service. If loading
// fails the current Dictionary stays in service and the error is returned.
func (h *Handle) Reload(path string, opts *Options) error {
	d, err := Open(path, opts)
	if err != nil {
		return err
	}
	h.Store(d)
	return nil
}

// Search calls Search on the Dictionary in service.
func (h *Handle) Search(term string) ([]*Entry, bool) {
	return h.Load().Search(term)
}

// Annotate calls Annotate on the Dictionary in service.
func (h *Handle) Annotate(text string) []Lookup {
	return h.Load().Annotate(text)
}

// Tokenize calls Tokenize on the Dictionary in service. Results are cached
// if the Handle was created with a cache.
func (h *Handle) Tokenize(text string) []Token {
	s := h.current.Load()
	if h.cache == nil {
		return s.dict.Tokenize(text)
	}

	key := cacheKey{gen: s.gen, text: text}
	if tokens, ok := h.cache.Get(key); ok {
		return slices.Clone(tokens)
	}
	tokens := s.dict.Tokenize(text)
	h.cache.Add(key, tokens)
	return slices.Clone(tokens)
}
