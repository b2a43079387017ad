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

// Package cedict implements a library for reading CC-CEDICT Chinese-English
// dictionaries and segmenting Chinese text with them in pure Go.
//
// A Dictionary is built in a single pass over the dictionary file and holds:
//  1. The entries in file order, addressed by a dense integer ID.
//  2. An index of headwords (both traditional and simplified) to entry IDs.
//  3. A prefix tree of every headword used to segment text by longest
//     match.
//
// A Dictionary is immutable once built and may be shared freely between
// goroutines. A Handle holds the Dictionary currently in service and swaps in
// a new one atomically when the dictionary is reloaded.
//
// More info on the dictionary format can be found at this URL:
// https://cc-cedict.org/wiki/format:syntax
package cedict
