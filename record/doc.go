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

// Package record implements reading CC-CEDICT formatted dictionary files.
//
// The file is UTF-8 text with one entry per line. Lines starting with '#' are
// comments. Every other non-empty line has four parts:
//  1. The traditional headword followed by a single space.
//  2. The simplified headword followed by a single space.
//  3. The reading enclosed in square brackets. By convention this is a list
//     of space delimited pinyin syllables each ending in a tone number.
//  4. Zero or more senses, each terminated by a slash, following an initial
//     slash (e.g. "/hello/hi/").
//
// For example:
//
//	你好 你好 [ni3 hao3] /hello/hi/
//
// Comments starting with "#!" carry key=value metadata about the file and are
// collected by the Scanner.
package record
