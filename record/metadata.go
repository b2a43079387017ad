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

package record

import (
	"regexp"
	"strings"
)

// MetadataPrefix begins a comment line holding a key=value pair, e.g.
//
//	#! version=1
//	#! entries=123456
const MetadataPrefix = "#!"

var keyRegex = regexp.MustCompile("^[a-zA-Z0-9-_]+$")

// Metadata holds the key=value pairs found in a dictionary's comment lines.
// The zero value is an empty Metadata.
type Metadata struct {
	keys   []string
	values map[string]string
}

// Value returns the value for key or the empty string if key is not set.
func (m *Metadata) Value(key string) string {
	return m.values[key]
}

// Keys returns the keys in the order they first appeared.
func (m *Metadata) Keys() []string {
	return m.keys
}

// Len returns the number of keys.
func (m *Metadata) Len() int {
	return len(m.keys)
}

// set sets key to value. A repeated key keeps its position and takes the
// later value.
func (m *Metadata) set(key, value string) {
	if m.values == nil {
		m.values = map[string]string{}
	}
	if _, ok := m.values[key]; !ok {
		m.keys = append(m.keys, key)
	}
	m.values[key] = value
}

// ParseMetadata parses a metadata line. ok is false if line is not a
// metadata line or its key is invalid.
func ParseMetadata(line string) (key, value string, ok bool) {
	rest, found := strings.CutPrefix(line, MetadataPrefix)
	if !found {
		return "", "", false
	}
	key, value, found = strings.Cut(rest, "=")
	if !found {
		return "", "", false
	}
	key = strings.TrimSpace(key)
	if !keyRegex.MatchString(key) {
		return "", "", false
	}
	return key, strings.TrimSpace(value), true
}
