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

package testutil

import (
	"compress/gzip"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ianlewis/go-dictzip"
)

// Compression is the compression used for a test dictionary file.
type Compression int

const (
	// None writes a plain text dictionary.
	None Compression = iota

	// Gzip writes a gzip compressed dictionary.
	Gzip

	// DictZip writes a dictzip compressed dictionary.
	DictZip
)

// MakeDictOptions are options for MakeTempDict.
type MakeDictOptions struct {
	// Ext is an optional file extension for the dictionary file. Defaults to
	// '.u8.dz' for DictZip, '.u8.gz' for Gzip and '.u8' otherwise.
	Ext string

	// Compression is the compression applied to the file.
	Compression Compression
}

// GetExt returns the file extension for the options.
func (o *MakeDictOptions) GetExt() string {
	if o == nil {
		return ".u8"
	}
	if o.Ext != "" {
		return o.Ext
	}
	switch o.Compression {
	case Gzip:
		return ".u8.gz"
	case DictZip:
		return ".u8.dz"
	default:
		return ".u8"
	}
}

// MakeDict joins lines into the contents of a dictionary file.
func MakeDict(lines ...string) []byte {
	if len(lines) == 0 {
		return nil
	}
	return []byte(strings.Join(lines, "\n") + "\n")
}

// MakeTempDict writes lines to a dictionary file in a temporary directory
// and returns the file's path. The directory is removed when the test ends.
func MakeTempDict(t *testing.T, lines []string, opts *MakeDictOptions) string {
	t.Helper()
	if opts == nil {
		opts = &MakeDictOptions{}
	}

	path := filepath.Join(t.TempDir(), "cedict_ts"+opts.GetExt())
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	var w io.WriteCloser
	switch opts.Compression {
	case Gzip:
		w = gzip.NewWriter(f)
	case DictZip:
		w, err = dictzip.NewWriter(f)
		if err != nil {
			t.Fatal(err)
		}
	default:
		w = nopCloser{f}
	}

	if _, err := w.Write(MakeDict(lines...)); err != nil {
		t.Fatal(err)
	}
	if err := w.Close(); err != nil {
		t.Fatal(err)
	}
	if err := f.Close(); err != nil {
		t.Fatal(err)
	}

	return path
}

type nopCloser struct {
	io.Writer
}

func (nopCloser) Close() error { return nil }
