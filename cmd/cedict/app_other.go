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

//go:build !windows

package main

import (
	"os"
	"path/filepath"
	"syscall"
)

func dictLocations() []string {
	loc := []string{
		"/usr/share/cedict",
	}

	if xdgDataHome := os.Getenv("XDG_DATA_HOME"); xdgDataHome != "" {
		loc = append(loc, filepath.Join(xdgDataHome, "cedict"))
	}

	if cedictDataDir := os.Getenv("CEDICT_DATA_DIR"); cedictDataDir != "" {
		loc = append(loc, cedictDataDir)
	}

	if homeDir, err := os.UserHomeDir(); err == nil && homeDir != "" {
		loc = append(loc, filepath.Join(homeDir, ".cedict"))
	}

	return loc
}

// reloadSignals are the signals that cause the dictionary to be reloaded
// while reading from stdin.
func reloadSignals() []os.Signal {
	return []os.Signal{syscall.SIGHUP}
}
