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

package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/urfave/cli/v2"
	"sigs.k8s.io/release-utils/version"

	"github.com/ianlewis/go-cedict"
	"github.com/ianlewis/go-cedict/internal/config"
)

const (
	// ExitCodeSuccess is successful error code.
	ExitCodeSuccess int = iota

	// ExitCodeNotFound is the exit code when a search term is not found.
	ExitCodeNotFound

	// ExitCodeFlagParseError is the exit code for a flag parsing error.
	ExitCodeFlagParseError

	// ExitCodeUnknownError is the exit code for an unknown error.
	ExitCodeUnknownError
)

// ErrCedict is a parent error for all command errors.
var ErrCedict = errors.New("cedict")

// ErrFlagParse is a flag parsing error.
var ErrFlagParse = fmt.Errorf("%w: parsing flags", ErrCedict)

// ErrNotFound indicates that a search term is not in the dictionary.
var ErrNotFound = fmt.Errorf("%w: not found", ErrCedict)

// ErrNoDictionary indicates that no dictionary file could be found.
var ErrNoDictionary = fmt.Errorf("%w: no dictionary found", ErrCedict)

var copyrightNames = []string{
	"2025 Ian Lewis",
}

// dictNames are the file names searched for in the dictionary locations.
var dictNames = []string{
	"cedict_ts.u8",
	"cedict_ts.u8.gz",
	"cedict_ts.u8.dz",
	"cedict_1_0_ts_utf-8_mdbg.txt",
	"cedict_1_0_ts_utf-8_mdbg.txt.gz",
}

// findDictionary returns the first dictionary file found in dirs.
func findDictionary(dirs []string) (string, error) {
	for _, dir := range dirs {
		for _, name := range dictNames {
			path := filepath.Join(dir, name)
			if fi, err := os.Stat(path); err == nil && fi.Mode().IsRegular() {
				return path, nil
			}
		}
	}
	return "", fmt.Errorf("%w in %s", ErrNoDictionary, strings.Join(dirs, ", "))
}

// env is the state shared by commands.
type env struct {
	cfg    *config.Config
	logger *slog.Logger
	path   string
}

func newEnv(c *cli.Context) (*env, error) {
	cfg, err := config.Load(c.String("config"))
	if err != nil {
		return nil, err
	}

	logger := config.NewLogger(cfg.Log, c.App.ErrWriter)

	path := c.String("dict")
	if path == "" {
		path = cfg.Dictionary.Path
	}
	if path == "" {
		path, err = findDictionary(dictLocations())
		if err != nil {
			return nil, err
		}
	}

	return &env{
		cfg:    cfg,
		logger: logger,
		path:   path,
	}, nil
}

func (e *env) open() (*cedict.Dictionary, error) {
	return cedict.Open(e.path, e.cfg.Dictionary.Options(e.logger))
}

func usageError(_ *cli.Context, err error, _ bool) error {
	return fmt.Errorf("%w: %w", ErrFlagParse, err)
}

func printVersion(c *cli.Context) error {
	versionInfo := version.GetVersionInfo()

	_, err := fmt.Fprintf(c.App.Writer, "%s %s\n", c.App.Name, versionInfo.GitVersion)
	if err != nil {
		return fmt.Errorf("%w: printing version: %w", ErrCedict, err)
	}
	for _, name := range copyrightNames {
		if _, err := fmt.Fprintf(c.App.Writer, "Copyright (c) %s\n", name); err != nil {
			return fmt.Errorf("%w: printing version: %w", ErrCedict, err)
		}
	}
	if _, err := fmt.Fprintf(c.App.Writer, "\n%s\n", versionInfo.String()); err != nil {
		return fmt.Errorf("%w: printing version: %w", ErrCedict, err)
	}
	return nil
}

func newCedictApp() *cli.App {
	return &cli.App{
		Name:  filepath.Base(os.Args[0]),
		Usage: "Search and segment text with CC-CEDICT dictionaries.",
		Description: strings.Join([]string{
			"CC-CEDICT utility written in Go.",
			"http://github.com/ianlewis/go-cedict",
		}, "\n"),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "dict",
				Usage:   "read the dictionary from `FILE`",
				Aliases: []string{"d"},
			},
			&cli.StringFlag{
				Name:    "config",
				Usage:   "read configuration from `FILE`",
				Aliases: []string{"c"},
				EnvVars: []string{"CEDICT_CONFIG"},
			},

			// Special flags are shown at the end.
			&cli.BoolFlag{
				Name:               "version",
				Usage:              "print version information and exit",
				Aliases:            []string{"V"},
				DisableDefaultText: true,
			},
		},
		Copyright:       strings.Join(copyrightNames, "\n"),
		HideHelpCommand: true,
		OnUsageError:    usageError,
		// Errors are reported and mapped to exit codes by main.
		ExitErrHandler: func(*cli.Context, error) {},
		Action: func(c *cli.Context) error {
			if c.Bool("version") {
				return printVersion(c)
			}

			if err := cli.ShowAppHelp(c); err != nil {
				return fmt.Errorf("%w: %w", ErrCedict, err)
			}
			return nil
		},
		Commands: []*cli.Command{
			searchCommand(),
			tokenizeCommand(),
			annotateCommand(),
			infoCommand(),
		},
	}
}
