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
	"bufio"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"os/signal"

	"github.com/urfave/cli/v2"
	"golang.org/x/text/transform"

	"github.com/ianlewis/go-cedict"
	"github.com/ianlewis/go-cedict/internal/folding"
)

func tokenizeCommand() *cli.Command {
	return &cli.Command{
		Name:  "tokenize",
		Usage: "split text into dictionary words",
		Description: "Tokenizes each TEXT argument, or each line of standard input if no\n" +
			"arguments are given. Whitespace is removed before tokenizing unless\n" +
			"--keep-spaces is set.",
		ArgsUsage: "[TEXT...]",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:               "keep-spaces",
				Usage:              "do not remove whitespace before tokenizing",
				DisableDefaultText: true,
			},
			&cli.BoolFlag{
				Name:               "json",
				Usage:              "print tokens as a JSON array per input",
				DisableDefaultText: true,
			},
		},
		OnUsageError: usageError,
		Action: func(c *cli.Context) error {
			e, err := newEnv(c)
			if err != nil {
				return err
			}
			d, err := e.open()
			if err != nil {
				return err
			}
			h := cedict.NewHandle(d, e.cfg.Cache.HandleOptions())

			enc := json.NewEncoder(c.App.Writer)
			enc.SetEscapeHTML(false)

			return eachInput(c, e, h, func(text string) error {
				if !c.Bool("keep-spaces") {
					folded, _, err := transform.String(folding.NewSpaceRemover(), text)
					if err != nil {
						return fmt.Errorf("%w: removing spaces: %w", ErrCedict, err)
					}
					text = folded
				}

				tokens := h.Tokenize(text)
				if c.Bool("json") {
					if tokens == nil {
						tokens = []cedict.Token{}
					}
					if err := enc.Encode(tokens); err != nil {
						return fmt.Errorf("%w: writing tokens: %w", ErrCedict, err)
					}
					return nil
				}

				for _, t := range tokens {
					if _, err := fmt.Fprintf(c.App.Writer, "%d\t%s\n", t.Offset, t.Text); err != nil {
						return fmt.Errorf("%w: writing tokens: %w", ErrCedict, err)
					}
				}
				return nil
			})
		},
	}
}

// eachInput calls fn with each argument or, if there are none, with each line
// read from the app's reader. While reading lines the dictionary is reloaded
// into h when one of reloadSignals is received.
func eachInput(c *cli.Context, e *env, h *cedict.Handle, fn func(string) error) error {
	if c.NArg() > 0 {
		for _, text := range c.Args().Slice() {
			if err := fn(text); err != nil {
				return err
			}
		}
		return nil
	}

	if sigs := reloadSignals(); len(sigs) > 0 {
		ch := make(chan os.Signal, 1)
		signal.Notify(ch, sigs...)
		defer signal.Stop(ch)

		done := make(chan struct{})
		defer close(done)

		go func() {
			for {
				select {
				case <-ch:
					e.logger.Info("reloading dictionary", slog.String("path", e.path))
					if err := h.Reload(e.path, e.cfg.Dictionary.Options(e.logger)); err != nil {
						e.logger.Error("reloading dictionary failed",
							slog.String("path", e.path),
							slog.String("error", err.Error()),
						)
					}
				case <-done:
					return
				}
			}
		}()
	}

	s := bufio.NewScanner(c.App.Reader)
	for s.Scan() {
		if err := fn(s.Text()); err != nil {
			return err
		}
	}
	if err := s.Err(); err != nil {
		return fmt.Errorf("%w: reading input: %w", ErrCedict, err)
	}
	return nil
}
