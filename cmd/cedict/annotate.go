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
	"strings"

	"github.com/rodaine/table"
	"github.com/urfave/cli/v2"

	"github.com/ianlewis/go-cedict"
)

func annotateCommand() *cli.Command {
	return &cli.Command{
		Name:  "annotate",
		Usage: "tokenize text and show the dictionary entries for each word",
		Description: "Annotates each TEXT argument, or each line of standard input if no\n" +
			"arguments are given.",
		ArgsUsage:    "[TEXT...]",
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

			return eachInput(c, e, h, func(text string) error {
				lookups := h.Annotate(text)
				if len(lookups) == 0 {
					return nil
				}

				tbl := table.New("Offset", "Token", "Pinyin", "Senses").WithWriter(c.App.Writer)
				for _, l := range lookups {
					if !l.Found {
						tbl.AddRow(l.Offset, l.Text, "", "")
						continue
					}
					for _, entry := range l.Entries {
						tbl.AddRow(l.Offset, l.Text, entry.Pinyin(), strings.Join(entry.Senses, "; "))
					}
				}
				tbl.Print()
				return nil
			})
		},
	}
}
