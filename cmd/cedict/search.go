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
	"fmt"
	"strconv"
	"strings"

	"github.com/rodaine/table"
	"github.com/urfave/cli/v2"
)

func searchCommand() *cli.Command {
	return &cli.Command{
		Name:         "search",
		Usage:        "look up words in the dictionary",
		ArgsUsage:    "TERM...",
		OnUsageError: usageError,
		Action: func(c *cli.Context) error {
			if c.NArg() == 0 {
				return fmt.Errorf("%w: no search terms", ErrFlagParse)
			}

			e, err := newEnv(c)
			if err != nil {
				return err
			}
			d, err := e.open()
			if err != nil {
				return err
			}

			tbl := table.New("ID", "Traditional", "Simplified", "Pinyin", "Senses").WithWriter(c.App.Writer)
			rows := 0
			var missing []string
			for _, term := range c.Args().Slice() {
				entries, found := d.Search(term)
				if !found {
					missing = append(missing, strconv.Quote(term))
					continue
				}
				for _, entry := range entries {
					tbl.AddRow(entry.ID, entry.Traditional, entry.Simplified, entry.Pinyin(), strings.Join(entry.Senses, "; "))
					rows++
				}
			}
			if rows > 0 {
				tbl.Print()
			}

			if len(missing) > 0 {
				return fmt.Errorf("%w: %s", ErrNotFound, strings.Join(missing, ", "))
			}
			return nil
		},
	}
}
