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

	"github.com/rodaine/table"
	"github.com/urfave/cli/v2"
)

func infoCommand() *cli.Command {
	return &cli.Command{
		Name:         "info",
		Usage:        "print information about the dictionary",
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

			table.New("Path", "Entries", "Headwords").
				WithWriter(c.App.Writer).
				AddRow(e.path, d.Len(), d.Headwords()).
				Print()

			if meta := d.Metadata(); meta.Len() > 0 {
				if _, err := fmt.Fprintln(c.App.Writer); err != nil {
					return fmt.Errorf("%w: %w", ErrCedict, err)
				}
				tbl := table.New("Key", "Value").WithWriter(c.App.Writer)
				for _, key := range meta.Keys() {
					tbl.AddRow(key, meta.Value(key))
				}
				tbl.Print()
			}
			return nil
		},
	}
}
