// Copyright 2025 The Conjugueur Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
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

func queryCommand() *cli.Command {
	return &cli.Command{
		Name:      "query",
		Usage:     "Search verbs by prefix",
		ArgsUsage: "QUERY",
		Flags:     dataFlags(),
		Action: func(c *cli.Context) error {
			if c.NArg() != 1 {
				return fmt.Errorf("%w: expected exactly one QUERY argument", ErrFlagParse)
			}

			data, err := loadData(c)
			if err != nil {
				return err
			}

			results := data.SearchVerbs(c.Args().First())
			if len(results) == 0 {
				fmt.Fprintln(c.App.Writer, "no matches")
				return nil
			}

			tbl := table.New("Verb", "Template", "Aspirate H").WithWriter(c.App.Writer)
			for _, rec := range results {
				h := ""
				if rec.AspirateH {
					h = "yes"
				}
				tbl.AddRow(rec.Verb, rec.TemplateName, h)
			}
			tbl.Print()

			return nil
		},
	}
}
