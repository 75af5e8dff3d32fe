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
	"strings"

	"github.com/rodaine/table"
	"github.com/urfave/cli/v2"

	"github.com/conjugueur/conjugueur/conjugation"
)

func showCommand() *cli.Command {
	return &cli.Command{
		Name:      "show",
		Usage:     "Show the full conjugation of a verb",
		ArgsUsage: "VERB",
		Flags:     dataFlags(),
		Action: func(c *cli.Context) error {
			if c.NArg() != 1 {
				return fmt.Errorf("%w: expected exactly one VERB argument", ErrFlagParse)
			}

			data, err := loadData(c)
			if err != nil {
				return err
			}

			name := c.Args().First()
			rec, ok := data.LookupVerb(name)
			if !ok {
				return fmt.Errorf("%w: verb not found: %s", ErrConjugueur, name)
			}
			tmpl, ok := data.Template(rec.TemplateName)
			if !ok {
				return fmt.Errorf("%w: template not found: %s", ErrConjugueur, rec.TemplateName)
			}

			fmt.Fprintln(c.App.Writer, rec.Verb)
			if rec.AspirateH {
				fmt.Fprintln(c.App.Writer, "(h aspiré)")
			}
			if inf := joinParts(tmpl.Infinitive.InfinitivePresent); inf != "" {
				fmt.Fprintf(c.App.Writer, "Infinitif: %s\n", inf)
			}
			if pp := joinParts(tmpl.Participle.PresentParticiple); pp != "" {
				fmt.Fprintf(c.App.Writer, "Participe présent: %s\n", pp)
			}
			fmt.Fprintln(c.App.Writer)

			tbl := table.New("Mood", "Tense", "Forms").WithWriter(c.App.Writer)
			for _, row := range []struct {
				mood  string
				tense string
				forms conjugation.PersonForms
			}{
				{"Indicatif", "Présent", tmpl.Indicative.Present},
				{"Indicatif", "Imparfait", tmpl.Indicative.Imperfect},
				{"Indicatif", "Passé simple", tmpl.Indicative.SimplePast},
				{"Indicatif", "Futur", tmpl.Indicative.Future},
				{"Conditionnel", "Présent", tmpl.Conditional.Present},
				{"Subjonctif", "Présent", tmpl.Subjunctive.Present},
				{"Subjonctif", "Imparfait", tmpl.Subjunctive.Imperfect},
				{"Impératif", "Présent", tmpl.Imperative.ImperativePresent},
				{"Participe", "Passé", tmpl.Participle.PastParticiple},
			} {
				if len(row.forms) == 0 {
					continue
				}
				tbl.AddRow(row.mood, row.tense, joinForms(row.forms))
			}
			tbl.Print()

			return nil
		},
	}
}

// joinParts renders the sub-parts of one form, e.g. auxiliary plus
// participle, as a single string.
func joinParts(parts []string) string {
	return strings.Join(parts, " ")
}

func joinForms(forms conjugation.PersonForms) string {
	rendered := make([]string, 0, len(forms))
	for _, parts := range forms {
		rendered = append(rendered, joinParts(parts))
	}
	return strings.Join(rendered, ", ")
}
