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
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/urfave/cli/v2"
	"sigs.k8s.io/release-utils/version"

	conjugueur "github.com/conjugueur/conjugueur"
	"github.com/conjugueur/conjugueur/internal/config"
)

const (
	// ExitCodeSuccess is successful error code.
	ExitCodeSuccess int = iota

	// ExitCodeFlagParseError is the exit code for a flag parsing error.
	ExitCodeFlagParseError

	// ExitCodeUnknownError is the exit code for an unknown error.
	ExitCodeUnknownError
)

// ErrConjugueur is a parent error for all command errors.
var ErrConjugueur = errors.New("conjugueur")

// ErrFlagParse is a flag parsing error.
var ErrFlagParse = fmt.Errorf("%w: parsing flags", ErrConjugueur)

//nolint:gochecknoinits // init needed for global variable.
func init() {
	// Set the HelpFlag to a random name so that it isn't used. `cli` handles
	// the flag with the root command such that it takes a command name
	// argument but the root command doesn't use one.
	//
	// This flag is hidden by the help output.
	// See: github.com/urfave/cli/issues/1809
	cli.HelpFlag = &cli.BoolFlag{
		// NOTE: Use a random name no one would guess.
		Name:               "d41d8cd98f00b204e980",
		DisableDefaultText: true,
	}
}

// check checks the error and panics if not nil.
func check(err error) {
	if err != nil {
		panic(err)
	}
}

// dataFlags are shared by the commands that load the XML data set.
func dataFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "verbs",
			Usage:   "load the verb list from `FILE`",
			Aliases: []string{"v"},
		},
		&cli.StringFlag{
			Name:    "conjugation",
			Usage:   "load the conjugation templates from `FILE`",
			Aliases: []string{"c"},
		},
	}
}

// loadData loads the data set from the paths given by flags, falling back
// to the configured paths.
func loadData(c *cli.Context) (*conjugueur.Conjugueur, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConjugueur, err)
	}

	verbsPath := cfg.Data.VerbsPath
	if p := c.String("verbs"); p != "" {
		verbsPath = p
	}
	conjugationPath := cfg.Data.ConjugationPath
	if p := c.String("conjugation"); p != "" {
		conjugationPath = p
	}

	data, err := conjugueur.Open(verbsPath, conjugationPath)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConjugueur, err)
	}
	return data, nil
}

func printVersion(c *cli.Context) error {
	versionInfo := version.GetVersionInfo()
	versionInfo.Name = c.App.Name
	versionInfo.Description = c.App.Usage
	_, err := fmt.Fprintln(c.App.Writer, versionInfo.String())
	if err != nil {
		return fmt.Errorf("%w: printing version: %w", ErrConjugueur, err)
	}
	return nil
}

func newConjugueurApp() *cli.App {
	return &cli.App{
		Name:  filepath.Base(os.Args[0]),
		Usage: "Serve and query French verb conjugations.",
		Flags: []cli.Flag{
			// Special flags are shown at the end.
			&cli.BoolFlag{
				Name:               "help",
				Usage:              "print this help text and exit",
				Aliases:            []string{"h"},
				DisableDefaultText: true,
			},
			&cli.BoolFlag{
				Name:               "version",
				Usage:              "print version information and exit",
				Aliases:            []string{"V"},
				DisableDefaultText: true,
			},
		},
		Copyright:       "2025 The Conjugueur Authors",
		HideHelp:        true,
		HideHelpCommand: true,
		Action: func(c *cli.Context) error {
			if c.Bool("version") {
				return printVersion(c)
			}

			check(cli.ShowAppHelp(c))
			return nil
		},
		Commands: []*cli.Command{
			serveCommand(),
			queryCommand(),
			showCommand(),
		},
	}
}
