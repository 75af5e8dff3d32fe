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
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v2"

	conjugueur "github.com/conjugueur/conjugueur"
	"github.com/conjugueur/conjugueur/internal/config"
	"github.com/conjugueur/conjugueur/internal/logging"
	"github.com/conjugueur/conjugueur/internal/server"
)

func serveCommand() *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "Run the conjugation API server",
		Flags: append(dataFlags(),
			&cli.StringFlag{
				Name:  "host",
				Usage: "listen on `HOST`",
			},
			&cli.IntFlag{
				Name:    "port",
				Usage:   "listen on `PORT`",
				Aliases: []string{"p"},
			},
		),
		Action: func(c *cli.Context) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("%w: %w", ErrConjugueur, err)
			}
			if host := c.String("host"); host != "" {
				cfg.Server.Host = host
			}
			if port := c.Int("port"); port != 0 {
				cfg.Server.Port = port
			}

			logger := logging.New(cfg.Log)

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
				return fmt.Errorf("%w: %w", ErrConjugueur, err)
			}
			logger.Info("data set loaded",
				slog.Int("verbs", data.VerbCount()),
				slog.Int("templates", data.TemplateCount()),
			)

			ctx, stop := signal.NotifyContext(c.Context, os.Interrupt, syscall.SIGTERM)
			defer stop()

			if err := server.New(cfg, logger, data).Run(ctx); err != nil {
				return fmt.Errorf("%w: %w", ErrConjugueur, err)
			}
			return nil
		},
	}
}
