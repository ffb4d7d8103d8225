// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package main

import (
	"errors"
	"io"
	"io/fs"
	"log/slog"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

type rootFlags struct {
	envFile  string
	logLevel string
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "bookingsite",
		Short:         "Themed public sites for booking companies",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// A missing .env is normal outside development.
			if err := godotenv.Load(flags.envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
				return err
			}
			return nil
		},
	}

	cmd.PersistentFlags().StringVar(&flags.envFile, "env-file", ".env", "Environment file loaded before reading configuration")
	cmd.PersistentFlags().StringVar(&flags.logLevel, "log-level", "", "Log level (debug, info, warn, error); defaults by APP_ENV")

	cmd.AddCommand(newServeCmd(flags))
	cmd.AddCommand(newCSSCmd())
	cmd.AddCommand(newIndustriesCmd())
	cmd.AddCommand(newExportCmd(flags))
	cmd.AddCommand(newCacheCmd(flags))
	cmd.AddCommand(newVersionCmd())

	return cmd
}

// newLogger returns a text logger in development and a JSON logger
// otherwise. level overrides the environment's default level.
func newLogger(w io.Writer, dev bool, level string) *slog.Logger {
	lvl := slog.LevelInfo
	if dev {
		lvl = slog.LevelDebug
	}
	if level != "" {
		var parsed slog.Level
		if err := parsed.UnmarshalText([]byte(level)); err == nil {
			lvl = parsed
		}
	}

	opts := &slog.HandlerOptions{Level: lvl}
	if dev {
		return slog.New(slog.NewTextHandler(w, opts))
	}
	return slog.New(slog.NewJSONHandler(w, opts))
}
