// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"sync"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"bookingsite/internal/backend"
	"bookingsite/internal/config"
	"bookingsite/internal/engine"
	"bookingsite/internal/export"
	"bookingsite/internal/slug"
	"bookingsite/internal/storage"
)

// exportConcurrency bounds parallel site exports.
const exportConcurrency = 4

func newExportCmd(root *rootFlags) *cobra.Command {
	var (
		slugs  []string
		remove bool
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Render company sites and upload them to the public bucket",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, s := range slugs {
				if !slug.Valid(s) {
					return fmt.Errorf("invalid slug %q", s)
				}
			}

			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("load configuration: %w", err)
			}
			slog.SetDefault(newLogger(os.Stderr, cfg.IsDev(), root.logLevel))

			uploader, err := storage.New(cfg.S3Endpoint, cfg.S3Region, cfg.S3AccessKey, cfg.S3SecretKey, cfg.S3Bucket, cfg.S3PublicURL)
			if err != nil {
				return fmt.Errorf("initialize storage: %w", err)
			}
			if uploader == nil {
				return errors.New("S3 storage is not configured (set S3_ENDPOINT, S3_ACCESS_KEY and S3_SECRET_KEY)")
			}

			eng, err := engine.New(cfg.BookingBaseURL)
			if err != nil {
				return fmt.Errorf("initialize engine: %w", err)
			}
			exp := export.New(backend.New(cfg.BackendURL, cfg.BackendTimeout), eng, uploader)
			slog.Info("export starting", "bucket", uploader.Bucket(), "sites", len(slugs), "remove", remove)

			var mu sync.Mutex
			g, ctx := errgroup.WithContext(cmd.Context())
			g.SetLimit(exportConcurrency)
			for _, s := range slugs {
				g.Go(func() error {
					if remove {
						if err := exp.Remove(ctx, s); err != nil {
							return err
						}
						mu.Lock()
						defer mu.Unlock()
						fmt.Fprintf(cmd.OutOrStdout(), "%s\tremoved\n", s)
						return nil
					}

					res, err := exp.Export(ctx, s)
					if err != nil {
						return err
					}
					mu.Lock()
					defer mu.Unlock()
					fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s\n", s, res.PageURL, res.CSSURL)
					return nil
				})
			}
			return g.Wait()
		},
	}

	cmd.Flags().StringSliceVar(&slugs, "slug", nil, "Company slug to export (repeatable)")
	cmd.Flags().BoolVar(&remove, "remove", false, "Delete the exported files instead of uploading")
	_ = cmd.MarkFlagRequired("slug")

	return cmd
}
