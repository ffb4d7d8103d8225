// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"bookingsite/internal/cache"
	"bookingsite/internal/config"
	"bookingsite/internal/slug"
)

// purger drops rendered sites from the page cache. *cache.SiteCache
// satisfies it.
type purger interface {
	Invalidate(ctx context.Context, slug string)
	InvalidateAll(ctx context.Context)
}

func newCacheCmd(root *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cache",
		Short: "Manage the rendered site cache",
	}
	cmd.AddCommand(newCachePurgeCmd(root))
	return cmd
}

func newCachePurgeCmd(root *rootFlags) *cobra.Command {
	var (
		slugs []string
		all   bool
	)

	cmd := &cobra.Command{
		Use:   "purge",
		Short: "Drop cached pages so the next request renders from the backend",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if all == (len(slugs) > 0) {
				return errors.New("pass either --slug or --all")
			}
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

			client, err := cache.ConnectValkey(cmd.Context(), cfg.ValkeyAddr(), cfg.ValkeyPassword, cfg.ValkeyDB)
			if err != nil {
				return fmt.Errorf("connect to valkey: %w", err)
			}
			defer client.Close()

			purge(cmd.Context(), cache.NewSiteCache(client, cfg.PageCacheTTL), slugs, cmd.OutOrStdout())
			return nil
		},
	}

	cmd.Flags().StringSliceVar(&slugs, "slug", nil, "Company slug to purge (repeatable)")
	cmd.Flags().BoolVar(&all, "all", false, "Purge every cached site")

	return cmd
}

// purge invalidates the given slugs, or everything when slugs is empty.
func purge(ctx context.Context, p purger, slugs []string, out io.Writer) {
	if len(slugs) == 0 {
		p.InvalidateAll(ctx)
		fmt.Fprintln(out, "purged all sites")
		return
	}
	for _, s := range slugs {
		p.Invalidate(ctx, s)
		fmt.Fprintf(out, "%s\tpurged\n", s)
	}
}
