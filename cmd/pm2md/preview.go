package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"

	"github.com/spf13/cobra"

	"github.com/blackcoderx/pm2md/pkg/core"
	"github.com/blackcoderx/pm2md/pkg/postman"
	"github.com/blackcoderx/pm2md/pkg/render"
	"github.com/blackcoderx/pm2md/pkg/tui"
)

func init() {
	rootCmd.AddCommand(previewCmd)
}

var previewCmd = &cobra.Command{
	Use:   "preview <collection-url>",
	Short: "Browse the rendered document in the terminal",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := loadConfig()

		t := render.Local
		if !isBothMode(cfg.Target) {
			var err error
			if t, err = render.ParseTarget(cfg.Target); err != nil {
				return err
			}
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()

		if err := tui.Run(ctx, postman.NewFetcher(cfg.FetchTimeout()), args[0], t, render.Options{Port: cfg.Port}); err != nil {
			return fmt.Errorf("preview failed: %w", err)
		}
		return nil
	},
}

// isBothMode reports whether mode selects both targets, matching RunMode.
func isBothMode(mode string) bool {
	return strings.EqualFold(strings.TrimSpace(mode), core.ModeBoth)
}
