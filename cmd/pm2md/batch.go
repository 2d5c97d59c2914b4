package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/spf13/cobra"
	"golang.org/x/time/rate"

	"github.com/blackcoderx/pm2md/pkg/core"
	"github.com/blackcoderx/pm2md/pkg/postman"
	"github.com/blackcoderx/pm2md/pkg/storage"
)

func init() {
	batchCmd.Flags().BoolVar(&dryRun, "dry-run", false, "Render without writing files")
	batchCmd.Flags().BoolVar(&showDiff, "diff", false, "Print a unified diff against existing files")
	batchCmd.Flags().BoolVar(&confirm, "confirm", false, "Ask before overwriting existing files")
	rootCmd.AddCommand(batchCmd)
}

var batchCmd = &cobra.Command{
	Use:   "batch [manifest.yaml]",
	Short: "Convert every collection listed in a YAML manifest",
	Long: `Convert every collection listed in a YAML manifest, one after another.
Without an argument, .pm2md/collections.yaml is used. Fetches are spaced
according to rate_limit (fetches per second) and the run stops at the first error.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := filepath.Join(core.ConfigFolderName, core.ManifestFileName)
		if len(args) == 1 {
			path = args[0]
		}

		manifest, err := storage.LoadManifest(path)
		if err != nil {
			return err
		}

		cfg := loadConfig()
		log := newLogger()

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()

		converter := core.NewConverter(postman.NewFetcher(cfg.FetchTimeout()), converterOptions(cfg), log)
		limiter := rate.NewLimiter(rate.Limit(cfg.RateLimit), 1)

		results, err := converter.RunManifest(ctx, manifest, cfg.Target, limiter)
		for _, res := range results {
			if res.Written {
				fmt.Printf("✓ %s written to %s\n", res.Target, res.Path)
			}
		}
		return err
	},
}
