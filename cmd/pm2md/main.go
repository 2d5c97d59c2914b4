package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/huh"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/blackcoderx/pm2md/pkg/core"
	"github.com/blackcoderx/pm2md/pkg/postman"
	"github.com/blackcoderx/pm2md/pkg/storage"
)

// version is set at build time with -ldflags "-X main.version=..."
var version = "dev"

var (
	cfgFile  string
	target   string
	port     string
	dryRun   bool
	showDiff bool
	confirm  bool
	printDoc bool
	verbose  bool
	rootCmd  = &cobra.Command{
		Use:   "pm2md <collection-url> <output.md>",
		Short: "pm2md - Postman collections to Markdown",
		Long: `pm2md fetches a Postman collection and writes it as a Markdown document,
styled for local previewers (inline HTML) or for GitHub (badges and quote blocks).

With --target both, two files are written: <output>_LOCAL.md and <output>_GITHUB.md.`,
		Args:          cobra.ExactArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := loadConfig()
			log := newLogger()

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
			defer stop()

			converter := core.NewConverter(postman.NewFetcher(cfg.FetchTimeout()), converterOptions(cfg), log)

			results, err := converter.RunMode(ctx, args[0], args[1], cfg.Target)
			if err != nil {
				return err
			}

			for _, res := range results {
				if printDoc {
					printMarkdown(res.Content, cfg.WordWrap)
				}
				if res.Written {
					fmt.Printf("✓ %s written to %s\n", res.Target, res.Path)
				}
			}
			return nil
		},
	}
)

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is .pm2md/config.json)")
	rootCmd.PersistentFlags().StringVarP(&target, "target", "t", "", "Render target: local, github or both (default from config, local)")
	rootCmd.PersistentFlags().StringVarP(&port, "port", "p", "", "Port shown in example URLs (default $PORT)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	rootCmd.Flags().BoolVar(&dryRun, "dry-run", false, "Render without writing files")
	rootCmd.Flags().BoolVar(&showDiff, "diff", false, "Print a unified diff against existing files")
	rootCmd.Flags().BoolVar(&confirm, "confirm", false, "Ask before overwriting existing files")
	rootCmd.Flags().BoolVar(&printDoc, "print", false, "Print the rendered document to the terminal")

	rootCmd.Version = version
}

func initConfig() {
	// Load .env file if it exists (optional, warn if malformed)
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		fmt.Fprintf(os.Stderr, "Warning: Failed to load .env file: %v\n", err)
	}

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(core.ConfigFolderName)
		viper.SetConfigType("json")
		viper.SetConfigName("config")
	}

	viper.AutomaticEnv()
	_ = viper.ReadInConfig()
}

// loadConfig merges flags over the viper-backed configuration.
func loadConfig() core.Config {
	cfg := core.LoadConfig()
	if target != "" {
		cfg.Target = target
	}
	if port != "" {
		cfg.Port = port
	}
	return cfg
}

func newLogger() zerolog.Logger {
	return core.NewLogger(os.Stderr, verbose)
}

func converterOptions(cfg core.Config) core.Options {
	opts := core.Options{
		Port:   cfg.Port,
		DryRun: dryRun,
	}
	if showDiff {
		opts.DiffOut = os.Stdout
	}
	if confirm {
		opts.Confirm = confirmOverwrite
	}
	return opts
}

// confirmOverwrite asks on the terminal whether path may be replaced.
func confirmOverwrite(path, diff string) (bool, error) {
	var ok bool
	err := huh.NewConfirm().
		Title(fmt.Sprintf("Overwrite %s?", path)).
		Description(storage.Summary(diff)).
		Affirmative("Overwrite").
		Negative("Skip").
		Value(&ok).
		Run()
	if err != nil {
		return false, fmt.Errorf("confirmation failed: %w", err)
	}
	return ok, nil
}

// printMarkdown renders md with glamour, falling back to the raw text.
func printMarkdown(md string, wrap int) {
	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(wrap),
	)
	if err != nil {
		fmt.Println(md)
		return
	}

	out, err := renderer.Render(md)
	if err != nil {
		fmt.Println(md)
		return
	}

	fmt.Print(out)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
