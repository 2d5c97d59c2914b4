// Package core wires the fetcher, the renderer and storage together into
// single, dual-target and batch conversion runs.
package core

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
	"golang.org/x/time/rate"

	"github.com/blackcoderx/pm2md/pkg/postman"
	"github.com/blackcoderx/pm2md/pkg/render"
	"github.com/blackcoderx/pm2md/pkg/storage"
)

// Output modes accepted by RunMode and manifests.
const (
	ModeLocal  = "local"
	ModeGitHub = "github"
	ModeBoth   = "both"
)

// Fetcher retrieves a collection. *postman.Fetcher implements it.
type Fetcher interface {
	Fetch(ctx context.Context, url string) (*postman.Collection, error)
}

// ConfirmFunc is asked before an existing file is overwritten with
// different content. Returning false skips that file.
type ConfirmFunc func(path, diff string) (bool, error)

// Options controls a Converter.
type Options struct {
	// Port is interpolated into example request URLs.
	Port string
	// DryRun renders without writing anything.
	DryRun bool
	// DiffOut, when set, receives a unified diff for every file whose
	// content changes.
	DiffOut io.Writer
	// Confirm, when set, gates overwriting existing files.
	Confirm ConfirmFunc
}

// Result describes one rendered document.
type Result struct {
	Target  render.Target
	Path    string
	Content string
	Written bool
}

// Converter runs the fetch, render, write pipeline. Runs are fail-fast: the
// first error aborts and files already written stay in place.
type Converter struct {
	fetcher Fetcher
	opts    Options
	log     zerolog.Logger
}

// NewConverter creates a converter.
func NewConverter(fetcher Fetcher, opts Options, log zerolog.Logger) *Converter {
	return &Converter{
		fetcher: fetcher,
		opts:    opts,
		log:     log,
	}
}

// Run converts the collection at url for one target and writes it to outputPath.
func (c *Converter) Run(ctx context.Context, url, outputPath string, target render.Target) (*Result, error) {
	col, err := c.fetch(ctx, url)
	if err != nil {
		return nil, err
	}

	res, err := c.emit(col, target, outputPath)
	if err != nil {
		return nil, err
	}
	return &res, nil
}

// RunDual converts the collection at url for both targets, writing
// <prefix>_LOCAL.md and then <prefix>_GITHUB.md, where prefix is
// outputPath without a trailing ".md".
func (c *Converter) RunDual(ctx context.Context, url, outputPath string) ([]Result, error) {
	col, err := c.fetch(ctx, url)
	if err != nil {
		return nil, err
	}

	local, github := storage.DualPaths(outputPath)
	paths := map[render.Target]string{render.Local: local, render.GitHub: github}

	results := make([]Result, 0, len(render.Targets))
	for _, target := range render.Targets {
		res, err := c.emit(col, target, paths[target])
		if err != nil {
			return results, err
		}
		results = append(results, res)
	}
	return results, nil
}

// RunMode dispatches on mode: "both" runs RunDual, "local" or "github" run
// a single target.
func (c *Converter) RunMode(ctx context.Context, url, outputPath, mode string) ([]Result, error) {
	if strings.EqualFold(strings.TrimSpace(mode), ModeBoth) {
		return c.RunDual(ctx, url, outputPath)
	}

	target, err := render.ParseTarget(mode)
	if err != nil {
		return nil, err
	}

	res, err := c.Run(ctx, url, outputPath, target)
	if err != nil {
		return nil, err
	}
	return []Result{*res}, nil
}

// RunManifest converts every manifest entry in order. Entries without a
// target use defaultMode. Fetches are spaced by limiter when it is non-nil.
func (c *Converter) RunManifest(ctx context.Context, m *storage.Manifest, defaultMode string, limiter *rate.Limiter) ([]Result, error) {
	var results []Result
	for _, entry := range m.Collections {
		if limiter != nil {
			if err := limiter.Wait(ctx); err != nil {
				return results, err
			}
		}

		mode := entry.Target
		if mode == "" {
			mode = defaultMode
		}

		c.log.Info().Str("collection", entry.Name).Str("mode", mode).Msg("converting")
		res, err := c.RunMode(ctx, entry.URL, entry.Output, mode)
		results = append(results, res...)
		if err != nil {
			return results, fmt.Errorf("%s: %w", entry.Name, err)
		}
	}
	return results, nil
}

// Render fetches the collection at url and renders it without writing.
func (c *Converter) Render(ctx context.Context, url string, target render.Target) (string, error) {
	col, err := c.fetch(ctx, url)
	if err != nil {
		return "", err
	}
	return render.Render(col, target, render.Options{Port: c.opts.Port}), nil
}

func (c *Converter) fetch(ctx context.Context, url string) (*postman.Collection, error) {
	c.log.Debug().Str("url", url).Msg("fetching collection")

	col, err := c.fetcher.Fetch(ctx, url)
	if err != nil {
		return nil, err
	}

	c.log.Debug().Str("name", col.Info.Name).Int("folders", len(col.Item)).Msg("collection fetched")
	for _, name := range col.NestedFolders() {
		c.log.Warn().Str("folder", name).Msg("nested folders are not supported, rendering it as a request")
	}
	return col, nil
}

// emit renders col for target and writes it to path.
func (c *Converter) emit(col *postman.Collection, target render.Target, path string) (Result, error) {
	content := render.Render(col, target, render.Options{Port: c.opts.Port})
	res := Result{Target: target, Path: path, Content: content}

	if c.opts.DryRun {
		c.log.Info().Str("target", target.String()).Str("path", path).Msg("dry run, not writing")
		return res, nil
	}

	if c.opts.DiffOut != nil || c.opts.Confirm != nil {
		existing, exists, err := storage.ReadExisting(path)
		if err != nil {
			return res, &storage.WriteError{Path: path, Cause: err}
		}

		diff := storage.Diff(filepath.Base(path), existing, content)
		if diff != "" && c.opts.DiffOut != nil {
			fmt.Fprint(c.opts.DiffOut, diff)
		}

		if exists && diff != "" && c.opts.Confirm != nil {
			ok, err := c.opts.Confirm(path, diff)
			if err != nil {
				return res, err
			}
			if !ok {
				c.log.Info().Str("path", path).Msg("skipped, not confirmed")
				return res, nil
			}
		}
	}

	if err := storage.WriteDocument(path, content); err != nil {
		return res, err
	}

	res.Written = true
	c.log.Info().Str("target", target.String()).Str("path", path).Int("bytes", len(content)).Msg("written")
	return res, nil
}
