package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	"github.com/charmbracelet/glamour"

	"github.com/blackcoderx/pm2md/pkg/core"
	"github.com/blackcoderx/pm2md/pkg/postman"
	"github.com/blackcoderx/pm2md/pkg/render"
)

// Model is the Bubble Tea model of the preview.
// It holds the fetched collection and renders it for the selected target:
// - viewport for the scrollable document
// - spinner while the collection is loading
// - glamour renderer for terminal output
type Model struct {
	viewport viewport.Model
	spinner  spinner.Model
	renderer *glamour.TermRenderer
	width    int
	height   int
	ready    bool

	ctx        context.Context
	cancel     context.CancelFunc // stops an in-flight fetch on quit
	fetcher    core.Fetcher
	url        string
	opts       render.Options
	target     render.Target
	collection *postman.Collection
	loading    bool
	raw        bool   // show Markdown source instead of the rendered view
	status     string // transient footer message, e.g. "copied"
	err        error
}

// collectionMsg carries the result of the fetch.
type collectionMsg struct {
	collection *postman.Collection
	err        error
}
