// Package tui provides the interactive preview of a rendered collection.
// It uses Bubble Tea with a scrollable glamour-rendered viewport.
//
// File organization:
// - app.go: Entry point (Run function)
// - model.go: Model struct and message types
// - init.go: Model initialization
// - update.go: Event handling and state updates
// - view.go: Rendering and display logic
// - keys.go: Keyboard input handling
// - styles.go: Visual styling (colors, borders, etc.)
package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/blackcoderx/pm2md/pkg/core"
	"github.com/blackcoderx/pm2md/pkg/render"
)

// Run fetches the collection at url and shows it until the user quits.
func Run(ctx context.Context, fetcher core.Fetcher, url string, target render.Target, opts render.Options) error {
	m := InitialModel(ctx, fetcher, url, target, opts)
	defer m.cancel()
	prog := tea.NewProgram(m, tea.WithContext(ctx), tea.WithAltScreen(), tea.WithMouseCellMotion())

	final, err := prog.Run()
	if err != nil {
		return err
	}

	// surface fetch failures to the caller after the screen is restored
	if fm, ok := final.(Model); ok && fm.err != nil {
		return fm.err
	}
	return nil
}
