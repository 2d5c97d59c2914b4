package tui

import (
	"context"
	"errors"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/blackcoderx/pm2md/pkg/postman"
	"github.com/blackcoderx/pm2md/pkg/render"
)

type stubFetcher struct {
	c   *postman.Collection
	err error
}

func (s stubFetcher) Fetch(context.Context, string) (*postman.Collection, error) {
	return s.c, s.err
}

func sampleCollection() *postman.Collection {
	return &postman.Collection{
		Info: postman.Info{Name: "Shop API"},
		Item: []postman.Folder{{
			Name: "Auth",
			Item: []postman.Item{{Name: "Login", Request: &postman.RequestObject{Method: "GET"}}},
		}},
	}
}

// step feeds msg to m and returns the resulting Model.
func step(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	nm, ok := next.(Model)
	require.True(t, ok)
	return nm
}

func loadedModel(t *testing.T) Model {
	m := InitialModel(context.Background(), stubFetcher{c: sampleCollection()}, "http://x", render.Local, render.Options{Port: "3000"})
	m = step(t, m, tea.WindowSizeMsg{Width: 100, Height: 30})
	return step(t, m, collectionMsg{collection: sampleCollection()})
}

func TestModel_Loads(t *testing.T) {
	m := InitialModel(context.Background(), stubFetcher{}, "http://x", render.Local, render.Options{})
	assert.Equal(t, "Initializing...", m.View())

	m = loadedModel(t)
	assert.False(t, m.loading)
	assert.Contains(t, m.document(), "<details open>")
	assert.Contains(t, m.View(), "pm2md")
}

func TestModel_SwitchTarget(t *testing.T) {
	m := loadedModel(t)
	require.Equal(t, render.Local, m.target)

	m = step(t, m, tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, render.GitHub, m.target)
	assert.Contains(t, m.document(), "# Shop API")

	m = step(t, m, tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, render.Local, m.target)
}

func TestModel_ToggleRaw(t *testing.T) {
	m := loadedModel(t)
	m = step(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("r")})
	assert.True(t, m.raw)
	assert.Contains(t, m.viewport.View(), "<details open>")
}

func TestModel_FetchErrorQuits(t *testing.T) {
	m := InitialModel(context.Background(), stubFetcher{}, "http://x", render.Local, render.Options{})
	next, cmd := m.Update(collectionMsg{err: errors.New("boom")})

	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
	assert.EqualError(t, next.(Model).err, "boom")
}

func TestFetchCollection(t *testing.T) {
	msg := fetchCollection(context.Background(), stubFetcher{c: sampleCollection()}, "http://x")()
	cm, ok := msg.(collectionMsg)
	require.True(t, ok)
	assert.NoError(t, cm.err)
	assert.Equal(t, "Shop API", cm.collection.Info.Name)
}

// blockingFetcher waits for its context to end.
type blockingFetcher struct{}

func (blockingFetcher) Fetch(ctx context.Context, _ string) (*postman.Collection, error) {
	<-ctx.Done()
	return nil, ctx.Err()
}

func TestModel_QuitCancelsFetch(t *testing.T) {
	m := InitialModel(context.Background(), blockingFetcher{}, "http://x", render.Local, render.Options{})
	fetch := fetchCollection(m.ctx, m.fetcher, m.url)

	done := make(chan tea.Msg, 1)
	go func() { done <- fetch() }()

	m = step(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	assert.ErrorIs(t, m.ctx.Err(), context.Canceled)

	select {
	case msg := <-done:
		cm, ok := msg.(collectionMsg)
		require.True(t, ok)
		assert.ErrorIs(t, cm.err, context.Canceled)
	case <-time.After(5 * time.Second):
		t.Fatal("fetch did not stop after quit")
	}
}
