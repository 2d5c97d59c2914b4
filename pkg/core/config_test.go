package core

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/blackcoderx/pm2md/pkg/storage"
)

func TestLoadConfig_Defaults(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	cfg := LoadConfig()
	assert.Equal(t, DefaultConfig(), cfg)
	assert.Equal(t, "3000", cfg.Port, "unset PORT falls back to 3000")
	assert.Equal(t, 30*time.Second, cfg.FetchTimeout())
}

func TestLoadConfig_EnvAndFile(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	dir := t.TempDir()
	path := filepath.Join(dir, "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"target": "github", "timeout": 5, "rate_limit": 0.5}`), 0644))

	t.Setenv("PORT", "8081")
	viper.SetConfigFile(path)
	viper.AutomaticEnv()
	require.NoError(t, viper.ReadInConfig())

	cfg := LoadConfig()
	assert.Equal(t, "8081", cfg.Port)
	assert.Equal(t, ModeGitHub, cfg.Target)
	assert.Equal(t, 5*time.Second, cfg.FetchTimeout())
	assert.Equal(t, 0.5, cfg.RateLimit)
	assert.Equal(t, 100, cfg.WordWrap)
}

func TestInitializeConfigFolder(t *testing.T) {
	dir := filepath.Join(t.TempDir(), ConfigFolderName)

	created, err := InitializeConfigFolder(dir)
	require.NoError(t, err)
	assert.True(t, created)

	data, err := os.ReadFile(filepath.Join(dir, "config.json"))
	require.NoError(t, err)
	var cfg Config
	require.NoError(t, json.Unmarshal(data, &cfg))
	assert.Equal(t, DefaultConfig(), cfg)

	m, err := storage.LoadManifest(filepath.Join(dir, ManifestFileName))
	require.NoError(t, err)
	require.Len(t, m.Collections, 1)
	assert.Equal(t, ModeBoth, m.Collections[0].Target)

	created, err = InitializeConfigFolder(dir)
	require.NoError(t, err)
	assert.False(t, created, "second run leaves existing files alone")
}
