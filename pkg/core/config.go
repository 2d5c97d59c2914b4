package core

import (
	"time"

	"github.com/spf13/viper"

	"github.com/blackcoderx/pm2md/pkg/postman"
)

// ConfigFolderName is the per-project folder holding config.json.
const ConfigFolderName = ".pm2md"

// Config represents the user's pm2md configuration.
type Config struct {
	Port      string  `json:"port"`       // Port shown in example request URLs
	Target    string  `json:"target"`     // local, github or both
	Timeout   int     `json:"timeout"`    // Fetch timeout in seconds
	WordWrap  int     `json:"word_wrap"`  // Width used when printing to the terminal
	RateLimit float64 `json:"rate_limit"` // Batch fetches per second
}

// DefaultConfig returns the values used when nothing is configured.
func DefaultConfig() Config {
	return Config{
		Port:      "3000",
		Target:    ModeLocal,
		Timeout:   int(postman.DefaultTimeout / time.Second),
		WordWrap:  100,
		RateLimit: 1,
	}
}

// LoadConfig reads the configuration from viper, which has already merged
// the config file and the environment (PORT included). Missing values fall
// back to DefaultConfig.
func LoadConfig() Config {
	cfg := DefaultConfig()

	if port := viper.GetString("port"); port != "" {
		cfg.Port = port
	}
	if target := viper.GetString("target"); target != "" {
		cfg.Target = target
	}
	if timeout := viper.GetInt("timeout"); timeout > 0 {
		cfg.Timeout = timeout
	}
	if wrap := viper.GetInt("word_wrap"); wrap > 0 {
		cfg.WordWrap = wrap
	}
	if limit := viper.GetFloat64("rate_limit"); limit > 0 {
		cfg.RateLimit = limit
	}

	return cfg
}

// FetchTimeout returns Timeout as a duration.
func (c Config) FetchTimeout() time.Duration {
	return time.Duration(c.Timeout) * time.Second
}
