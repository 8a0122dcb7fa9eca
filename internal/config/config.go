package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	API APIConfig
	UI  UIConfig
}

// APIConfig holds the shop endpoints. Mirror is an optional secondary origin
// tried when the primary fails; empty means no mirror.
type APIConfig struct {
	Origin         string
	Mirror         string
	TimeoutSeconds int `mapstructure:"timeout_seconds"`
}

// UIConfig holds presentation settings.
type UIConfig struct {
	Currency string
}

// Timeout returns the per-attempt request timeout.
func (a APIConfig) Timeout() time.Duration {
	return time.Duration(a.TimeoutSeconds) * time.Second
}

// Load reads configuration from file and env. Env var overrides use prefix
// LAREK_ (e.g. LAREK_API_ORIGIN).
func Load() (Config, error) {
	v := viper.New()

	// default values
	v.SetDefault("api.origin", "https://larek-api.nomoreparties.co")
	v.SetDefault("api.mirror", "")
	v.SetDefault("api.timeout_seconds", 10)
	v.SetDefault("ui.currency", "синапсов")

	v.SetConfigType("toml")

	cfgPath := os.Getenv("LAREK_CONFIG")
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "larek"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("LAREK")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// read config file if present
	_ = v.ReadInConfig()

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	c.API.Origin = strings.TrimRight(c.API.Origin, "/")
	c.API.Mirror = strings.TrimRight(c.API.Mirror, "/")
	return c, nil
}
