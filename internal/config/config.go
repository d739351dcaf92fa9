package config

import (
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds the CLI configuration loaded from environment variables and
// an optional .env file. The API key itself stays out of any config file.
type Config struct {
	APIKey                string        `mapstructure:"adj_news_api_key"`
	LogLevel              string        `mapstructure:"log_level"`
	RequestTimeoutSeconds int64         `mapstructure:"request_timeout_seconds"`
	RequestTimeout        time.Duration `mapstructure:"-"`
	Output                string        `mapstructure:"output"`
}

// Load reads configuration from environment variables, consulting a local
// .env file first when present.
func Load() (*Config, error) {
	_ = godotenv.Load(".env")

	v := viper.New()

	v.SetDefault("log_level", "info")
	v.SetDefault("request_timeout_seconds", 15)
	v.SetDefault("output", "json")

	v.AutomaticEnv()
	// AutomaticEnv only resolves keys viper already knows about.
	if err := v.BindEnv("adj_news_api_key"); err != nil {
		return nil, fmt.Errorf("bind env: %w", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if cfg.RequestTimeoutSeconds <= 0 {
		return nil, fmt.Errorf("invalid request_timeout_seconds (must be positive seconds)")
	}
	cfg.RequestTimeout = time.Duration(cfg.RequestTimeoutSeconds) * time.Second

	switch cfg.Output {
	case "json", "yaml":
	default:
		return nil, fmt.Errorf("invalid output %q (expected json or yaml)", cfg.Output)
	}

	return &cfg, nil
}
