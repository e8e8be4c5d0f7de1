package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Listen    string        `mapstructure:"listen"`
	DataFile  string        `mapstructure:"data_file"`
	JWTSecret string        `mapstructure:"jwt_secret"`
	TokenTTL  time.Duration `mapstructure:"token_ttl"`
}

// Load reads configuration from scorecast.yaml (if present) and SCORECAST_*
// environment variables. The signing secret has no default and must be
// provided by the operator.
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("scorecast")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.SetEnvPrefix("scorecast")
	v.AutomaticEnv()

	v.SetDefault("listen", ":8080")
	v.SetDefault("data_file", "data/data.json")
	v.SetDefault("token_ttl", 24*time.Hour)

	// No default for the secret; bind it explicitly so Unmarshal sees the
	// env value even without a config file.
	if err := v.BindEnv("jwt_secret"); err != nil {
		return nil, fmt.Errorf("failed to bind jwt_secret: %w", err)
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("jwt_secret is required (set SCORECAST_JWT_SECRET)")
	}

	return &cfg, nil
}
