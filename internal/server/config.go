package server

import (
	"fmt"

	"github.com/spf13/viper"
)

// Config defines runtime parameters for the HTTP server.
type Config struct {
	Address       string `mapstructure:"address"`
	ReferencePath string `mapstructure:"reference_path"`
	RedisAddr     string `mapstructure:"redis_addr"`
	CacheTTLHours int    `mapstructure:"cache_ttl_hours"`
	LogLevel      string `mapstructure:"log_level"`
}

// DefaultConfig returns the server defaults: listen on :8080, embedded
// reference tables, in-memory cache, info logging.
func DefaultConfig() *Config {
	return &Config{
		Address:       ":8080",
		CacheTTLHours: 24,
		LogLevel:      "info",
	}
}

// LoadConfig loads server configuration from a YAML file with environment
// variable overrides (HOMECAST_ADDRESS, HOMECAST_REDIS_ADDR, ...). An empty
// path returns the defaults.
func LoadConfig(configPath string) (*Config, error) {
	cfg := DefaultConfig()
	if configPath == "" {
		return cfg, nil
	}

	v := viper.New()
	v.SetConfigFile(configPath)
	v.SetConfigType("yaml")
	v.SetEnvPrefix("homecast")
	v.AutomaticEnv()

	v.SetDefault("address", cfg.Address)
	v.SetDefault("cache_ttl_hours", cfg.CacheTTLHours)
	v.SetDefault("log_level", cfg.LogLevel)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read server config %s: %w", configPath, err)
	}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse server config: %w", err)
	}
	if cfg.Address == "" {
		cfg.Address = ":8080"
	}
	if cfg.CacheTTLHours <= 0 {
		cfg.CacheTTLHours = 24
	}
	return cfg, nil
}
