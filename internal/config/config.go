package config

import (
	"time"
)

type Config struct {
	Server     ServerConfig
	Store      StoreConfig
	Logging    LoggingConfig
	Moderation ModerationConfig
}

type ServerConfig struct {
	Port                int           `mapstructure:"port"`
	ReadTimeoutSeconds  time.Duration `mapstructure:"read_timeout_seconds"`
	WriteTimeoutSeconds time.Duration `mapstructure:"write_timeout_seconds"`
	Environment         string        `mapstructure:"environment"`
}

// StoreConfig points at the external record store. APIKey and
// CollectionID are deliberately allowed to be empty here: their absence
// is a per-request misconfiguration error, checked by the submission
// service before any store call, not a boot failure.
type StoreConfig struct {
	BaseURL        string        `mapstructure:"base_url"`
	APIKey         string        `mapstructure:"api_key"`
	CollectionID   string        `mapstructure:"collection_id"`
	TimeoutSeconds time.Duration `mapstructure:"timeout_seconds"`
}

type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

type ModerationConfig struct {
	ExtraWords []string `mapstructure:"extra_words"`
}

func (s ServerConfig) IsProduction() bool {
	return s.Environment == "production"
}

func Load(configFile string) (*Config, error) {
	return LoadConfig(configFile)
}
