package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"whisperboard/internal/constants"
)

func LoadConfig(configFile string) (*Config, error) {
	viper.Reset()

	viper.SetConfigType("yaml")
	viper.SetConfigFile(configFile)

	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	bindEnvVariables()
	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", configFile, err)
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := ValidateStatic(&cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &cfg, nil
}

func bindEnvVariables() {
	viper.BindEnv("server.port", "SERVER_PORT")
	viper.BindEnv("server.read_timeout_seconds", "SERVER_READ_TIMEOUT_SECONDS")
	viper.BindEnv("server.write_timeout_seconds", "SERVER_WRITE_TIMEOUT_SECONDS")
	viper.BindEnv("server.environment", "SERVER_ENVIRONMENT")

	viper.BindEnv("store.base_url", "STORE_BASE_URL")
	viper.BindEnv("store.api_key", "STORE_API_KEY")
	viper.BindEnv("store.collection_id", "STORE_COLLECTION_ID")
	viper.BindEnv("store.timeout_seconds", "STORE_TIMEOUT_SECONDS")

	viper.BindEnv("logging.level", "LOGGING_LEVEL")
	viper.BindEnv("logging.format", "LOGGING_FORMAT")
}

func setDefaults() {
	viper.SetDefault("store.base_url", constants.DefaultStoreBaseURL)
	viper.SetDefault("store.timeout_seconds", "10s")
	viper.SetDefault("server.environment", "development")
	viper.SetDefault("logging.level", "info")
}
