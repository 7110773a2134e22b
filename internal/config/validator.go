package config

import (
	"fmt"
)

type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error for field '%s': %s", e.Field, e.Message)
}

// ValidateStatic checks everything that must hold before the service
// can listen at all. Store credentials are intentionally excluded: a
// missing API key or collection id is surfaced as a 500 on each
// request, matching the misconfiguration taxonomy.
func ValidateStatic(cfg *Config) error {
	var errors []error

	if err := validateServer(cfg.Server); err != nil {
		errors = append(errors, err)
	}

	if err := validateStore(cfg.Store); err != nil {
		errors = append(errors, err)
	}

	if len(errors) > 0 {
		return fmt.Errorf("configuration validation failed: %v", errors)
	}

	return nil
}

func validateServer(cfg ServerConfig) error {
	if cfg.Port < 1 || cfg.Port > 65535 {
		return &ValidationError{
			Field:   "server.port",
			Message: fmt.Sprintf("port must be between 1 and 65535, got %d", cfg.Port),
		}
	}

	if cfg.ReadTimeoutSeconds <= 0 {
		return &ValidationError{
			Field:   "server.read_timeout_seconds",
			Message: "read timeout must be positive",
		}
	}

	if cfg.WriteTimeoutSeconds <= 0 {
		return &ValidationError{
			Field:   "server.write_timeout_seconds",
			Message: "write timeout must be positive",
		}
	}

	switch cfg.Environment {
	case "development", "staging", "production":
	default:
		return &ValidationError{
			Field:   "server.environment",
			Message: fmt.Sprintf("unknown environment %q", cfg.Environment),
		}
	}

	return nil
}

func validateStore(cfg StoreConfig) error {
	if cfg.BaseURL == "" {
		return &ValidationError{
			Field:   "store.base_url",
			Message: "base URL must not be empty",
		}
	}

	if cfg.TimeoutSeconds <= 0 {
		return &ValidationError{
			Field:   "store.timeout_seconds",
			Message: "timeout must be positive",
		}
	}

	return nil
}
