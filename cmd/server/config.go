package main

import (
	"fmt"
	"log/slog"

	"github.com/phrazzld/bank-api/internal/config"
)

// loadAppConfig loads the application configuration from dotenv files, an
// optional config.yaml and the environment.
func loadAppConfig(envFiles []string) (*config.Config, error) {
	cfg, err := config.Load(envFiles...)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	slog.Debug("Database configuration", "url_present", cfg.Database.URL != "")
	return cfg, nil
}
