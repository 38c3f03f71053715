package app

import (
	"context"

	"github.com/oshokin/localapi-logger/internal/config"
	"github.com/oshokin/localapi-logger/internal/logger"
)

// ExecuteInitCommand writes a configuration file with default settings.
func ExecuteInitCommand(ctx context.Context, filename string, overwrite bool) {
	cfg := config.NewDefaultConfig()

	if err := config.SaveConfig(cfg, filename, overwrite); err != nil {
		logger.Fatalf(ctx, "Failed to write configuration: %v", err)
	}

	logger.Infof(ctx, "Configuration written to %s", cfg.Filename)
}
