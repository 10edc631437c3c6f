package di

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/savaki/gcp-bootstrap/internal/config"
	"github.com/segmentio/ksuid"
)

// RunID identifies a single bootstrap run across log lines.
type RunID string

// ProvideRunID generates a unique identifier for this run.
func ProvideRunID() RunID {
	return RunID(ksuid.New().String())
}

// ProvideContext returns a context carrying the run logger.
// Every log line written through the context includes the run id.
func ProvideContext(logger zerolog.Logger, runID RunID) context.Context {
	logger = logger.With().Str("run_id", string(runID)).Logger()
	return logger.WithContext(context.Background())
}

// ProvideConfig validates the bootstrap input and resolves the immutable
// configuration. Resolution fails when any required variable is missing,
// so nothing downstream of the container ever sees a partial configuration.
func ProvideConfig(ctx context.Context, in config.Input) (*config.Config, error) {
	logger := zerolog.Ctx(ctx)

	cfg, err := config.Load(in)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	logger.Info().
		Str("project_id", cfg.ProjectID).
		Str("region", cfg.Region).
		Int("api_count", len(cfg.APIs)).
		Str("github_username", cfg.Github.Username).
		Bool("has_github_pat", cfg.Github.PAT != "").
		Msg("Configuration loaded successfully")

	return cfg, nil
}
