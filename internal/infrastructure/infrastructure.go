// Package infrastructure provides core service initialization for
// application startup. It assembles the common dependencies (lifecycle,
// logging, generation provider) that domain systems require.
package infrastructure

import (
	"log/slog"
	"os"

	"github.com/SalmanMuhammad/scribe/internal/config"
	"github.com/SalmanMuhammad/scribe/internal/generation"
	"github.com/SalmanMuhammad/scribe/pkg/lifecycle"
)

// Infrastructure holds the core systems required by all domain modules.
type Infrastructure struct {
	Lifecycle  *lifecycle.Coordinator
	Logger     *slog.Logger
	Generation *generation.Provider
}

// New creates an Infrastructure from the application configuration.
// A missing generation credential is a warning, not a failure: the
// service stands up, and initialization reports the problem instead.
func New(cfg *config.Config) (*Infrastructure, error) {
	lc := lifecycle.New()
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	if !cfg.Generation.Configured() {
		logger.Warn(
			"GEMINI_API_KEY is not set; the API is up but generation calls will fail",
			"hint", "set the key in .env or the environment",
		)
	}

	return &Infrastructure{
		Lifecycle:  lc,
		Logger:     logger,
		Generation: generation.NewProvider(&cfg.Generation, logger),
	}, nil
}
