// Package generation implements the collaborator boundary to the hosted
// generative-language API: a two-state provider lifecycle, the outbound
// client, and the HTTP endpoints that exercise them.
package generation

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
)

// InitializeResult reports a successful provider initialization,
// including the reply from the connectivity probe.
type InitializeResult struct {
	Model        string
	TestResponse string
}

// Provider holds the generator lifecycle. It starts Uninitialized and
// transitions to Ready once Initialize succeeds; until then every
// Generate call fails with ErrUninitialized.
type Provider struct {
	mu      sync.RWMutex
	cfg     *Config
	gen     Generator
	model   string
	logger  *slog.Logger
	factory func(cfg *Config, model string) Generator
}

// NewProvider creates an uninitialized Provider.
func NewProvider(cfg *Config, logger *slog.Logger) *Provider {
	return &Provider{
		cfg:     cfg,
		logger:  logger.With("system", "generation"),
		factory: newClient,
	}
}

// Ready reports whether Initialize has succeeded.
func (p *Provider) Ready() bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.gen != nil
}

// Model returns the currently configured model name, or the default
// when uninitialized.
func (p *Provider) Model() string {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.model == "" {
		return p.cfg.Model
	}
	return p.model
}

// Initialize builds a generator for the given model (falling back to
// the configured default), verifies connectivity with a probe
// generation, and transitions the provider to Ready. Re-initialization
// with a different model is allowed and replaces the generator.
func (p *Provider) Initialize(ctx context.Context, model string) (*InitializeResult, error) {
	if !p.cfg.Configured() {
		return nil, ErrMissingKey
	}

	if model == "" {
		model = p.cfg.Model
	}

	gen := p.factory(p.cfg, model)

	probe, err := gen.Generate(ctx, "Hello!")
	if err != nil {
		return nil, fmt.Errorf("initialize %s: %w", model, err)
	}

	p.mu.Lock()
	p.gen = gen
	p.model = model
	p.mu.Unlock()

	p.logger.Info("generator initialized", "model", model)
	return &InitializeResult{
		Model:        model,
		TestResponse: probe,
	}, nil
}

// Generate forwards to the active generator, or fails with
// ErrUninitialized when Initialize has not succeeded yet.
func (p *Provider) Generate(ctx context.Context, text string) (string, error) {
	p.mu.RLock()
	gen := p.gen
	p.mu.RUnlock()

	if gen == nil {
		return "", ErrUninitialized
	}

	return gen.Generate(ctx, text)
}
