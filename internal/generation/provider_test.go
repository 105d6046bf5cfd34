package generation

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"testing"
)

type mockGenerator struct {
	generateFn func(ctx context.Context, text string) (string, error)
}

func (m *mockGenerator) Generate(ctx context.Context, text string) (string, error) {
	return m.generateFn(ctx, text)
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testProvider(cfg *Config, gen Generator) *Provider {
	p := NewProvider(cfg, testLogger())
	p.factory = func(*Config, string) Generator { return gen }
	return p
}

func echoGenerator() *mockGenerator {
	return &mockGenerator{
		generateFn: func(_ context.Context, text string) (string, error) {
			return "echo: " + text, nil
		},
	}
}

func configured() *Config {
	cfg := &Config{APIKey: "test-key"}
	cfg.Finalize(nil)
	return cfg
}

func TestProviderUninitialized(t *testing.T) {
	p := testProvider(configured(), echoGenerator())

	if p.Ready() {
		t.Error("provider should start uninitialized")
	}
	if _, err := p.Generate(context.Background(), "hi"); !errors.Is(err, ErrUninitialized) {
		t.Errorf("Generate error = %v, want ErrUninitialized", err)
	}
}

func TestProviderInitialize(t *testing.T) {
	t.Run("missing credential", func(t *testing.T) {
		cfg := &Config{}
		cfg.Finalize(nil)
		p := testProvider(cfg, echoGenerator())

		if _, err := p.Initialize(context.Background(), ""); !errors.Is(err, ErrMissingKey) {
			t.Errorf("error = %v, want ErrMissingKey", err)
		}
		if p.Ready() {
			t.Error("provider should stay uninitialized")
		}
	})

	t.Run("runs connectivity probe", func(t *testing.T) {
		p := testProvider(configured(), echoGenerator())

		result, err := p.Initialize(context.Background(), "")
		if err != nil {
			t.Fatalf("Initialize failed: %v", err)
		}
		if result.Model != DefaultModel {
			t.Errorf("model = %q, want default %q", result.Model, DefaultModel)
		}
		if result.TestResponse == "" {
			t.Error("probe reply missing")
		}
		if !p.Ready() {
			t.Error("provider should be ready")
		}
	})

	t.Run("probe failure keeps provider uninitialized", func(t *testing.T) {
		gen := &mockGenerator{
			generateFn: func(context.Context, string) (string, error) {
				return "", fmt.Errorf("%w: upstream says no", ErrGeneration)
			},
		}
		p := testProvider(configured(), gen)

		if _, err := p.Initialize(context.Background(), ""); !errors.Is(err, ErrGeneration) {
			t.Errorf("error = %v, want ErrGeneration", err)
		}
		if p.Ready() {
			t.Error("provider should stay uninitialized after failed probe")
		}
	})

	t.Run("reinitialize replaces the model", func(t *testing.T) {
		p := testProvider(configured(), echoGenerator())

		if _, err := p.Initialize(context.Background(), "gemini-1.5-pro"); err != nil {
			t.Fatalf("Initialize failed: %v", err)
		}
		if p.Model() != "gemini-1.5-pro" {
			t.Errorf("model = %q, want gemini-1.5-pro", p.Model())
		}

		if _, err := p.Initialize(context.Background(), "gemini-2.0-flash"); err != nil {
			t.Fatalf("reinitialize failed: %v", err)
		}
		if p.Model() != "gemini-2.0-flash" {
			t.Errorf("model = %q, want gemini-2.0-flash", p.Model())
		}
	})
}

func TestProviderGenerate(t *testing.T) {
	p := testProvider(configured(), echoGenerator())
	if _, err := p.Initialize(context.Background(), ""); err != nil {
		t.Fatalf("Initialize failed: %v", err)
	}

	text, err := p.Generate(context.Background(), "hello")
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	if text != "echo: hello" {
		t.Errorf("text = %q", text)
	}
}

func TestMapHTTPStatus(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"generation failure", ErrGeneration, 400},
		{"wrapped generation failure", fmt.Errorf("call: %w", ErrGeneration), 400},
		{"uninitialized", ErrUninitialized, 500},
		{"missing key", ErrMissingKey, 500},
		{"unknown error", errors.New("boom"), 500},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MapHTTPStatus(tt.err); got != tt.want {
				t.Errorf("MapHTTPStatus(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}
