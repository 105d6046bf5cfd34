package generation

import "os"

// DefaultBaseURL is the OpenAI-compatible endpoint of the hosted
// generative-language API.
const DefaultBaseURL = "https://generativelanguage.googleapis.com/v1beta/openai/"

// DefaultModel is used when neither config nor the initialize request
// names a model.
const DefaultModel = "gemini-1.5-flash"

// Config holds generation collaborator settings. The API key is never
// read from config files, only from the environment.
type Config struct {
	BaseURL string `toml:"base_url"`
	Model   string `toml:"model"`
	APIKey  string `toml:"-"`
}

// Env maps config fields to environment variable names for override injection.
type Env struct {
	APIKey  string
	BaseURL string
	Model   string
}

// Finalize applies defaults and environment variable overrides.
// A missing API key is not an error here: the service stands up and
// warns, and initialization fails instead.
func (c *Config) Finalize(env *Env) error {
	c.loadDefaults()
	if env != nil {
		c.loadEnv(env)
	}
	return nil
}

// Merge overwrites non-zero fields from overlay.
func (c *Config) Merge(overlay *Config) {
	if overlay.BaseURL != "" {
		c.BaseURL = overlay.BaseURL
	}
	if overlay.Model != "" {
		c.Model = overlay.Model
	}
}

// Configured reports whether a credential is available.
func (c *Config) Configured() bool {
	return c.APIKey != ""
}

func (c *Config) loadDefaults() {
	if c.BaseURL == "" {
		c.BaseURL = DefaultBaseURL
	}
	if c.Model == "" {
		c.Model = DefaultModel
	}
}

func (c *Config) loadEnv(env *Env) {
	if env.APIKey != "" {
		if v := os.Getenv(env.APIKey); v != "" {
			c.APIKey = v
		}
	}
	if env.BaseURL != "" {
		if v := os.Getenv(env.BaseURL); v != "" {
			c.BaseURL = v
		}
	}
	if env.Model != "" {
		if v := os.Getenv(env.Model); v != "" {
			c.Model = v
		}
	}
}
