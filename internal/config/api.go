package config

import (
	"fmt"
	"os"

	"github.com/SalmanMuhammad/scribe/pkg/middleware"
	"github.com/SalmanMuhammad/scribe/pkg/openapi"
)

const EnvAPIBasePath = "SCRIBE_API_BASE_PATH"

var corsEnv = &middleware.CORSEnv{
	Enabled:          "SCRIBE_CORS_ENABLED",
	Origins:          "SCRIBE_CORS_ORIGINS",
	AllowedMethods:   "SCRIBE_CORS_ALLOWED_METHODS",
	AllowedHeaders:   "SCRIBE_CORS_ALLOWED_HEADERS",
	AllowCredentials: "SCRIBE_CORS_ALLOW_CREDENTIALS",
	MaxAge:           "SCRIBE_CORS_MAX_AGE",
}

var openapiEnv = &openapi.ConfigEnv{
	Title:       "SCRIBE_OPENAPI_TITLE",
	Description: "SCRIBE_OPENAPI_DESCRIPTION",
}

// APIConfig holds API routing, CORS, and documentation settings.
type APIConfig struct {
	BasePath string                `toml:"base_path"`
	CORS     middleware.CORSConfig `toml:"cors"`
	OpenAPI  openapi.Config        `toml:"openapi"`
}

// Finalize applies defaults, environment variable overrides, and
// validation for the API config and its nested CORS and OpenAPI configs.
func (c *APIConfig) Finalize() error {
	c.loadDefaults()
	c.loadEnv()

	if err := c.CORS.Finalize(corsEnv); err != nil {
		return fmt.Errorf("cors: %w", err)
	}
	if err := c.OpenAPI.Finalize(openapiEnv); err != nil {
		return fmt.Errorf("openapi: %w", err)
	}
	return nil
}

// Merge overwrites non-zero fields from overlay across nested configs.
func (c *APIConfig) Merge(overlay *APIConfig) {
	if overlay.BasePath != "" {
		c.BasePath = overlay.BasePath
	}
	c.CORS.Merge(&overlay.CORS)
	c.OpenAPI.Merge(&overlay.OpenAPI)
}

func (c *APIConfig) loadDefaults() {
	if c.BasePath == "" {
		c.BasePath = "/api"
	}
}

func (c *APIConfig) loadEnv() {
	if v := os.Getenv(EnvAPIBasePath); v != "" {
		c.BasePath = v
	}
}
