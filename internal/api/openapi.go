package api

import (
	"maps"

	"github.com/SalmanMuhammad/scribe/internal/config"
	"github.com/SalmanMuhammad/scribe/internal/generation"
	"github.com/SalmanMuhammad/scribe/internal/prompts"
	"github.com/SalmanMuhammad/scribe/internal/responses"
	"github.com/SalmanMuhammad/scribe/pkg/openapi"
)

// BuildSpec composes the OpenAPI document from every domain's paths and
// schemas and returns it serialized. Paths are relative to the API base
// path, which is published as the server URL.
func BuildSpec(cfg *config.Config) ([]byte, error) {
	spec := openapi.NewSpec(cfg.API.OpenAPI.Title, cfg.Version)
	spec.SetDescription(cfg.API.OpenAPI.Description)
	spec.AddServer(cfg.API.BasePath)

	spec.Components.AddSchemas(prompts.OpenAPISchemas())
	spec.Components.AddSchemas(responses.OpenAPISchemas())
	spec.Components.AddSchemas(generation.OpenAPISchemas())

	maps.Copy(spec.Paths, prompts.OpenAPIPaths())
	maps.Copy(spec.Paths, responses.OpenAPIPaths())
	maps.Copy(spec.Paths, generation.OpenAPIPaths())

	return openapi.MarshalJSON(spec)
}
