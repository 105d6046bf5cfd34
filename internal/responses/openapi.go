package responses

import "github.com/SalmanMuhammad/scribe/pkg/openapi"

// OpenAPISchemas returns the component schemas for the response domain.
func OpenAPISchemas() map[string]*openapi.Schema {
	return map[string]*openapi.Schema{
		"Response": {
			Type: "object",
			Properties: map[string]*openapi.Schema{
				"id":           {Type: "integer", Description: "Monotonic id, never reused"},
				"prompt_index": {Type: "integer", Description: "Prompt id at generation time"},
				"prompt":       {Type: "string", Description: "Prompt content snapshot"},
				"response":     {Type: "string", Description: "Model output"},
				"created_at":   {Type: "string", Format: "date-time"},
			},
			Required: []string{"id", "prompt_index", "prompt", "response", "created_at"},
		},
		"ResponseList": {
			Type: "object",
			Properties: map[string]*openapi.Schema{
				"status":    {Type: "string", Example: "success"},
				"responses": {Type: "array", Items: openapi.SchemaRef("Response")},
				"count":     {Type: "integer"},
			},
		},
	}
}

// OpenAPIPaths returns the path items for the response endpoints.
func OpenAPIPaths() map[string]*openapi.PathItem {
	return map[string]*openapi.PathItem{
		"/responses": {
			Get: &openapi.Operation{
				Summary: "List all recorded responses",
				Tags:    []string{"responses"},
				Responses: map[int]*openapi.Response{
					200: openapi.ResponseJSON("Full response collection with count", "ResponseList"),
				},
			},
		},
	}
}
