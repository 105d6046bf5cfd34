package generation

import "github.com/SalmanMuhammad/scribe/pkg/openapi"

// OpenAPISchemas returns the component schemas for the generation domain.
func OpenAPISchemas() map[string]*openapi.Schema {
	return map[string]*openapi.Schema{
		"Initialize": {
			Type: "object",
			Properties: map[string]*openapi.Schema{
				"model": {Type: "string", Description: "Model to use", Default: DefaultModel},
			},
		},
		"Initialized": {
			Type: "object",
			Properties: map[string]*openapi.Schema{
				"status":        {Type: "string", Example: "success"},
				"message":       {Type: "string"},
				"test_response": {Type: "string", Description: "Reply from the connectivity probe"},
			},
		},
		"Generated": {
			Type: "object",
			Properties: map[string]*openapi.Schema{
				"status":       {Type: "string", Example: "success"},
				"message":      {Type: "string"},
				"prompt_index": {Type: "integer"},
				"prompt":       {Type: "string"},
				"response":     {Type: "string"},
				"response_id":  {Type: "integer"},
			},
		},
	}
}

// OpenAPIPaths returns the path items for the generation endpoints.
func OpenAPIPaths() map[string]*openapi.PathItem {
	return map[string]*openapi.PathItem{
		"/initialize": {
			Post: &openapi.Operation{
				Summary:     "Initialize the generator",
				Description: "Builds the generation client, runs a connectivity probe, and transitions the provider to ready.",
				Tags:        []string{"generation"},
				RequestBody: openapi.RequestBodyJSON("Initialize", false),
				Responses: map[int]*openapi.Response{
					200: openapi.ResponseJSON("Generator ready", "Initialized"),
					400: openapi.ResponseRef("BadRequest"),
					500: openapi.ResponseRef("ServerError"),
				},
			},
		},
		"/prompts/{index}/response": {
			Post: &openapi.Operation{
				Summary:    "Generate a response for a stored prompt",
				Tags:       []string{"generation"},
				Parameters: []*openapi.Parameter{openapi.IndexParam("index", "Zero-based prompt index")},
				Responses: map[int]*openapi.Response{
					200: openapi.ResponseJSON("Generated response with its id", "Generated"),
					400: openapi.ResponseRef("BadRequest"),
					404: openapi.ResponseRef("NotFound"),
					500: openapi.ResponseRef("ServerError"),
				},
			},
		},
	}
}
