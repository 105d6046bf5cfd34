package prompts

import "github.com/SalmanMuhammad/scribe/pkg/openapi"

// OpenAPISchemas returns the component schemas for the prompt domain.
func OpenAPISchemas() map[string]*openapi.Schema {
	return map[string]*openapi.Schema{
		"Prompt": {
			Type: "object",
			Properties: map[string]*openapi.Schema{
				"id":         {Type: "integer", Description: "Current position in the collection (renumbered on delete)"},
				"content":    {Type: "string", Description: "Trimmed prompt text"},
				"created_at": {Type: "string", Format: "date-time"},
				"updated_at": {Type: "string", Format: "date-time", Description: "Present only after an update"},
			},
			Required: []string{"id", "content", "created_at"},
		},
		"CreatePrompt": {
			Type: "object",
			Properties: map[string]*openapi.Schema{
				"prompt": {Type: "string", Description: "The prompt text"},
			},
			Required: []string{"prompt"},
		},
		"UpdatePrompt": {
			Type: "object",
			Properties: map[string]*openapi.Schema{
				"new_prompt": {Type: "string", Description: "The new prompt text"},
			},
			Required: []string{"new_prompt"},
		},
		"PromptCreated": {
			Type: "object",
			Properties: map[string]*openapi.Schema{
				"status":       {Type: "string", Example: "success"},
				"message":      {Type: "string"},
				"prompt_index": {Type: "integer"},
				"prompt":       openapi.SchemaRef("Prompt"),
			},
		},
		"PromptList": {
			Type: "object",
			Properties: map[string]*openapi.Schema{
				"status":  {Type: "string", Example: "success"},
				"prompts": {Type: "array", Items: openapi.SchemaRef("Prompt")},
				"count":   {Type: "integer"},
			},
		},
		"PromptDetail": {
			Type: "object",
			Properties: map[string]*openapi.Schema{
				"status": {Type: "string", Example: "success"},
				"prompt": openapi.SchemaRef("Prompt"),
			},
		},
		"PromptUpdated": {
			Type: "object",
			Properties: map[string]*openapi.Schema{
				"status":       {Type: "string", Example: "success"},
				"message":      {Type: "string"},
				"prompt_index": {Type: "integer"},
				"old_prompt":   {Type: "string"},
				"new_prompt":   {Type: "string"},
			},
		},
		"PromptDeleted": {
			Type: "object",
			Properties: map[string]*openapi.Schema{
				"status":         {Type: "string", Example: "success"},
				"message":        {Type: "string"},
				"deleted_prompt": openapi.SchemaRef("Prompt"),
			},
		},
	}
}

// OpenAPIPaths returns the path items for the prompt endpoints.
func OpenAPIPaths() map[string]*openapi.PathItem {
	index := openapi.IndexParam("index", "Zero-based prompt index")

	return map[string]*openapi.PathItem{
		"/prompts": {
			Get: &openapi.Operation{
				Summary: "List all stored prompts",
				Tags:    []string{"prompts"},
				Responses: map[int]*openapi.Response{
					200: openapi.ResponseJSON("Full prompt collection with count", "PromptList"),
				},
			},
			Post: &openapi.Operation{
				Summary:     "Create a new prompt",
				Tags:        []string{"prompts"},
				RequestBody: openapi.RequestBodyJSON("CreatePrompt", true),
				Responses: map[int]*openapi.Response{
					201: openapi.ResponseJSON("Created prompt with its index", "PromptCreated"),
					400: openapi.ResponseRef("BadRequest"),
				},
			},
		},
		"/prompts/{index}": {
			Get: &openapi.Operation{
				Summary:    "Get a prompt by index",
				Tags:       []string{"prompts"},
				Parameters: []*openapi.Parameter{index},
				Responses: map[int]*openapi.Response{
					200: openapi.ResponseJSON("Prompt at the given index", "PromptDetail"),
					404: openapi.ResponseRef("NotFound"),
				},
			},
			Put: &openapi.Operation{
				Summary:     "Update a prompt in place",
				Tags:        []string{"prompts"},
				Parameters:  []*openapi.Parameter{index},
				RequestBody: openapi.RequestBodyJSON("UpdatePrompt", true),
				Responses: map[int]*openapi.Response{
					200: openapi.ResponseJSON("Old and new content", "PromptUpdated"),
					400: openapi.ResponseRef("BadRequest"),
					404: openapi.ResponseRef("NotFound"),
				},
			},
			Delete: &openapi.Operation{
				Summary:     "Delete a prompt and renumber the rest",
				Description: "Removes the record at the index and decrements the id of every record that followed it.",
				Tags:        []string{"prompts"},
				Parameters:  []*openapi.Parameter{index},
				Responses: map[int]*openapi.Response{
					200: openapi.ResponseJSON("Deleted record with its original id", "PromptDeleted"),
					404: openapi.ResponseRef("NotFound"),
				},
			},
		},
	}
}
