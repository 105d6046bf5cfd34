package openapi

import "maps"

func errorResponse(description string) *Response {
	return &Response{
		Description: description,
		Content: map[string]*MediaType{
			"application/json": {Schema: SchemaRef("Error")},
		},
	}
}

// NewComponents creates Components with the shared error schema and responses.
func NewComponents() *Components {
	return &Components{
		Schemas: map[string]*Schema{
			"Error": {
				Type: "object",
				Properties: map[string]*Schema{
					"status":  {Type: "string", Description: "Always \"error\"", Example: "error"},
					"message": {Type: "string", Description: "Error message"},
				},
				Required: []string{"status", "message"},
			},
		},
		Responses: map[string]*Response{
			"BadRequest":  errorResponse("Invalid request"),
			"NotFound":    errorResponse("Prompt index out of range"),
			"ServerError": errorResponse("Internal error or generator not initialized"),
		},
	}
}

// AddSchemas merges the given schemas into the component schemas.
func (c *Components) AddSchemas(schemas map[string]*Schema) {
	maps.Copy(c.Schemas, schemas)
}

// AddResponses merges the given responses into the component responses.
func (c *Components) AddResponses(responses map[string]*Response) {
	maps.Copy(c.Responses, responses)
}
