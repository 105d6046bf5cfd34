// Package prompts implements the prompt collection domain for Scribe.
// It provides the record type, an in-memory ordered store with dense
// positional ids, and HTTP handlers for prompt CRUD operations.
package prompts

import "time"

// Prompt represents a stored prompt. ID always equals the record's
// current position in the collection: it is positional, not durable,
// and deleting a record shifts every subsequent id down by one.
type Prompt struct {
	ID        int        `json:"id"`
	Content   string     `json:"content"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at,omitempty"`
}

// CreateCommand carries the request body for creating a prompt.
type CreateCommand struct {
	Prompt string `json:"prompt"`
}

// UpdateCommand carries the request body for updating a prompt.
type UpdateCommand struct {
	NewPrompt string `json:"new_prompt"`
}

// UpdateResult reports the outcome of an update: the unchanged index
// plus the content before and after.
type UpdateResult struct {
	Index      int
	OldContent string
	NewContent string
}
