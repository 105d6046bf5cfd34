// Package responses implements the append-only response collection.
// Records are never mutated or deleted; ids are assigned monotonically
// and never reused.
package responses

import "time"

// Response represents a generated model response tied to a prompt
// snapshot. PromptIndex is the prompt's id at generation time and is
// not adjusted when the prompt collection is renumbered afterward.
type Response struct {
	ID          int       `json:"id"`
	PromptIndex int       `json:"prompt_index"`
	Prompt      string    `json:"prompt"`
	Response    string    `json:"response"`
	CreatedAt   time.Time `json:"created_at"`
}
