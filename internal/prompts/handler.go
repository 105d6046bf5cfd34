package prompts

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/SalmanMuhammad/scribe/pkg/handlers"
	"github.com/SalmanMuhammad/scribe/pkg/routes"
)

// Handler provides HTTP endpoints for prompt operations.
type Handler struct {
	sys    System
	logger *slog.Logger
}

// NewHandler creates a Handler with the given system and logger.
func NewHandler(sys System, logger *slog.Logger) *Handler {
	return &Handler{
		sys:    sys,
		logger: logger.With("handler", "prompts"),
	}
}

// CreatePayload is the response body for a created prompt.
type CreatePayload struct {
	Status      string  `json:"status"`
	Message     string  `json:"message"`
	PromptIndex int     `json:"prompt_index"`
	Prompt      *Prompt `json:"prompt"`
}

// ListPayload is the response body for the full prompt collection.
type ListPayload struct {
	Status  string   `json:"status"`
	Prompts []Prompt `json:"prompts"`
	Count   int      `json:"count"`
}

// GetPayload is the response body for a single prompt.
type GetPayload struct {
	Status string  `json:"status"`
	Prompt *Prompt `json:"prompt"`
}

// UpdatePayload is the response body for an updated prompt.
type UpdatePayload struct {
	Status      string `json:"status"`
	Message     string `json:"message"`
	PromptIndex int    `json:"prompt_index"`
	OldPrompt   string `json:"old_prompt"`
	NewPrompt   string `json:"new_prompt"`
}

// DeletePayload is the response body for a deleted prompt. The deleted
// record carries its pre-renumbering id.
type DeletePayload struct {
	Status        string  `json:"status"`
	Message       string  `json:"message"`
	DeletedPrompt *Prompt `json:"deleted_prompt"`
}

// Routes returns the route group definition for prompt endpoints.
func (h *Handler) Routes() routes.Group {
	return routes.Group{
		Prefix: "/prompts",
		Routes: []routes.Route{
			{Method: "GET", Pattern: "", Handler: h.List},
			{Method: "POST", Pattern: "", Handler: h.Create},
			{Method: "GET", Pattern: "/{index}", Handler: h.Get},
			{Method: "PUT", Pattern: "/{index}", Handler: h.Update},
			{Method: "DELETE", Pattern: "/{index}", Handler: h.Delete},
		},
	}
}

// Create processes a JSON body to append a new prompt.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var cmd CreateCommand
	if err := json.NewDecoder(r.Body).Decode(&cmd); err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
		return
	}

	p, err := h.sys.Create(cmd.Prompt)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusCreated, CreatePayload{
		Status:      "success",
		Message:     "Prompt created successfully",
		PromptIndex: p.ID,
		Prompt:      p,
	})
}

// List returns the full ordered collection and its count.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	prompts, count := h.sys.List()

	handlers.RespondJSON(w, http.StatusOK, ListPayload{
		Status:  "success",
		Prompts: prompts,
		Count:   count,
	})
}

// Get returns the prompt at the index path parameter.
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	index, err := ParseIndex(r)
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusNotFound, err)
		return
	}

	p, err := h.sys.Get(index)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, GetPayload{
		Status: "success",
		Prompt: p,
	})
}

// Update processes a JSON body to replace the content at the index path
// parameter.
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	index, err := ParseIndex(r)
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusNotFound, err)
		return
	}

	var cmd UpdateCommand
	if err := json.NewDecoder(r.Body).Decode(&cmd); err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
		return
	}

	result, err := h.sys.Update(index, cmd.NewPrompt)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, UpdatePayload{
		Status:      "success",
		Message:     "Prompt updated successfully",
		PromptIndex: result.Index,
		OldPrompt:   result.OldContent,
		NewPrompt:   result.NewContent,
	})
}

// Delete removes the prompt at the index path parameter, renumbering
// the records that follow it.
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	index, err := ParseIndex(r)
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusNotFound, err)
		return
	}

	removed, err := h.sys.Delete(index)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, DeletePayload{
		Status:        "success",
		Message:       "Prompt deleted successfully",
		DeletedPrompt: removed,
	})
}

// ParseIndex extracts the integer index path parameter. A non-numeric
// value maps to ErrNotFound so every malformed index reads as a missing
// record.
func ParseIndex(r *http.Request) (int, error) {
	index, err := strconv.Atoi(r.PathValue("index"))
	if err != nil {
		return 0, ErrNotFound
	}
	return index, nil
}
