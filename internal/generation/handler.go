package generation

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/SalmanMuhammad/scribe/internal/prompts"
	"github.com/SalmanMuhammad/scribe/internal/responses"
	"github.com/SalmanMuhammad/scribe/pkg/handlers"
	"github.com/SalmanMuhammad/scribe/pkg/routes"
)

// Handler provides the initialize and response-generation endpoints.
// Generation snapshots the prompt content, invokes the provider once,
// and records the outcome in the response log.
type Handler struct {
	provider *Provider
	prompts  prompts.System
	log      responses.System
	logger   *slog.Logger
}

// NewHandler creates a Handler wiring the provider to the prompt store
// and response log.
func NewHandler(
	provider *Provider,
	promptSys prompts.System,
	responseSys responses.System,
	logger *slog.Logger,
) *Handler {
	return &Handler{
		provider: provider,
		prompts:  promptSys,
		log:      responseSys,
		logger:   logger.With("handler", "generation"),
	}
}

// InitializeCommand carries the optional request body for initialization.
type InitializeCommand struct {
	Model string `json:"model"`
}

// InitializePayload is the response body for a successful initialization.
type InitializePayload struct {
	Status       string `json:"status"`
	Message      string `json:"message"`
	TestResponse string `json:"test_response"`
}

// GeneratePayload is the response body for a generated response.
type GeneratePayload struct {
	Status      string `json:"status"`
	Message     string `json:"message"`
	PromptIndex int    `json:"prompt_index"`
	Prompt      string `json:"prompt"`
	Response    string `json:"response"`
	ResponseID  int    `json:"response_id"`
}

// Routes returns the route group definition for generation endpoints.
// The generate route lives under /prompts alongside the CRUD routes.
func (h *Handler) Routes() routes.Group {
	return routes.Group{
		Routes: []routes.Route{
			{Method: "POST", Pattern: "/initialize", Handler: h.Initialize},
			{Method: "POST", Pattern: "/prompts/{index}/response", Handler: h.Generate},
		},
	}
}

// Initialize configures the generator, optionally with a model named in
// the request body, and verifies connectivity with a probe generation.
func (h *Handler) Initialize(w http.ResponseWriter, r *http.Request) {
	var cmd InitializeCommand
	if err := json.NewDecoder(r.Body).Decode(&cmd); err != nil && !errors.Is(err, io.EOF) {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
		return
	}

	result, err := h.provider.Initialize(r.Context(), cmd.Model)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, InitializePayload{
		Status:       "success",
		Message:      fmt.Sprintf("Generator initialized successfully with model: %s", result.Model),
		TestResponse: result.TestResponse,
	})
}

// Generate produces a model response for the prompt at the index path
// parameter and appends it to the response log.
func (h *Handler) Generate(w http.ResponseWriter, r *http.Request) {
	index, err := prompts.ParseIndex(r)
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusNotFound, err)
		return
	}

	p, err := h.prompts.Get(index)
	if err != nil {
		handlers.RespondError(w, h.logger, prompts.MapHTTPStatus(err), err)
		return
	}

	text, err := h.provider.Generate(r.Context(), p.Content)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	recorded := h.log.Append(p.ID, p.Content, text)

	handlers.RespondJSON(w, http.StatusOK, GeneratePayload{
		Status:      "success",
		Message:     "Response generated successfully",
		PromptIndex: recorded.PromptIndex,
		Prompt:      recorded.Prompt,
		Response:    recorded.Response,
		ResponseID:  recorded.ID,
	})
}
