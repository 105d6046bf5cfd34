package responses

import (
	"log/slog"
	"net/http"

	"github.com/SalmanMuhammad/scribe/pkg/handlers"
	"github.com/SalmanMuhammad/scribe/pkg/routes"
)

// Handler provides HTTP endpoints for the response collection.
type Handler struct {
	sys    System
	logger *slog.Logger
}

// NewHandler creates a Handler with the given system and logger.
func NewHandler(sys System, logger *slog.Logger) *Handler {
	return &Handler{
		sys:    sys,
		logger: logger.With("handler", "responses"),
	}
}

// ListPayload is the response body for the full response collection.
type ListPayload struct {
	Status    string     `json:"status"`
	Responses []Response `json:"responses"`
	Count     int        `json:"count"`
}

// Routes returns the route group definition for response endpoints.
func (h *Handler) Routes() routes.Group {
	return routes.Group{
		Prefix: "/responses",
		Routes: []routes.Route{
			{Method: "GET", Pattern: "", Handler: h.List},
		},
	}
}

// List returns all recorded responses and their count.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	responses, count := h.sys.List()

	handlers.RespondJSON(w, http.StatusOK, ListPayload{
		Status:    "success",
		Responses: responses,
		Count:     count,
	})
}
