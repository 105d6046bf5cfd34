package responses

import (
	"log/slog"
	"sync"
	"time"
)

// System provides response collection operations.
type System interface {
	Handler() *Handler
	Append(promptIndex int, prompt, text string) *Response
	List() ([]Response, int)
}

// log is the in-memory append-only response collection. Appending is
// the only mutation; ids equal the record's position and stay valid for
// the lifetime of the process.
type log struct {
	mu        sync.RWMutex
	responses []Response
	logger    *slog.Logger
}

// New creates an empty in-memory response log implementing System.
func New(logger *slog.Logger) System {
	return &log{
		responses: []Response{},
		logger:    logger.With("system", "responses"),
	}
}

func (l *log) Handler() *Handler {
	return NewHandler(l, l.logger)
}

// Append records a generated response and returns the new record.
func (l *log) Append(promptIndex int, prompt, text string) *Response {
	l.mu.Lock()
	defer l.mu.Unlock()

	r := Response{
		ID:          len(l.responses),
		PromptIndex: promptIndex,
		Prompt:      prompt,
		Response:    text,
		CreatedAt:   time.Now(),
	}
	l.responses = append(l.responses, r)

	l.logger.Info("response recorded", "response_id", r.ID, "prompt_index", promptIndex)
	return &r
}

// List returns a copy of the full response collection and its count.
func (l *log) List() ([]Response, int) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	out := make([]Response, len(l.responses))
	copy(out, l.responses)
	return out, len(out)
}
