package responses_test

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/SalmanMuhammad/scribe/internal/responses"
)

func newTestLog() responses.System {
	return responses.New(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestAppend(t *testing.T) {
	t.Run("ids are strictly increasing", func(t *testing.T) {
		sys := newTestLog()
		for i := range 4 {
			r := sys.Append(0, "prompt", "text")
			if r.ID != i {
				t.Errorf("id = %d, want %d", r.ID, i)
			}
		}
	})

	t.Run("records the prompt snapshot", func(t *testing.T) {
		sys := newTestLog()
		r := sys.Append(2, "What is Go?", "A programming language.")

		if r.PromptIndex != 2 {
			t.Errorf("prompt_index = %d, want 2", r.PromptIndex)
		}
		if r.Prompt != "What is Go?" {
			t.Errorf("prompt = %q", r.Prompt)
		}
		if r.Response != "A programming language." {
			t.Errorf("response = %q", r.Response)
		}
		if r.CreatedAt.IsZero() {
			t.Error("created_at not set")
		}
	})
}

func TestList(t *testing.T) {
	sys := newTestLog()
	sys.Append(0, "a", "ra")
	sys.Append(1, "b", "rb")

	list, count := sys.List()
	if count != 2 || len(list) != 2 {
		t.Fatalf("List() = %d items, count %d, want 2, 2", len(list), count)
	}
	for i, r := range list {
		if r.ID != i {
			t.Errorf("list[%d].ID = %d, want %d", i, r.ID, i)
		}
	}
}

func TestHandlerList(t *testing.T) {
	sys := newTestLog()
	sys.Append(0, "a", "ra")

	mux := http.NewServeMux()
	group := sys.Handler().Routes()
	for _, route := range group.Routes {
		mux.HandleFunc(route.Method+" "+group.Prefix+route.Pattern, route.Handler)
	}

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest("GET", "/responses", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var payload responses.ListPayload
	if err := json.Unmarshal(rec.Body.Bytes(), &payload); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if payload.Status != "success" || payload.Count != 1 {
		t.Errorf("payload = %+v", payload)
	}
}
