package routes_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/SalmanMuhammad/scribe/pkg/routes"
)

func record(name string, calls *[]string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		*calls = append(*calls, name)
		w.WriteHeader(http.StatusOK)
	}
}

func TestRegister(t *testing.T) {
	var calls []string
	mux := http.NewServeMux()

	routes.Register(mux, routes.Group{
		Prefix: "/prompts",
		Routes: []routes.Route{
			{Method: "GET", Pattern: "", Handler: record("list", &calls)},
			{Method: "POST", Pattern: "", Handler: record("create", &calls)},
			{Method: "GET", Pattern: "/{index}", Handler: record("get", &calls)},
		},
	})

	tests := []struct {
		method string
		target string
		want   string
	}{
		{"GET", "/prompts", "list"},
		{"POST", "/prompts", "create"},
		{"GET", "/prompts/2", "get"},
	}

	for _, tt := range tests {
		calls = nil
		w := httptest.NewRecorder()
		mux.ServeHTTP(w, httptest.NewRequest(tt.method, tt.target, nil))

		if w.Code != http.StatusOK {
			t.Errorf("%s %s: status = %d", tt.method, tt.target, w.Code)
			continue
		}
		if len(calls) != 1 || calls[0] != tt.want {
			t.Errorf("%s %s dispatched to %v, want %s", tt.method, tt.target, calls, tt.want)
		}
	}
}

func TestRegisterMethodMismatch(t *testing.T) {
	var calls []string
	mux := http.NewServeMux()
	routes.Register(mux, routes.Group{
		Prefix: "/prompts",
		Routes: []routes.Route{
			{Method: "GET", Pattern: "", Handler: record("list", &calls)},
		},
	})

	w := httptest.NewRecorder()
	mux.ServeHTTP(w, httptest.NewRequest("DELETE", "/prompts", nil))
	if w.Code != http.StatusMethodNotAllowed {
		t.Errorf("status = %d, want 405", w.Code)
	}
}

func TestRegisterNestedGroups(t *testing.T) {
	var calls []string
	mux := http.NewServeMux()
	routes.Register(mux, routes.Group{
		Prefix: "/prompts",
		Children: []routes.Group{
			{
				Prefix: "/{index}",
				Routes: []routes.Route{
					{Method: "POST", Pattern: "/response", Handler: record("generate", &calls)},
				},
			},
		},
	})

	w := httptest.NewRecorder()
	mux.ServeHTTP(w, httptest.NewRequest("POST", "/prompts/0/response", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if len(calls) != 1 || calls[0] != "generate" {
		t.Errorf("dispatched to %v, want generate", calls)
	}
}
