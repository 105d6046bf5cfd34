package api_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/SalmanMuhammad/scribe/internal/api"
	"github.com/SalmanMuhammad/scribe/internal/config"
	"github.com/SalmanMuhammad/scribe/internal/infrastructure"
	"github.com/SalmanMuhammad/scribe/pkg/module"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	t.Chdir(t.TempDir())

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	return cfg
}

func newTestRouter(t *testing.T) *module.Router {
	t.Helper()

	cfg := testConfig(t)
	infra, err := infrastructure.New(cfg)
	if err != nil {
		t.Fatalf("build infrastructure: %v", err)
	}

	m, err := api.NewModule(cfg, infra)
	if err != nil {
		t.Fatalf("build api module: %v", err)
	}

	router := module.NewRouter()
	router.Mount(m)
	return router
}

func TestModuleRoutes(t *testing.T) {
	router := newTestRouter(t)

	tests := []struct {
		method string
		target string
		want   int
	}{
		{"GET", "/api/prompts", http.StatusOK},
		{"GET", "/api/responses", http.StatusOK},
		{"GET", "/api/prompts/0", http.StatusNotFound},
		{"POST", "/api/prompts/0/response", http.StatusNotFound},
		{"GET", "/api/missing", http.StatusNotFound},
	}

	for _, tt := range tests {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(tt.method, tt.target, nil))
		if w.Code != tt.want {
			t.Errorf("%s %s: status = %d, want %d", tt.method, tt.target, w.Code, tt.want)
		}
	}
}

func TestModuleRequestID(t *testing.T) {
	router := newTestRouter(t)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("GET", "/api/prompts", nil))

	if w.Header().Get("X-Request-Id") == "" {
		t.Error("response missing request id header")
	}
}

func TestBuildSpec(t *testing.T) {
	data, err := api.BuildSpec(testConfig(t))
	if err != nil {
		t.Fatalf("BuildSpec failed: %v", err)
	}

	var spec struct {
		OpenAPI string `json:"openapi"`
		Servers []struct {
			URL string `json:"url"`
		} `json:"servers"`
		Paths map[string]any `json:"paths"`
	}
	if err := json.Unmarshal(data, &spec); err != nil {
		t.Fatalf("spec is not valid JSON: %v", err)
	}

	if spec.OpenAPI != "3.1.0" {
		t.Errorf("openapi = %q", spec.OpenAPI)
	}
	if len(spec.Servers) != 1 || spec.Servers[0].URL != "/api" {
		t.Errorf("servers = %v", spec.Servers)
	}

	for _, path := range []string{
		"/initialize",
		"/prompts",
		"/prompts/{index}",
		"/prompts/{index}/response",
		"/responses",
	} {
		if _, ok := spec.Paths[path]; !ok {
			t.Errorf("path %s missing from document", path)
		}
	}
}
