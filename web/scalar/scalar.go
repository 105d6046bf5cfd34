// Package scalar serves the Scalar API reference UI for the generated
// OpenAPI document.
package scalar

import (
	"embed"
	"html/template"
	"net/http"

	"github.com/SalmanMuhammad/scribe/pkg/module"
)

//go:embed index.html
var staticFS embed.FS

// NewModule creates a module that serves the API reference UI at
// basePath, reading the OpenAPI document from specURL.
func NewModule(basePath, specURL string) *module.Module {
	return module.New(basePath, buildRouter(specURL))
}

func buildRouter(specURL string) http.Handler {
	mux := http.NewServeMux()

	tmpl := template.Must(template.ParseFS(staticFS, "index.html"))
	mux.HandleFunc("GET /{$}", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		tmpl.Execute(w, map[string]string{"SpecURL": specURL})
	})

	return mux
}
