package api

import (
	"net/http"

	"github.com/SalmanMuhammad/scribe/pkg/routes"
)

func registerRoutes(mux *http.ServeMux, domain *Domain) {
	routes.Register(
		mux,
		domain.Prompts.Handler().Routes(),
		domain.Responses.Handler().Routes(),
		domain.Generation.Routes(),
	)
}
