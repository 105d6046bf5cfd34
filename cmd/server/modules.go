package main

import (
	"encoding/json"
	"net/http"

	"github.com/SalmanMuhammad/scribe/internal/api"
	"github.com/SalmanMuhammad/scribe/internal/config"
	"github.com/SalmanMuhammad/scribe/internal/infrastructure"
	"github.com/SalmanMuhammad/scribe/pkg/middleware"
	"github.com/SalmanMuhammad/scribe/pkg/module"
	"github.com/SalmanMuhammad/scribe/pkg/openapi"
	"github.com/SalmanMuhammad/scribe/web/scalar"
)

const (
	docsPath = "/docs"
	specPath = "/openapi.json"
)

type Modules struct {
	API  *module.Module
	Docs *module.Module
}

func NewModules(infra *infrastructure.Infrastructure, cfg *config.Config) (*Modules, error) {
	apiModule, err := api.NewModule(cfg, infra)
	if err != nil {
		return nil, err
	}

	docsModule := scalar.NewModule(docsPath, specPath)
	docsModule.Use(middleware.Logger(infra.Logger))

	return &Modules{
		API:  apiModule,
		Docs: docsModule,
	}, nil
}

func (m *Modules) Mount(router *module.Router) {
	router.Mount(m.API)
	router.Mount(m.Docs)
}

func buildRouter(infra *infrastructure.Infrastructure, cfg *config.Config) (*module.Router, error) {
	router := module.NewRouter()

	specBytes, err := api.BuildSpec(cfg)
	if err != nil {
		return nil, err
	}
	router.HandleNative("GET "+specPath, openapi.ServeSpec(specBytes))

	router.HandleNative("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
	})

	router.HandleNative("GET /readyz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if !infra.Lifecycle.Ready() {
			w.WriteHeader(http.StatusServiceUnavailable)
			json.NewEncoder(w).Encode(map[string]string{"status": "not ready"})
			return
		}
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(map[string]string{"status": "ready"})
	})

	return router, nil
}
