package api

import (
	"github.com/SalmanMuhammad/scribe/internal/generation"
	"github.com/SalmanMuhammad/scribe/internal/prompts"
	"github.com/SalmanMuhammad/scribe/internal/responses"
)

// Domain holds all domain systems that comprise the API. The prompt
// store and response log are constructed once at startup and shared by
// every request.
type Domain struct {
	Prompts    prompts.System
	Responses  responses.System
	Generation *generation.Handler
}

// NewDomain creates all domain systems from the API runtime.
func NewDomain(runtime *Runtime) *Domain {
	promptSys := prompts.New(runtime.Logger)
	responseSys := responses.New(runtime.Logger)

	generationHandler := generation.NewHandler(
		runtime.Generation,
		promptSys,
		responseSys,
		runtime.Logger,
	)

	return &Domain{
		Prompts:    promptSys,
		Responses:  responseSys,
		Generation: generationHandler,
	}
}
