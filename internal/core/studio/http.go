// Package studio serves static studio information such as the engagement
// process description.
package studio

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/mumudesign/studio-api/internal/platform/respond"
)

// Handler implements the HTTP layer for studio information.
type Handler struct{}

// NewHandler constructs a new studio [Handler].
func NewHandler() *Handler {
	return &Handler{}
}

// Routes returns a [chi.Router] with the studio information endpoints.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()
	router.Get("/", handler.getProcess)
	return router
}

/*
GET /api/v1/process.

Response:
  - 200: ProcessInfo: Workflow steps, duration guides and client preparations
*/
func (handler *Handler) getProcess(writer http.ResponseWriter, request *http.Request) {
	respond.OK(writer, Process())
}
