// Package faq serves the curated frequently-asked-questions list.
package faq

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/mumudesign/studio-api/internal/platform/respond"
)

// Handler implements the HTTP layer for the FAQ list.
type Handler struct{}

// NewHandler constructs a new faq [Handler].
func NewHandler() *Handler {
	return &Handler{}
}

// Routes returns a [chi.Router] with the FAQ endpoints.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()
	router.Get("/", handler.listFAQs)
	return router
}

/*
GET /api/v1/faqs.

Response:
  - 200: []FAQ: The curated list in display order
*/
func (handler *Handler) listFAQs(writer http.ResponseWriter, request *http.Request) {
	respond.OK(writer, All())
}
