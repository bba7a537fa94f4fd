// Package inquiry forwards consultation requests to the hosted form relay.
package inquiry

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	requestutil "github.com/mumudesign/studio-api/internal/platform/request"
	"github.com/mumudesign/studio-api/internal/platform/respond"
)

// Handler implements the HTTP layer for inquiry submission.
type Handler struct {
	service *Service
}

// NewHandler constructs a new inquiry [Handler] with its service dependency.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns a [chi.Router] with the inquiry endpoints.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()
	router.Post("/", handler.submit)
	return router
}

/*
POST /api/v1/inquiries.

Description: Validates and forwards a consultation request to the relay.

Request:
  - name: string
  - phone: string
  - message: string
  - consent: bool (must be true)

Response:
  - 202: Accepted and relayed
  - 422: ValidationError: Missing fields or consent
  - 502: UpstreamError: Relay refused; safe to retry
*/
func (handler *Handler) submit(writer http.ResponseWriter, request *http.Request) {
	var inquiry Inquiry
	if err := requestutil.DecodeJSON(request, &inquiry); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.Submit(request.Context(), inquiry); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Accepted(writer, map[string]string{"status": "relayed"})
}
