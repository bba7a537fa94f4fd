/*
Package gallery provides the portfolio catalogue of the studio site.

The catalogue is a seed of built-in reference projects overlaid with the
studio's own edits, additions and deletions. Visitors browse the merged
result; authorised staff mutate the overlay, never the seed.

# Routing Strategy

  - Public (v1): Catalogue browsing, open to all visitors.
  - Restricted (v1): Mutative endpoints mounted behind the admin session gate.
*/
package gallery

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	requestutil "github.com/mumudesign/studio-api/internal/platform/request"
	"github.com/mumudesign/studio-api/internal/platform/respond"
)

// # Handler Implementation

// Handler implements the HTTP layer for gallery browsing and management.
type Handler struct {
	service *Service
}

// NewHandler constructs a new gallery [Handler] with its service dependency.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns a [chi.Router] with the public catalogue endpoints.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Get("/", handler.listProjects)
	router.Get("/{id}", handler.getProject)

	return router
}

// AdminRoutes returns a [chi.Router] with the catalogue management
// endpoints. The caller mounts it behind the admin session gate.
func (handler *Handler) AdminRoutes() chi.Router {
	router := chi.NewRouter()

	router.Post("/", handler.createProject)
	router.Put("/{id}", handler.updateProject)
	router.Delete("/{id}", handler.deleteProject)

	return router
}

// # Catalogue Endpoints

/*
GET /api/v1/gallery.

Description: Returns the merged catalogue in display order.

Request:
  - category: string (주거, 상업, 사무, 숙박, 가구 or 전체)

Response:
  - 200: []Project
*/
func (handler *Handler) listProjects(writer http.ResponseWriter, request *http.Request) {
	category := request.URL.Query().Get("category")

	projects, err := handler.service.ListProjects(request.Context(), category)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, projects)
}

/*
GET /api/v1/gallery/{id}.

Response:
  - 200: Project
  - 404: ErrNotFound: Unknown or deleted project
*/
func (handler *Handler) getProject(writer http.ResponseWriter, request *http.Request) {
	id := requestutil.Param(request, "id")

	project, err := handler.service.GetProject(request.Context(), id)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, project)
}

// # Management Endpoints

/*
POST /api/v1/admin/gallery.

Description: Adds a project to the overlay. An omitted id is generated from
the submission timestamp.

Response:
  - 201: Project: The stored entity with its assigned id
  - 409: Conflict: Id already in use or previously deleted
  - 422: ValidationError
*/
func (handler *Handler) createProject(writer http.ResponseWriter, request *http.Request) {
	var project Project
	if err := requestutil.DecodeJSON(request, &project); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.CreateProject(request.Context(), &project); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, project)
}

/*
PUT /api/v1/admin/gallery/{id}.

Description: Replaces a visible project's content in full. The path id wins
over any id in the body.

Response:
  - 200: Project
  - 404: ErrNotFound
  - 422: ValidationError
*/
func (handler *Handler) updateProject(writer http.ResponseWriter, request *http.Request) {
	id := requestutil.Param(request, "id")

	var project Project
	if err := requestutil.DecodeJSON(request, &project); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.UpdateProject(request.Context(), id, &project); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, project)
}

/*
DELETE /api/v1/admin/gallery/{id}.

Description: Permanently removes a project. Deleted seed projects stay gone
across redeploys.

Response:
  - 204: Removed
  - 404: ErrNotFound
*/
func (handler *Handler) deleteProject(writer http.ResponseWriter, request *http.Request) {
	id := requestutil.Param(request, "id")

	if err := handler.service.DeleteProject(request.Context(), id); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.NoContent(writer)
}
