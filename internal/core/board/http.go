/*
Package board provides the 1:1 inquiry board of the studio site.

Visitors open threads, optionally locked behind a viewing password, and
exchange replies with the studio. The status badge on each thread flips
between 검토중 and 답변완료 depending on who replied last.

# Routing Strategy

  - Public (v1): Listing, posting, viewing and visitor replies.
  - Restricted (v1): Admin replies and hard deletion behind the session gate.
*/
package board

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/mumudesign/studio-api/internal/platform/apperr"
	"github.com/mumudesign/studio-api/internal/platform/ctxutil"
	requestutil "github.com/mumudesign/studio-api/internal/platform/request"
	"github.com/mumudesign/studio-api/internal/platform/respond"
	"github.com/mumudesign/studio-api/pkg/pagination"
)

// # Handler Implementation

// Handler implements the HTTP layer for the inquiry board.
type Handler struct {
	service *Service
}

// NewHandler constructs a new board [Handler] with its service dependency.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns a [chi.Router] with the public board endpoints.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Get("/", handler.listPosts)
	router.Post("/", handler.createPost)
	router.Post("/{id}/view", handler.viewPost)
	router.Post("/{id}/replies", handler.addUserReply)

	return router
}

// AdminRoutes returns a [chi.Router] with the moderation endpoints. The
// caller mounts it behind the admin session gate.
func (handler *Handler) AdminRoutes() chi.Router {
	router := chi.NewRouter()

	router.Post("/{id}/replies", handler.addAdminReply)
	router.Delete("/{id}", handler.deletePost)

	return router
}

// # Board Endpoints

/*
GET /api/v1/board.

Description: Lists threads newest first. Private threads are reduced to
their summary unless the caller holds an admin session.

Request:
  - q: string (Title substring search)
  - page: int
  - limit: int

Response:
  - 200: []Post: Paginated thread list
*/
func (handler *Handler) listPosts(writer http.ResponseWriter, request *http.Request) {
	query := request.URL.Query().Get("q")
	paginationParams := pagination.FromRequest(request)

	posts, err := handler.service.ListPosts(request.Context(), query, ctxutil.IsAdmin(request.Context()))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	start, end := paginationParams.Slice(len(posts))
	respond.Paginated(writer, posts[start:end],
		pagination.NewMeta(paginationParams.Page, paginationParams.Limit, len(posts)))
}

/*
POST /api/v1/board.

Description: Opens a new thread. The author name is masked before storage
and the assigned id is returned.

Response:
  - 201: Post
  - 422: ValidationError: Missing fields or unmaskable author name
*/
func (handler *Handler) createPost(writer http.ResponseWriter, request *http.Request) {
	var input CreateInput
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	post, err := handler.service.CreatePost(request.Context(), input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, post)
}

/*
POST /api/v1/board/{id}/view.

Description: Opens a thread in full. Private threads require the viewing
password unless the caller holds an admin session.

Request:
  - password: string

Response:
  - 200: Post: Full thread including replies
  - 403: AccessDenied: Password mismatch
  - 404: ErrNotFound
*/
func (handler *Handler) viewPost(writer http.ResponseWriter, request *http.Request) {
	id, err := postID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var body struct {
		Password string `json:"password"`
	}
	if err := requestutil.DecodeJSON(request, &body); err != nil {
		respond.Error(writer, request, err)
		return
	}

	post, err := handler.service.ViewPost(request.Context(), id, body.Password, ctxutil.IsAdmin(request.Context()))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, post)
}

/*
POST /api/v1/board/{id}/replies.

Description: Appends a visitor reply, putting the thread back to 검토중.
Private threads require the viewing password.

Request:
  - content: string
  - password: string

Response:
  - 200: Post: Updated thread
  - 403: AccessDenied
  - 404: ErrNotFound
*/
func (handler *Handler) addUserReply(writer http.ResponseWriter, request *http.Request) {
	handler.addReply(writer, request, ReplyAuthorUser)
}

// # Moderation Endpoints

/*
POST /api/v1/admin/board/{id}/replies.

Description: Appends a studio reply and marks the thread 답변완료.

Response:
  - 200: Post: Updated thread
  - 404: ErrNotFound
*/
func (handler *Handler) addAdminReply(writer http.ResponseWriter, request *http.Request) {
	handler.addReply(writer, request, ReplyAuthorAdmin)
}

/*
DELETE /api/v1/admin/board/{id}.

Description: Hard-removes a thread. The id is never reassigned.

Response:
  - 204: Removed
  - 404: ErrNotFound
*/
func (handler *Handler) deletePost(writer http.ResponseWriter, request *http.Request) {
	id, err := postID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.DeletePost(request.Context(), id); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.NoContent(writer)
}

func (handler *Handler) addReply(writer http.ResponseWriter, request *http.Request, author ReplyAuthor) {
	id, err := postID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var body struct {
		Content  string `json:"content"`
		Password string `json:"password"`
	}
	if err := requestutil.DecodeJSON(request, &body); err != nil {
		respond.Error(writer, request, err)
		return
	}

	post, err := handler.service.AddReply(request.Context(), id, author, body.Content, body.Password)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, post)
}

// postID parses the numeric thread id from the route.
func postID(request *http.Request) (int64, error) {
	raw := requestutil.Param(request, "id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, apperr.Unprocessable("invalid post id")
	}
	return id, nil
}
