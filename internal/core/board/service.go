// Copyright (c) 2026 Mumu Design Studio. All rights reserved.
// Author: dev@mumudesign.kr

package board

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/mumudesign/studio-api/internal/platform/apperr"
	"github.com/mumudesign/studio-api/internal/platform/validate"
	"github.com/mumudesign/studio-api/pkg/mask"
	"github.com/mumudesign/studio-api/pkg/textnorm"
)

// # Service Layer

// Service orchestrates the business logic of the inquiry board: posting,
// the privacy gate on private threads, reply threading and the status
// lifecycle between 검토중 and 답변완료.
type Service struct {
	repo   Repository
	logger *slog.Logger
}

// NewService constructs a new [Service] with its required repository.
func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

// CreateInput carries a visitor's inquiry submission.
type CreateInput struct {
	Title     string `json:"title"`
	Author    string `json:"author"`
	Password  string `json:"password"`
	Content   string `json:"content"`
	IsPrivate bool   `json:"isPrivate"`
}

// # Posting

/*
CreatePost registers a new inquiry thread.

Description: Validates the submission, masks the author's display name so the
raw name is never stored, stamps the calendar date, and persists with initial
status 검토중. The id is assigned by the repository sequence and is never
reused, even after the post is deleted.

Parameters:
  - context: context.Context
  - input: CreateInput

Returns:
  - *Post: The stored thread with its assigned id
  - error: Validation or persistence errors
*/
func (service *Service) CreatePost(context context.Context, input CreateInput) (*Post, error) {
	validator := &validate.Validator{}
	validator.Required(FieldTitle, input.Title).MaxLen(FieldTitle, input.Title, 200)
	validator.Required(FieldAuthor, input.Author)
	validator.Required(FieldContent, input.Content)
	if input.IsPrivate {
		validator.Required(FieldPassword, input.Password)
	}
	if err := validator.Err(); err != nil {
		return nil, err
	}

	// Display-name masking; names under two characters cannot be masked.
	masked, err := mask.Name(textnorm.NFC(input.Author))
	if err != nil {
		return nil, validate.RequiredError(FieldAuthor, "author name must be at least 2 characters")
	}

	post := &Post{
		Title:     textnorm.NFC(input.Title),
		Author:    masked,
		Date:      time.Now().Format(DateLayout),
		Status:    StatusUnderReview,
		IsPrivate: input.IsPrivate,
		Password:  input.Password,
		Content:   input.Content,
		Replies:   []Reply{},
	}

	if err := service.repo.Insert(context, post); err != nil {
		return nil, err
	}

	service.logger.Info("board_post_created",
		slog.Int64("post_id", post.ID),
		slog.Bool("is_private", post.IsPrivate))
	return post, nil
}

// # Reading

/*
ListPosts returns the board, newest first, narrowed by a title search.

Description: The search is a case-sensitive substring match against titles
only, normalised to NFC so composed and decomposed Korean input compare
equal. Private posts are reduced to their summary unless the caller holds an
admin session.

Parameters:
  - context: context.Context
  - query: string (Empty means no narrowing)
  - isAdmin: bool

Returns:
  - []Post: Matching posts, never nil
  - error: Repository failures
*/
func (service *Service) ListPosts(context context.Context, query string, isAdmin bool) ([]Post, error) {
	posts, err := service.repo.List(context)
	if err != nil {
		return nil, err
	}

	filtered := make([]Post, 0, len(posts))
	for _, post := range posts {
		if query != "" && !textnorm.Contains(post.Title, query) {
			continue
		}
		if isAdmin {
			filtered = append(filtered, post)
			continue
		}
		filtered = append(filtered, post.Summary())
	}

	return filtered, nil
}

/*
ViewPost opens a thread, enforcing the privacy gate.

Description: Public posts are always granted. Private posts require the
exact, case-sensitive viewing password; an admin session bypasses the gate.
The stored password itself is never part of the response.

Parameters:
  - context: context.Context
  - id: int64
  - password: string (Supplied viewing password, may be empty)
  - isAdmin: bool

Returns:
  - *Post: The full thread
  - error: NotFound, or Forbidden on password mismatch
*/
func (service *Service) ViewPost(context context.Context, id int64, password string, isAdmin bool) (*Post, error) {
	post, err := service.repo.FindByID(context, id)
	if err != nil {
		return nil, err
	}

	if post.IsPrivate && !isAdmin && post.Password != password {
		return nil, apperr.Forbidden("password does not match")
	}

	return post, nil
}

// # Reply Threading

/*
AddReply appends a turn to a thread and moves its status.

Description: Replies are append-only and keep chronological order. An admin
reply marks the thread 답변완료; a visitor reply puts it back to 검토중
whatever its prior state, so the status always reflects whose turn it is.
Visitor replies to a private thread pass the same gate as viewing it.

Parameters:
  - context: context.Context
  - id: int64
  - author: ReplyAuthor (admin or user)
  - content: string
  - password: string (Viewing password for visitor replies to private posts)

Returns:
  - *Post: The updated thread
  - error: NotFound, Forbidden or validation errors
*/
func (service *Service) AddReply(context context.Context, id int64, author ReplyAuthor, content, password string) (*Post, error) {
	validator := &validate.Validator{}
	validator.Required(FieldContent, content)
	if err := validator.Err(); err != nil {
		return nil, err
	}

	post, err := service.repo.FindByID(context, id)
	if err != nil {
		return nil, err
	}

	if author == ReplyAuthorUser && post.IsPrivate && post.Password != password {
		return nil, apperr.Forbidden("password does not match")
	}

	now := time.Now()
	post.Replies = append(post.Replies, Reply{
		ID:      fmt.Sprintf("reply-%d", now.UnixMilli()),
		Author:  author,
		Content: content,
		Date:    now.Format(DateLayout),
	})

	// Status tracks whose turn it is, not whether an answer ever existed.
	if author == ReplyAuthorAdmin {
		post.Status = StatusAnswered
	} else {
		post.Status = StatusUnderReview
	}

	if err := service.repo.Update(context, *post); err != nil {
		return nil, err
	}

	service.logger.Info("board_reply_added",
		slog.Int64("post_id", post.ID),
		slog.String("author", string(author)),
		slog.String("status", string(post.Status)))
	return post, nil
}

// # Moderation

/*
DeletePost hard-removes a thread.

Description: Unlike gallery deletion there is no tombstone; the row is gone
and only the retired id remembers it existed.

Parameters:
  - context: context.Context
  - id: int64

Returns:
  - error: NotFound when the id does not exist
*/
func (service *Service) DeletePost(context context.Context, id int64) error {
	if err := service.repo.Delete(context, id); err != nil {
		return err
	}

	service.logger.Info("board_post_deleted", slog.Int64("post_id", id))
	return nil
}
