// Copyright (c) 2026 Mumu Design Studio. All rights reserved.
// Author: dev@mumudesign.kr

package board_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mumudesign/studio-api/internal/core/board"
	"github.com/mumudesign/studio-api/internal/platform/apperr"
)

// memoryRepo is an in-memory [board.Repository] that mimics the identity
// column: a high-water mark hands out ids and never reuses them.
type memoryRepo struct {
	posts  []board.Post
	nextID int64
}

func (repo *memoryRepo) List(_ context.Context) ([]board.Post, error) {
	out := make([]board.Post, 0, len(repo.posts))
	for i := len(repo.posts) - 1; i >= 0; i-- {
		out = append(out, repo.posts[i])
	}
	return out, nil
}

func (repo *memoryRepo) FindByID(_ context.Context, id int64) (*board.Post, error) {
	for i := range repo.posts {
		if repo.posts[i].ID == id {
			post := repo.posts[i]
			return &post, nil
		}
	}
	return nil, apperr.NotFound("post")
}

func (repo *memoryRepo) Insert(_ context.Context, post *board.Post) error {
	repo.nextID++
	post.ID = repo.nextID
	repo.posts = append(repo.posts, *post)
	return nil
}

func (repo *memoryRepo) Update(_ context.Context, post board.Post) error {
	for i := range repo.posts {
		if repo.posts[i].ID == post.ID {
			repo.posts[i] = post
			return nil
		}
	}
	return apperr.NotFound("post")
}

func (repo *memoryRepo) Delete(_ context.Context, id int64) error {
	for i := range repo.posts {
		if repo.posts[i].ID == id {
			repo.posts = append(repo.posts[:i], repo.posts[i+1:]...)
			return nil
		}
	}
	return apperr.NotFound("post")
}

func newTestService() (*board.Service, *memoryRepo) {
	repo := &memoryRepo{}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return board.NewService(repo, logger), repo
}

func submission() board.CreateInput {
	return board.CreateInput{
		Title:     "견적 문의합니다",
		Author:    "김수현",
		Password:  "abc",
		Content:   "30평대 아파트 전체 리모델링 견적이 궁금합니다.",
		IsPrivate: true,
	}
}

/*
TestCreatePost_MasksAuthorAndStampsDefaults verifies masking, the initial
status and the date stamp.
*/
func TestCreatePost_MasksAuthorAndStampsDefaults(t *testing.T) {
	service, _ := newTestService()

	post, err := service.CreatePost(context.Background(), submission())
	require.NoError(t, err)

	assert.Equal(t, int64(1), post.ID)
	assert.Equal(t, "김*현", post.Author)
	assert.Equal(t, board.StatusUnderReview, post.Status)
	assert.Regexp(t, `^\d{4}-\d{2}-\d{2}$`, post.Date)
	assert.Empty(t, post.Replies)
}

/*
TestCreatePost_Validation covers required fields, the private-needs-password
rule and the unmaskable one-character author name.
*/
func TestCreatePost_Validation(t *testing.T) {
	service, _ := newTestService()
	ctx := context.Background()

	testCases := []struct {
		name   string
		mutate func(*board.CreateInput)
	}{
		{"missing title", func(in *board.CreateInput) { in.Title = "" }},
		{"missing author", func(in *board.CreateInput) { in.Author = "" }},
		{"missing content", func(in *board.CreateInput) { in.Content = "" }},
		{"private without password", func(in *board.CreateInput) { in.Password = "" }},
		{"one character author", func(in *board.CreateInput) { in.Author = "김" }},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			input := submission()
			testCase.mutate(&input)

			_, err := service.CreatePost(ctx, input)
			require.Error(t, err)
			assert.Equal(t, "VALIDATION_ERROR", apperr.As(err).Code)
		})
	}
}

/*
TestCreatePost_IDsNeverReused verifies that deleting the newest thread does
not hand its id back out.
*/
func TestCreatePost_IDsNeverReused(t *testing.T) {
	service, _ := newTestService()
	ctx := context.Background()

	first, err := service.CreatePost(ctx, submission())
	require.NoError(t, err)
	second, err := service.CreatePost(ctx, submission())
	require.NoError(t, err)
	assert.Equal(t, first.ID+1, second.ID)

	require.NoError(t, service.DeletePost(ctx, second.ID))

	third, err := service.CreatePost(ctx, submission())
	require.NoError(t, err)
	assert.Equal(t, second.ID+1, third.ID)
}

/*
TestViewPost_PrivacyGate verifies exact case-sensitive password matching and
the admin bypass.
*/
func TestViewPost_PrivacyGate(t *testing.T) {
	service, _ := newTestService()
	ctx := context.Background()

	post, err := service.CreatePost(ctx, submission())
	require.NoError(t, err)

	// Exact match grants access.
	viewed, err := service.ViewPost(ctx, post.ID, "abc", false)
	require.NoError(t, err)
	assert.Equal(t, post.Content, viewed.Content)

	// Case and emptiness both reject.
	for _, wrong := range []string{"Abc", ""} {
		_, err := service.ViewPost(ctx, post.ID, wrong, false)
		require.Error(t, err)
		assert.Equal(t, "ACCESS_DENIED", apperr.As(err).Code)
	}

	// Admin sessions skip the gate entirely.
	_, err = service.ViewPost(ctx, post.ID, "", true)
	assert.NoError(t, err)
}

/*
TestListPosts_SummaryAndSearch verifies newest-first ordering, summary
stripping of private threads for visitors, and the title substring search.
*/
func TestListPosts_SummaryAndSearch(t *testing.T) {
	service, _ := newTestService()
	ctx := context.Background()

	_, err := service.CreatePost(ctx, submission())
	require.NoError(t, err)

	open := submission()
	open.Title = "시공 후기 남깁니다"
	open.IsPrivate = false
	open.Password = ""
	_, err = service.CreatePost(ctx, open)
	require.NoError(t, err)

	// Newest first; the private thread is stripped for visitors.
	posts, err := service.ListPosts(ctx, "", false)
	require.NoError(t, err)
	require.Len(t, posts, 2)
	assert.Equal(t, "시공 후기 남깁니다", posts[0].Title)
	assert.NotEmpty(t, posts[0].Content)
	assert.Empty(t, posts[1].Content)

	// Admins see private content in the listing.
	posts, err = service.ListPosts(ctx, "", true)
	require.NoError(t, err)
	assert.NotEmpty(t, posts[1].Content)

	// Title substring search.
	posts, err = service.ListPosts(ctx, "견적", false)
	require.NoError(t, err)
	require.Len(t, posts, 1)
	assert.Equal(t, "견적 문의합니다", posts[0].Title)

	// No match yields an empty list, not an error.
	posts, err = service.ListPosts(ctx, "없는검색어", false)
	require.NoError(t, err)
	assert.Empty(t, posts)
}

/*
TestAddReply_StatusFollowsLastAuthor verifies the non-monotonic status
lifecycle: admin reply answers, visitor reply reopens.
*/
func TestAddReply_StatusFollowsLastAuthor(t *testing.T) {
	service, _ := newTestService()
	ctx := context.Background()

	post, err := service.CreatePost(ctx, submission())
	require.NoError(t, err)

	answered, err := service.AddReply(ctx, post.ID, board.ReplyAuthorAdmin, "안녕하세요, 견적 안내드립니다.", "")
	require.NoError(t, err)
	assert.Equal(t, board.StatusAnswered, answered.Status)
	require.Len(t, answered.Replies, 1)
	assert.Equal(t, board.ReplyAuthorAdmin, answered.Replies[0].Author)

	reopened, err := service.AddReply(ctx, post.ID, board.ReplyAuthorUser, "추가 문의드립니다.", "abc")
	require.NoError(t, err)
	assert.Equal(t, board.StatusUnderReview, reopened.Status)
	require.Len(t, reopened.Replies, 2)
	assert.Equal(t, board.ReplyAuthorUser, reopened.Replies[1].Author)
}

/*
TestAddReply_PrivateRequiresPassword verifies visitor replies pass the same
gate as viewing, while admin replies do not.
*/
func TestAddReply_PrivateRequiresPassword(t *testing.T) {
	service, _ := newTestService()
	ctx := context.Background()

	post, err := service.CreatePost(ctx, submission())
	require.NoError(t, err)

	_, err = service.AddReply(ctx, post.ID, board.ReplyAuthorUser, "추가 문의", "wrong")
	require.Error(t, err)
	assert.Equal(t, "ACCESS_DENIED", apperr.As(err).Code)

	_, err = service.AddReply(ctx, post.ID, board.ReplyAuthorAdmin, "답변드립니다.", "")
	assert.NoError(t, err)
}

/*
TestDeletePost_HardRemoval verifies deletion is terminal and unknown ids
report NotFound.
*/
func TestDeletePost_HardRemoval(t *testing.T) {
	service, _ := newTestService()
	ctx := context.Background()

	post, err := service.CreatePost(ctx, submission())
	require.NoError(t, err)

	require.NoError(t, service.DeletePost(ctx, post.ID))

	_, err = service.ViewPost(ctx, post.ID, "abc", false)
	require.Error(t, err)
	assert.Equal(t, "NOT_FOUND", apperr.As(err).Code)

	err = service.DeletePost(ctx, post.ID)
	assert.Equal(t, "NOT_FOUND", apperr.As(err).Code)
}
