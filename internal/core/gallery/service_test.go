// Copyright (c) 2026 Mumu Design Studio. All rights reserved.
// Author: dev@mumudesign.kr

package gallery_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mumudesign/studio-api/internal/core/gallery"
	"github.com/mumudesign/studio-api/internal/platform/apperr"
)

// memoryStore is an in-memory overlay implementing both repository
// contracts, preserving insertion order like the Postgres store does.
type memoryStore struct {
	overrides  []gallery.Project
	tombstones []string
}

func (store *memoryStore) ListOverrides(_ context.Context) ([]gallery.Project, error) {
	return append([]gallery.Project(nil), store.overrides...), nil
}

func (store *memoryStore) UpsertOverride(_ context.Context, project gallery.Project) error {
	for i := range store.overrides {
		if store.overrides[i].ID == project.ID {
			store.overrides[i] = project
			return nil
		}
	}
	store.overrides = append(store.overrides, project)
	return nil
}

func (store *memoryStore) RemoveOverride(_ context.Context, id string) error {
	kept := store.overrides[:0]
	for _, o := range store.overrides {
		if o.ID != id {
			kept = append(kept, o)
		}
	}
	store.overrides = kept
	return nil
}

func (store *memoryStore) ListTombstones(_ context.Context) ([]string, error) {
	return append([]string(nil), store.tombstones...), nil
}

func (store *memoryStore) MarkDeleted(_ context.Context, id string) error {
	for _, existing := range store.tombstones {
		if existing == id {
			return nil
		}
	}
	store.tombstones = append(store.tombstones, id)
	return nil
}

func newTestService() (*gallery.Service, *memoryStore) {
	store := &memoryStore{}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return gallery.NewService(store, store, logger), store
}

func validSubmission() *gallery.Project {
	return &gallery.Project{
		Title:     "한남동 카페 리모델링",
		Category:  gallery.CategoryCommercial,
		Thumbnail: "https://example.com/thumb.png",
		Spaces: []gallery.Space{
			{Name: "홀", Images: []string{"https://example.com/hall.png"}},
		},
	}
}

/*
TestListProjects_CategoryFilter verifies narrowing by category and that the
pseudo-category 전체 returns everything.
*/
func TestListProjects_CategoryFilter(t *testing.T) {
	service, _ := newTestService()
	ctx := context.Background()

	require.NoError(t, service.CreateProject(ctx, validSubmission()))

	all, err := service.ListProjects(ctx, "전체")
	require.NoError(t, err)
	assert.Len(t, all, 2) // seed project plus the addition

	commercial, err := service.ListProjects(ctx, "상업")
	require.NoError(t, err)
	require.Len(t, commercial, 1)
	assert.Equal(t, "한남동 카페 리모델링", commercial[0].Title)

	lodging, err := service.ListProjects(ctx, "숙박")
	require.NoError(t, err)
	assert.Empty(t, lodging)
}

/*
TestCreateProject_AssignsTimestampID verifies that an omitted id is generated
and the stored entity becomes visible in the catalogue.
*/
func TestCreateProject_AssignsTimestampID(t *testing.T) {
	service, store := newTestService()
	ctx := context.Background()

	submission := validSubmission()
	require.NoError(t, service.CreateProject(ctx, submission))

	assert.Regexp(t, `^project-\d+$`, submission.ID)
	require.Len(t, store.overrides, 1)

	fetched, err := service.GetProject(ctx, submission.ID)
	require.NoError(t, err)
	assert.Equal(t, submission.Title, fetched.Title)
	assert.Equal(t, submission.Thumbnail, fetched.HeroImage) // hero falls back to thumbnail
}

/*
TestCreateProject_RejectsInvalidSubmission covers the validation rules: a
missing title, an unknown category and a space without images all fail.
*/
func TestCreateProject_RejectsInvalidSubmission(t *testing.T) {
	service, _ := newTestService()
	ctx := context.Background()

	testCases := []struct {
		name   string
		mutate func(*gallery.Project)
	}{
		{"missing title", func(p *gallery.Project) { p.Title = "" }},
		{"unknown category", func(p *gallery.Project) { p.Category = "야외" }},
		{"missing thumbnail", func(p *gallery.Project) { p.Thumbnail = "" }},
		{"space without images", func(p *gallery.Project) { p.Spaces[0].Images = nil }},
		{"space without name", func(p *gallery.Project) { p.Spaces[0].Name = "" }},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			submission := validSubmission()
			testCase.mutate(submission)

			err := service.CreateProject(ctx, submission)
			require.Error(t, err)
			assert.Equal(t, "VALIDATION_ERROR", apperr.As(err).Code)
		})
	}
}

/*
TestCreateProject_ConflictOnExistingID verifies id collisions against both
the live catalogue and the tombstone set.
*/
func TestCreateProject_ConflictOnExistingID(t *testing.T) {
	service, _ := newTestService()
	ctx := context.Background()

	duplicate := validSubmission()
	duplicate.ID = "project-residential-01" // seed id
	err := service.CreateProject(ctx, duplicate)
	require.Error(t, err)
	assert.Equal(t, "CONFLICT", apperr.As(err).Code)

	// Deleted ids are not reclaimable either.
	require.NoError(t, service.DeleteProject(ctx, "project-residential-01"))
	err = service.CreateProject(ctx, duplicate)
	require.Error(t, err)
	assert.Equal(t, "CONFLICT", apperr.As(err).Code)
}

/*
TestUpdateProject_SeedEditInsertsOverride verifies that editing a seed
project stores an override and the merged view reflects the edit in place.
*/
func TestUpdateProject_SeedEditInsertsOverride(t *testing.T) {
	service, store := newTestService()
	ctx := context.Background()

	edit := validSubmission()
	edit.Category = gallery.CategoryResidential
	edit.Title = "수정된 아파트 레퍼런스"
	require.NoError(t, service.UpdateProject(ctx, "project-residential-01", edit))

	require.Len(t, store.overrides, 1)
	assert.Equal(t, "project-residential-01", store.overrides[0].ID)

	merged, err := service.ListProjects(ctx, "")
	require.NoError(t, err)
	require.Len(t, merged, 1)
	assert.Equal(t, "수정된 아파트 레퍼런스", merged[0].Title)
}

/*
TestUpdateProject_UnknownID verifies updates to invisible ids are rejected.
*/
func TestUpdateProject_UnknownID(t *testing.T) {
	service, _ := newTestService()

	err := service.UpdateProject(context.Background(), "project-unknown", validSubmission())
	require.Error(t, err)
	assert.Equal(t, "NOT_FOUND", apperr.As(err).Code)
}

/*
TestDeleteProject_TombstonesSeed verifies that deleting a seed project hides
it permanently and drops any override for it.
*/
func TestDeleteProject_TombstonesSeed(t *testing.T) {
	service, store := newTestService()
	ctx := context.Background()

	edit := validSubmission()
	edit.Category = gallery.CategoryResidential
	require.NoError(t, service.UpdateProject(ctx, "project-residential-01", edit))

	require.NoError(t, service.DeleteProject(ctx, "project-residential-01"))

	assert.Contains(t, store.tombstones, "project-residential-01")
	assert.Empty(t, store.overrides)

	_, err := service.GetProject(ctx, "project-residential-01")
	require.Error(t, err)
	assert.Equal(t, "NOT_FOUND", apperr.As(err).Code)

	// Deleting twice reports absence, not success.
	err = service.DeleteProject(ctx, "project-residential-01")
	assert.Equal(t, "NOT_FOUND", apperr.As(err).Code)
}
