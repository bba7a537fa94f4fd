// Copyright (c) 2026 Mumu Design Studio. All rights reserved.
// Author: dev@mumudesign.kr

package gallery

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/mumudesign/studio-api/internal/platform/apperr"
	"github.com/mumudesign/studio-api/internal/platform/validate"
	"github.com/mumudesign/studio-api/pkg/slice"
	"github.com/mumudesign/studio-api/pkg/textnorm"
)

// # Service Layer

// Service orchestrates the business logic of the portfolio gallery. All reads
// go through the merge resolver so that seed content, stored edits and
// deletions always compose the same way.
type Service struct {
	overrides  OverrideRepository
	tombstones TombstoneRepository
	logger     *slog.Logger
}

// NewService constructs a new [Service] with its required repositories.
func NewService(overrides OverrideRepository, tombstones TombstoneRepository, logger *slog.Logger) *Service {
	return &Service{
		overrides:  overrides,
		tombstones: tombstones,
		logger:     logger,
	}
}

// # Catalogue Reads

/*
ListProjects returns the merged catalogue, optionally narrowed to a category.

Description: Loads the stored overlay, merges it over the seed catalogue and
filters by category. The pseudo-category "전체" and an empty filter both mean
no narrowing.

Parameters:
  - context: context.Context
  - category: string (Storable category, "전체", or empty)

Returns:
  - []Project: Matching projects in merged order, never nil
  - error: Repository failures
*/
func (service *Service) ListProjects(context context.Context, category string) ([]Project, error) {
	merged, err := service.effective(context)
	if err != nil {
		return nil, err
	}

	category = textnorm.NFC(category)
	if category == "" || category == CategoryAll {
		return merged, nil
	}

	filtered := make([]Project, 0, len(merged))
	for _, project := range merged {
		if string(project.Category) == category {
			filtered = append(filtered, project)
		}
	}

	return filtered, nil
}

/*
GetProject returns a single project from the merged catalogue.

Parameters:
  - context: context.Context
  - id: string

Returns:
  - *Project: The merged entity
  - error: NotFound when the id is absent or tombstoned
*/
func (service *Service) GetProject(context context.Context, id string) (*Project, error) {
	merged, err := service.effective(context)
	if err != nil {
		return nil, err
	}

	for i := range merged {
		if merged[i].ID == id {
			return &merged[i], nil
		}
	}

	return nil, apperr.NotFound("project")
}

// # Catalogue Management

/*
CreateProject adds a new project to the gallery overlay.

Description: Validates the submission, assigns a timestamp-derived id when
none is supplied, and rejects ids that already exist in the merged catalogue
or were previously deleted. The entity is stored as an override so the seed
catalogue itself stays immutable.

Parameters:
  - context: context.Context
  - project: *Project (Submission; ID may be empty)

Returns:
  - error: Validation, Conflict or persistence errors
*/
func (service *Service) CreateProject(context context.Context, project *Project) error {
	if err := validateProject(project); err != nil {
		return err
	}

	// Identity assignment
	if project.ID == "" {
		project.ID = fmt.Sprintf("project-%d", time.Now().UnixMilli())
	}

	// Collision audit against both live and deleted ids
	merged, err := service.effective(context)
	if err != nil {
		return err
	}
	for _, existing := range merged {
		if existing.ID == project.ID {
			return apperr.Conflict("a project with this id already exists")
		}
	}
	deleted, err := service.tombstones.ListTombstones(context)
	if err != nil {
		return err
	}
	for _, id := range deleted {
		if id == project.ID {
			return apperr.Conflict("this project id was previously deleted")
		}
	}

	if err := service.overrides.UpsertOverride(context, *project); err != nil {
		return err
	}

	service.logger.Info("gallery_project_created",
		slog.String("project_id", project.ID),
		slog.String("category", string(project.Category)))
	return nil
}

/*
UpdateProject replaces an existing project's content.

Description: The target must be visible in the merged catalogue. Editing a
seed project inserts an override under the seed id, which the resolver then
substitutes in place; editing an added project rewrites its override.

Parameters:
  - context: context.Context
  - id: string (Id of the project being edited)
  - project: *Project (Full replacement content)

Returns:
  - error: NotFound, validation or persistence errors
*/
func (service *Service) UpdateProject(context context.Context, id string, project *Project) error {
	project.ID = id
	if err := validateProject(project); err != nil {
		return err
	}

	merged, err := service.effective(context)
	if err != nil {
		return err
	}
	found := false
	for _, existing := range merged {
		if existing.ID == id {
			found = true
			break
		}
	}
	if !found {
		return apperr.NotFound("project")
	}

	if err := service.overrides.UpsertOverride(context, *project); err != nil {
		return err
	}

	service.logger.Info("gallery_project_updated", slog.String("project_id", id))
	return nil
}

/*
DeleteProject permanently removes a project from the gallery.

Description: Records a tombstone and drops any stored override for the id.
The tombstone outlives the override, so a deleted seed project never comes
back on redeploy and the id cannot be reclaimed.

Parameters:
  - context: context.Context
  - id: string

Returns:
  - error: NotFound when the id is not currently visible
*/
func (service *Service) DeleteProject(context context.Context, id string) error {
	merged, err := service.effective(context)
	if err != nil {
		return err
	}
	found := false
	for _, existing := range merged {
		if existing.ID == id {
			found = true
			break
		}
	}
	if !found {
		return apperr.NotFound("project")
	}

	if err := service.tombstones.MarkDeleted(context, id); err != nil {
		return err
	}
	if err := service.overrides.RemoveOverride(context, id); err != nil {
		return err
	}

	service.logger.Info("gallery_project_deleted", slog.String("project_id", id))
	return nil
}

// effective loads the overlay and merges it over the seed catalogue.
func (service *Service) effective(context context.Context) ([]Project, error) {
	overrides, err := service.overrides.ListOverrides(context)
	if err != nil {
		return nil, err
	}
	tombstones, err := service.tombstones.ListTombstones(context)
	if err != nil {
		return nil, err
	}
	return Effective(Seed(), overrides, tombstones), nil
}

// validateProject performs deep business validation on a submission.
func validateProject(project *Project) error {
	validator := &validate.Validator{}

	validator.Required(FieldTitle, project.Title).MaxLen(FieldTitle, project.Title, 300)
	validator.Required(FieldThumbnail, project.Thumbnail)

	// Category audit
	allowed := slice.Map(Categories(), func(c Category) string { return string(c) })
	validator.Required(FieldCategory, string(project.Category)).
		OneOf(FieldCategory, string(project.Category), allowed...)

	// Every space needs a name and at least one photograph.
	for i, space := range project.Spaces {
		validator.Custom(FieldSpaces, space.Name == "",
			fmt.Sprintf("space %d requires a name", i+1))
		validator.Custom(FieldSpaces, len(space.Images) == 0,
			fmt.Sprintf("space %d requires at least one image", i+1))
	}

	if err := validator.Err(); err != nil {
		return err
	}

	// The hero shot falls back to the thumbnail.
	if project.HeroImage == "" {
		project.HeroImage = project.Thumbnail
	}

	return nil
}
