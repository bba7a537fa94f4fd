// Copyright (c) 2026 Mumu Design Studio. All rights reserved.
// Author: dev@mumudesign.kr

package gallery

import "context"

// # Gallery Data Access

// OverrideRepository defines the data access contract for stored project
// overrides. An override either replaces a seed project (same id) or adds a
// brand-new project; the repository does not distinguish the two cases.
type OverrideRepository interface {

	/*
		ListOverrides returns every stored override in insertion order.

		Parameters:
		  - context: context.Context

		Returns:
		  - []Project: Decoded overrides; rows that fail to decode are skipped
		  - error: Database retrieval failures
	*/
	ListOverrides(context context.Context) ([]Project, error)

	/*
		UpsertOverride stores the project, replacing any override with the
		same id while keeping its original position.

		Parameters:
		  - context: context.Context
		  - project: Project (Fully validated entity)

		Returns:
		  - error: Database persistence failures
	*/
	UpsertOverride(context context.Context, project Project) error

	/*
		RemoveOverride deletes the override with the given id. Removing an
		id with no stored override is not an error.

		Parameters:
		  - context: context.Context
		  - id: string

		Returns:
		  - error: Database persistence failures
	*/
	RemoveOverride(context context.Context, id string) error
}

// TombstoneRepository defines the data access contract for deletion markers.
// A tombstone permanently hides a seed project from the merged catalogue.
type TombstoneRepository interface {

	// ListTombstones returns every tombstoned project id.
	ListTombstones(context context.Context) ([]string, error)

	// MarkDeleted records a tombstone for the given id. Marking the same id
	// twice is idempotent.
	MarkDeleted(context context.Context, id string) error
}
