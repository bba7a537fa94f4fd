// Copyright (c) 2026 Mumu Design Studio. All rights reserved.
// Author: dev@mumudesign.kr

package gallery

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/mumudesign/studio-api/internal/platform/database/schema"
	"github.com/mumudesign/studio-api/internal/platform/dberr"
)

// PostgresRepository implements both [OverrideRepository] and
// [TombstoneRepository] on the gallery schema.
type PostgresRepository struct {
	db     *pgxpool.Pool
	logger *slog.Logger
}

func NewPostgresRepository(db *pgxpool.Pool, logger *slog.Logger) *PostgresRepository {
	return &PostgresRepository{db: db, logger: logger}
}

// # Overrides

func (repository *PostgresRepository) ListOverrides(context context.Context) ([]Project, error) {
	query := fmt.Sprintf(`SELECT %s, %s FROM %s ORDER BY %s ASC`,
		schema.GalleryOverride.ID, schema.GalleryOverride.Payload,
		schema.GalleryOverride.Table, schema.GalleryOverride.Position)

	rows, err := repository.db.Query(context, query)
	if err != nil {
		return nil, dberr.Wrap(err, "list_gallery_overrides")
	}
	defer rows.Close()

	overrides := make([]Project, 0)
	for rows.Next() {
		var id string
		var payload []byte
		if err := rows.Scan(&id, &payload); err != nil {
			return nil, dberr.Wrap(err, "scan_gallery_override")
		}

		var project Project
		if err := json.Unmarshal(payload, &project); err != nil {
			// Fail closed: an undecodable row is dropped from the merged
			// catalogue rather than surfacing half a project.
			repository.logger.Warn("gallery_override_payload_invalid",
				slog.String("project_id", id),
				slog.String("error", err.Error()))
			continue
		}

		// The row key is authoritative over whatever the payload claims.
		project.ID = id
		overrides = append(overrides, project)
	}

	if err := rows.Err(); err != nil {
		return nil, dberr.Wrap(err, "iterate_gallery_overrides")
	}

	return overrides, nil
}

func (repository *PostgresRepository) UpsertOverride(context context.Context, project Project) error {
	payload, err := json.Marshal(project)
	if err != nil {
		return dberr.Wrap(err, "encode_gallery_override")
	}

	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s)
		VALUES ($1, $2, NOW())
		ON CONFLICT (%s) DO UPDATE SET %s = EXCLUDED.%s, %s = NOW()`,
		schema.GalleryOverride.Table,
		schema.GalleryOverride.ID, schema.GalleryOverride.Payload, schema.GalleryOverride.UpdatedAt,
		schema.GalleryOverride.ID,
		schema.GalleryOverride.Payload, schema.GalleryOverride.Payload,
		schema.GalleryOverride.UpdatedAt)

	if _, err := repository.db.Exec(context, query, project.ID, payload); err != nil {
		return dberr.Wrap(err, "upsert_gallery_override")
	}

	return nil
}

func (repository *PostgresRepository) RemoveOverride(context context.Context, id string) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`,
		schema.GalleryOverride.Table, schema.GalleryOverride.ID)

	if _, err := repository.db.Exec(context, query, id); err != nil {
		return dberr.Wrap(err, "remove_gallery_override")
	}

	return nil
}

// # Tombstones

func (repository *PostgresRepository) ListTombstones(context context.Context) ([]string, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s ORDER BY %s ASC`,
		schema.GalleryTombstone.ID, schema.GalleryTombstone.Table, schema.GalleryTombstone.DeletedAt)

	rows, err := repository.db.Query(context, query)
	if err != nil {
		return nil, dberr.Wrap(err, "list_gallery_tombstones")
	}
	defer rows.Close()

	ids := make([]string, 0)
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, dberr.Wrap(err, "scan_gallery_tombstone")
		}
		ids = append(ids, id)
	}

	if err := rows.Err(); err != nil {
		return nil, dberr.Wrap(err, "iterate_gallery_tombstones")
	}

	return ids, nil
}

func (repository *PostgresRepository) MarkDeleted(context context.Context, id string) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s) VALUES ($1, NOW())
		ON CONFLICT (%s) DO NOTHING`,
		schema.GalleryTombstone.Table, schema.GalleryTombstone.ID, schema.GalleryTombstone.DeletedAt,
		schema.GalleryTombstone.ID)

	if _, err := repository.db.Exec(context, query, id); err != nil {
		return dberr.Wrap(err, "mark_gallery_tombstone")
	}

	return nil
}
