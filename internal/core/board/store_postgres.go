// Copyright (c) 2026 Mumu Design Studio. All rights reserved.
// Author: dev@mumudesign.kr

package board

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/mumudesign/studio-api/internal/platform/database/schema"
	"github.com/mumudesign/studio-api/internal/platform/dberr"
)

// PostgresRepository implements [Repository] on the board schema. Post ids
// come from the table's identity column, which only ever counts up.
type PostgresRepository struct {
	db     *pgxpool.Pool
	logger *slog.Logger
}

func NewPostgresRepository(db *pgxpool.Pool, logger *slog.Logger) *PostgresRepository {
	return &PostgresRepository{db: db, logger: logger}
}

func (repository *PostgresRepository) List(context context.Context) ([]Post, error) {
	query := fmt.Sprintf(`SELECT %s, %s, %s, %s, %s, %s, %s, %s, %s, %s FROM %s ORDER BY %s DESC`,
		schema.BoardPost.ID, schema.BoardPost.Title, schema.BoardPost.Author,
		schema.BoardPost.PostedOn, schema.BoardPost.Status, schema.BoardPost.IsPrivate,
		schema.BoardPost.Password, schema.BoardPost.Content, schema.BoardPost.Replies,
		schema.BoardPost.CreatedAt,
		schema.BoardPost.Table, schema.BoardPost.ID)

	rows, err := repository.db.Query(context, query)
	if err != nil {
		return nil, dberr.Wrap(err, "list_board_posts")
	}
	defer rows.Close()

	posts := make([]Post, 0)
	for rows.Next() {
		post, err := repository.scanPost(rows)
		if err != nil {
			return nil, err
		}
		posts = append(posts, *post)
	}

	if err := rows.Err(); err != nil {
		return nil, dberr.Wrap(err, "iterate_board_posts")
	}

	return posts, nil
}

func (repository *PostgresRepository) FindByID(context context.Context, id int64) (*Post, error) {
	query := fmt.Sprintf(`SELECT %s, %s, %s, %s, %s, %s, %s, %s, %s, %s FROM %s WHERE %s = $1`,
		schema.BoardPost.ID, schema.BoardPost.Title, schema.BoardPost.Author,
		schema.BoardPost.PostedOn, schema.BoardPost.Status, schema.BoardPost.IsPrivate,
		schema.BoardPost.Password, schema.BoardPost.Content, schema.BoardPost.Replies,
		schema.BoardPost.CreatedAt,
		schema.BoardPost.Table, schema.BoardPost.ID)

	rows, err := repository.db.Query(context, query, id)
	if err != nil {
		return nil, dberr.Wrap(err, "find_board_post")
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return nil, dberr.Wrap(err, "find_board_post")
		}
		return nil, dberr.Wrap(pgx.ErrNoRows, "find_board_post")
	}

	return repository.scanPost(rows)
}

func (repository *PostgresRepository) Insert(context context.Context, post *Post) error {
	replies, err := encodeReplies(post.Replies)
	if err != nil {
		return dberr.Wrap(err, "encode_board_replies")
	}

	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING %s, %s`,
		schema.BoardPost.Table,
		schema.BoardPost.Title, schema.BoardPost.Author, schema.BoardPost.PostedOn,
		schema.BoardPost.Status, schema.BoardPost.IsPrivate, schema.BoardPost.Password,
		schema.BoardPost.Content, schema.BoardPost.Replies,
		schema.BoardPost.ID, schema.BoardPost.CreatedAt)

	err = repository.db.QueryRow(context, query,
		post.Title, post.Author, post.Date, string(post.Status),
		post.IsPrivate, post.Password, post.Content, replies,
	).Scan(&post.ID, &post.CreatedAt)
	if err != nil {
		return dberr.Wrap(err, "insert_board_post")
	}

	return nil
}

func (repository *PostgresRepository) Update(context context.Context, post Post) error {
	replies, err := encodeReplies(post.Replies)
	if err != nil {
		return dberr.Wrap(err, "encode_board_replies")
	}

	query := fmt.Sprintf(`UPDATE %s SET %s = $1, %s = $2 WHERE %s = $3`,
		schema.BoardPost.Table, schema.BoardPost.Status, schema.BoardPost.Replies,
		schema.BoardPost.ID)

	tag, err := repository.db.Exec(context, query, string(post.Status), replies, post.ID)
	if err != nil {
		return dberr.Wrap(err, "update_board_post")
	}
	if tag.RowsAffected() == 0 {
		return dberr.Wrap(pgx.ErrNoRows, "update_board_post")
	}

	return nil
}

func (repository *PostgresRepository) Delete(context context.Context, id int64) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`,
		schema.BoardPost.Table, schema.BoardPost.ID)

	tag, err := repository.db.Exec(context, query, id)
	if err != nil {
		return dberr.Wrap(err, "delete_board_post")
	}
	if tag.RowsAffected() == 0 {
		return dberr.Wrap(pgx.ErrNoRows, "delete_board_post")
	}

	return nil
}

// scanPost hydrates one row. A reply thread that fails to decode is dropped
// with a warning rather than poisoning the whole post.
func (repository *PostgresRepository) scanPost(rows pgx.Rows) (*Post, error) {
	var post Post
	var status string
	var replies []byte

	err := rows.Scan(&post.ID, &post.Title, &post.Author, &post.Date, &status,
		&post.IsPrivate, &post.Password, &post.Content, &replies, &post.CreatedAt)
	if err != nil {
		return nil, dberr.Wrap(err, "scan_board_post")
	}
	post.Status = Status(status)

	if len(replies) > 0 {
		if err := json.Unmarshal(replies, &post.Replies); err != nil {
			repository.logger.Warn("board_replies_payload_invalid",
				slog.Int64("post_id", post.ID),
				slog.String("error", err.Error()))
			post.Replies = nil
		}
	}

	return &post, nil
}

func encodeReplies(replies []Reply) ([]byte, error) {
	if replies == nil {
		replies = []Reply{}
	}
	return json.Marshal(replies)
}
