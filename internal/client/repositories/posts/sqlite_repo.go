package posts

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/leaguefeed/internal/client/models"
	"github.com/dmitrijs2005/leaguefeed/internal/dbx"
)

const upsertQuery = `
	INSERT INTO posts (id, user_id, title, body) VALUES (?, ?, ?, ?)
	ON CONFLICT(id) DO UPDATE SET
		user_id = excluded.user_id,
		title = excluded.title,
		body = excluded.body
`

type SQLiteRepository struct {
	db *sql.DB
}

func NewSQLiteRepository(db *sql.DB) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (r *SQLiteRepository) GetAll(ctx context.Context) ([]models.Post, error) {
	return r.query(ctx, `SELECT id, user_id, title, body FROM posts`)
}

func (r *SQLiteRepository) GetByUserID(ctx context.Context, userID int64) ([]models.Post, error) {
	return r.query(ctx, `SELECT id, user_id, title, body FROM posts WHERE user_id = ? ORDER BY id`, userID)
}

func (r *SQLiteRepository) query(ctx context.Context, query string, args ...any) ([]models.Post, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to select posts: %w", err)
	}
	defer rows.Close()

	result := make([]models.Post, 0)
	for rows.Next() {
		var p models.Post
		if err := rows.Scan(&p.ID, &p.UserID, &p.Title, &p.Body); err != nil {
			return nil, fmt.Errorf("failed to scan post row: %w", err)
		}
		result = append(result, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate post rows: %w", err)
	}

	return result, nil
}

func (r *SQLiteRepository) GetByID(ctx context.Context, id int64) (*models.Post, error) {
	var p models.Post
	err := r.db.QueryRowContext(ctx, `SELECT id, user_id, title, body FROM posts WHERE id = ?`, id).
		Scan(&p.ID, &p.UserID, &p.Title, &p.Body)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get post %d: %w", id, err)
	}
	return &p, nil
}

func (r *SQLiteRepository) ReplaceAll(ctx context.Context, posts []models.Post) error {
	if len(posts) == 0 {
		return nil
	}

	return dbx.WithTx(ctx, r.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		for _, p := range posts {
			if _, err := tx.ExecContext(ctx, upsertQuery, p.ID, p.UserID, p.Title, p.Body); err != nil {
				return fmt.Errorf("failed to upsert post %d: %w", p.ID, err)
			}
		}
		return nil
	})
}

func (r *SQLiteRepository) Clear(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM posts`)
	if err != nil {
		return fmt.Errorf("failed to clear posts: %w", err)
	}
	return nil
}
