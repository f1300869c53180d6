package users

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/leaguefeed/internal/client/models"
	"github.com/dmitrijs2005/leaguefeed/internal/dbx"
)

const selectColumns = `id, name, user_name, avatar, email, phone, website, city, suite, zip_code`

const upsertQuery = `
	INSERT INTO users (id, name, user_name, avatar, email, phone, website, city, suite, zip_code)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	ON CONFLICT(id) DO UPDATE SET
		name = excluded.name,
		user_name = excluded.user_name,
		avatar = excluded.avatar,
		email = excluded.email,
		phone = excluded.phone,
		website = excluded.website,
		city = excluded.city,
		suite = excluded.suite,
		zip_code = excluded.zip_code
`

type SQLiteRepository struct {
	db *sql.DB
}

func NewSQLiteRepository(db *sql.DB) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func scanRow(s interface{ Scan(...any) error }) (Row, error) {
	var r Row
	err := s.Scan(&r.ID, &r.Name, &r.UserName, &r.Avatar, &r.Email, &r.Phone, &r.Website, &r.City, &r.Suite, &r.ZipCode)
	return r, err
}

func (r *SQLiteRepository) GetAll(ctx context.Context) ([]models.User, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+selectColumns+` FROM users`)
	if err != nil {
		return nil, fmt.Errorf("failed to select users: %w", err)
	}
	defer rows.Close()

	result := make([]models.User, 0)
	for rows.Next() {
		row, err := scanRow(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan user row: %w", err)
		}
		result = append(result, fromRow(row))
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate user rows: %w", err)
	}

	return result, nil
}

func (r *SQLiteRepository) GetByID(ctx context.Context, id int64) (*models.User, error) {
	row, err := scanRow(r.db.QueryRowContext(ctx, `SELECT `+selectColumns+` FROM users WHERE id = ?`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user %d: %w", id, err)
	}
	u := fromRow(row)
	return &u, nil
}

func (r *SQLiteRepository) ReplaceAll(ctx context.Context, users []models.User) error {
	if len(users) == 0 {
		return nil
	}

	return dbx.WithTx(ctx, r.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		for _, u := range users {
			row := toRow(u)
			_, err := tx.ExecContext(ctx, upsertQuery,
				row.ID, row.Name, row.UserName, row.Avatar, row.Email,
				row.Phone, row.Website, row.City, row.Suite, row.ZipCode)
			if err != nil {
				return fmt.Errorf("failed to upsert user %d: %w", row.ID, err)
			}
		}
		return nil
	})
}

func (r *SQLiteRepository) Clear(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM users`)
	if err != nil {
		return fmt.Errorf("failed to clear users: %w", err)
	}
	return nil
}
