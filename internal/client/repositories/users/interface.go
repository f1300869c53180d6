package users

import (
	"context"

	"github.com/dmitrijs2005/leaguefeed/internal/client/models"
)

// Repository describes the local user cache.
type Repository interface {
	// GetAll returns every cached user in unspecified order.
	GetAll(ctx context.Context) ([]models.User, error)

	// GetByID returns the cached user or nil, nil when there is none.
	GetByID(ctx context.Context, id int64) (*models.User, error)

	// ReplaceAll upserts all users by id in a single transaction.
	ReplaceAll(ctx context.Context, users []models.User) error

	// Clear removes every cached user.
	Clear(ctx context.Context) error
}
