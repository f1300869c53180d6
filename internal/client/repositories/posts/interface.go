package posts

import (
	"context"

	"github.com/dmitrijs2005/leaguefeed/internal/client/models"
)

// Repository describes the local post cache.
type Repository interface {
	GetAll(ctx context.Context) ([]models.Post, error)

	// GetByID returns the cached post or nil, nil when there is none.
	GetByID(ctx context.Context, id int64) (*models.Post, error)

	// GetByUserID returns the cached posts written by userID.
	GetByUserID(ctx context.Context, userID int64) ([]models.Post, error)

	ReplaceAll(ctx context.Context, posts []models.Post) error
	Clear(ctx context.Context) error
}
