package client

import (
	"context"

	"github.com/dmitrijs2005/leaguefeed/internal/client/models"
)

// Client is the remote collection source. Every call is a single attempt.
// An empty token is sent as no token at all.
type Client interface {
	Login(ctx context.Context, username string, password []byte) (string, error)
	Users(ctx context.Context, token string) ([]models.User, error)
	Posts(ctx context.Context, token string) ([]models.Post, error)
}
