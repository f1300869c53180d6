package services

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/leaguefeed/internal/client/models"
)

// PostsByUser reads cached posts of one user.
type PostsByUser interface {
	GetByUserID(ctx context.Context, userID int64) ([]models.Post, error)
}

type UserService interface {
	Users(ctx context.Context) ([]models.User, error)

	// UserByID reads the cache only and returns nil, nil for an unknown id.
	UserByID(ctx context.Context, id int64) (*models.User, error)

	// UserPosts returns the cached posts written by userID.
	UserPosts(ctx context.Context, userID int64) ([]models.Post, error)
}

type userService struct {
	users UsersRepository
	posts PostsByUser
}

func NewUserService(users UsersRepository, posts PostsByUser) UserService {
	return &userService{users: users, posts: posts}
}

func (s *userService) Users(ctx context.Context) ([]models.User, error) {
	return s.users.FetchAll(ctx)
}

func (s *userService) UserByID(ctx context.Context, id int64) (*models.User, error) {
	return s.users.FetchByID(ctx, id)
}

func (s *userService) UserPosts(ctx context.Context, userID int64) ([]models.Post, error) {
	posts, err := s.posts.GetByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("user %d posts: %w", userID, err)
	}
	return posts, nil
}
