package services

import (
	"context"

	"github.com/dmitrijs2005/leaguefeed/internal/client/models"
	"github.com/dmitrijs2005/leaguefeed/internal/logging"
	"golang.org/x/sync/errgroup"
)

type PostsRepository interface {
	FetchAll(ctx context.Context) ([]models.Post, error)
}

type UsersRepository interface {
	FetchAll(ctx context.Context) ([]models.User, error)
	FetchByID(ctx context.Context, id int64) (*models.User, error)
}

type FeedService interface {
	// PostsWithUsers joins every post with its author. The error is always
	// nil; see the package doc for how failures degrade.
	PostsWithUsers(ctx context.Context) ([]models.PostWithUser, error)

	// Posts returns the raw posts, failures included.
	Posts(ctx context.Context) ([]models.Post, error)
}

type feedService struct {
	posts PostsRepository
	users UsersRepository
	log   logging.Logger
}

func NewFeedService(posts PostsRepository, users UsersRepository, log logging.Logger) FeedService {
	if log == nil {
		log = logging.Nop()
	}
	return &feedService{posts: posts, users: users, log: log}
}

func (f *feedService) Posts(ctx context.Context) ([]models.Post, error) {
	return f.posts.FetchAll(ctx)
}

func (f *feedService) PostsWithUsers(ctx context.Context) ([]models.PostWithUser, error) {
	var (
		posts    []models.Post
		users    []models.User
		postsErr error
		usersErr error
	)

	// each fetch keeps its own error so one failure does not cancel the other
	var g errgroup.Group
	g.Go(func() error {
		posts, postsErr = f.posts.FetchAll(ctx)
		return nil
	})
	g.Go(func() error {
		users, usersErr = f.users.FetchAll(ctx)
		return nil
	})
	_ = g.Wait()

	if postsErr != nil {
		f.log.Warn(ctx, "posts unavailable, returning empty feed", "error", postsErr)
		return []models.PostWithUser{}, nil
	}
	if usersErr != nil {
		f.log.Warn(ctx, "users unavailable, returning posts without authors", "error", usersErr)
		users = nil
	}

	return joinPosts(posts, users), nil
}

// joinPosts pairs each post with the first user carrying its UserID.
func joinPosts(posts []models.Post, users []models.User) []models.PostWithUser {
	byID := make(map[int64]*models.User, len(users))
	for i := range users {
		if _, seen := byID[users[i].ID]; !seen {
			byID[users[i].ID] = &users[i]
		}
	}

	out := make([]models.PostWithUser, 0, len(posts))
	for _, p := range posts {
		out = append(out, models.NewPostWithUser(p, byID[p.UserID]))
	}
	return out
}
