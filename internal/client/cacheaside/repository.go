// Package cacheaside implements the offline-first read path shared by the
// user and post repositories.
//
// FetchAll serves the local cache whenever it holds anything. Only an empty
// cache triggers a remote fetch, whose result is persisted before it is
// returned. The cache is never invalidated or expired by this package.
package cacheaside

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/leaguefeed/internal/logging"
)

// Cache is the local side of a collection.
type Cache[T any] interface {
	GetAll(ctx context.Context) ([]T, error)
	GetByID(ctx context.Context, id int64) (*T, error)
	ReplaceAll(ctx context.Context, items []T) error
}

// Remote fetches the full collection. token may be empty.
type Remote[T any] interface {
	FetchAll(ctx context.Context, token string) ([]T, error)
}

// RemoteFunc adapts a plain function to Remote.
type RemoteFunc[T any] func(ctx context.Context, token string) ([]T, error)

func (f RemoteFunc[T]) FetchAll(ctx context.Context, token string) ([]T, error) {
	return f(ctx, token)
}

// TokenSource yields the current access token. ok is false when no token
// was ever stored, which is treated the same as an empty token.
type TokenSource interface {
	Load(ctx context.Context) (token string, ok bool, err error)
}

type Repository[T any] struct {
	name   string
	cache  Cache[T]
	remote Remote[T]
	tokens TokenSource
	log    logging.Logger
}

// New builds a repository for one collection. name is used in logs and
// error messages only.
func New[T any](name string, cache Cache[T], remote Remote[T], tokens TokenSource, log logging.Logger) *Repository[T] {
	if log == nil {
		log = logging.Nop()
	}
	return &Repository[T]{
		name:   name,
		cache:  cache,
		remote: remote,
		tokens: tokens,
		log:    log.With("entity", name),
	}
}

// FetchAll returns the cached collection, or on an empty cache fetches it
// remotely, stores it and returns what was fetched.
//
// The steps run strictly in order and nothing is retried. A failing remote
// call leaves the cache untouched; a failing write after a successful fetch
// fails the whole call.
func (r *Repository[T]) FetchAll(ctx context.Context) ([]T, error) {
	cached, err := r.cache.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: cache read failed: %w", r.name, err)
	}
	if len(cached) > 0 {
		r.log.Debug(ctx, "cache hit", "count", len(cached))
		return cached, nil
	}
	r.log.Debug(ctx, "cache miss")

	token, _, err := r.tokens.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: token read failed: %w", r.name, err)
	}

	fetched, err := r.remote.FetchAll(ctx, token)
	if err != nil {
		return nil, fmt.Errorf("%s: remote fetch failed: %w", r.name, err)
	}

	if err := r.cache.ReplaceAll(ctx, fetched); err != nil {
		return nil, fmt.Errorf("%s: cache write failed: %w", r.name, err)
	}
	r.log.Info(ctx, "remote fetch stored", "count", len(fetched))

	if fetched == nil {
		fetched = []T{}
	}
	return fetched, nil
}

// FetchByID reads the cache only. It returns nil, nil when id is not cached.
func (r *Repository[T]) FetchByID(ctx context.Context, id int64) (*T, error) {
	item, err := r.cache.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%s: cache read failed: %w", r.name, err)
	}
	return item, nil
}
