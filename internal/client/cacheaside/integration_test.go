package cacheaside_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/dmitrijs2005/leaguefeed/internal/client/cacheaside"
	"github.com/dmitrijs2005/leaguefeed/internal/client/client"
	"github.com/dmitrijs2005/leaguefeed/internal/client/models"
	"github.com/dmitrijs2005/leaguefeed/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/leaguefeed/internal/client/repositories/posts"
	"github.com/dmitrijs2005/leaguefeed/internal/client/repositories/users"
	"github.com/dmitrijs2005/leaguefeed/internal/client/securestore"
	"github.com/dmitrijs2005/leaguefeed/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRepository_OverSQLiteAndSecureStore(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	db, err := client.InitDatabase(ctx, filepath.Join(dir, "cache.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	store := securestore.New(metadata.NewSQLiteRepository(db), securestore.NewFileKeyring(filepath.Join(dir, "k")))
	require.NoError(t, store.Put(ctx, common.APIKeyStorageKey, "tok"))

	var calls int
	var seen string
	remote := cacheaside.RemoteFunc[models.Post](func(_ context.Context, token string) ([]models.Post, error) {
		calls++
		seen = token
		return []models.Post{{ID: 1, UserID: 1, Title: "API Post", Body: "API content"}}, nil
	})

	repo := cacheaside.New[models.Post]("posts", posts.NewSQLiteRepository(db), remote, store.Secret(common.APIKeyStorageKey), nil)

	got, err := repo.FetchAll(ctx)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "tok", seen)

	stored, err := posts.NewSQLiteRepository(db).GetByID(ctx, 1)
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, "API Post", stored.Title)

	_, err = repo.FetchAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, calls)
}

func TestRepository_UsersFromCacheArePartial(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	db, err := client.InitDatabase(ctx, filepath.Join(dir, "cache.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	store := securestore.New(metadata.NewSQLiteRepository(db), securestore.NewFileKeyring(filepath.Join(dir, "k")))
	full := models.User{ID: 1, Name: "Ann", Company: models.Company{Name: "ACME"}}
	remote := cacheaside.RemoteFunc[models.User](func(context.Context, string) ([]models.User, error) {
		return []models.User{full}, nil
	})
	repo := cacheaside.New[models.User]("users", users.NewSQLiteRepository(db), remote, store.Secret(common.APIKeyStorageKey), nil)

	first, err := repo.FetchAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, []models.User{full}, first, "a fresh fetch returns network data as is")

	second, err := repo.FetchAll(ctx)
	require.NoError(t, err)
	require.Len(t, second, 1)
	assert.True(t, second[0].Partial)
	assert.Empty(t, second[0].Company.Name)
}
