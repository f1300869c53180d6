package services

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/leaguefeed/internal/client/client"
	"github.com/dmitrijs2005/leaguefeed/internal/common"
	"github.com/dmitrijs2005/leaguefeed/internal/logging"
)

// TokenStore persists the access token. securestore.Store implements it.
type TokenStore interface {
	Put(ctx context.Context, key string, value string) error
	Get(ctx context.Context, key string) (string, bool, error)
}

// AuthService defines authentication operations for the CLI.
//
//   - Login: exchange credentials for an api key and store it encrypted.
//   - Logout: overwrite the stored key with the empty string.
//   - Token: read the stored key; ok is false if none was ever stored.
type AuthService interface {
	Login(ctx context.Context, username string, password []byte) error
	Logout(ctx context.Context) error
	Token(ctx context.Context) (string, bool, error)
}

type authService struct {
	client client.Client
	store  TokenStore
	log    logging.Logger
}

func NewAuthService(client client.Client, store TokenStore, log logging.Logger) AuthService {
	if log == nil {
		log = logging.Nop()
	}
	return &authService{client: client, store: store, log: log}
}

func (a *authService) Login(ctx context.Context, username string, password []byte) error {
	key, err := a.client.Login(ctx, username, password)
	if err != nil {
		return fmt.Errorf("login error: %w", err)
	}

	if err := a.store.Put(ctx, common.APIKeyStorageKey, key); err != nil {
		return fmt.Errorf("token saving error: %w", err)
	}
	a.log.Info(ctx, "logged in", "username", username)
	return nil
}

func (a *authService) Logout(ctx context.Context) error {
	if err := a.store.Put(ctx, common.APIKeyStorageKey, ""); err != nil {
		return fmt.Errorf("token clearing error: %w", err)
	}
	return nil
}

func (a *authService) Token(ctx context.Context) (string, bool, error) {
	return a.store.Get(ctx, common.APIKeyStorageKey)
}
