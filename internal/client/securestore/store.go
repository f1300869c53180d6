package securestore

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/leaguefeed/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/leaguefeed/internal/common"
	"github.com/dmitrijs2005/leaguefeed/internal/cryptox"
)

var ErrCorrupted = errors.New("stored secret is corrupted")

type Store struct {
	meta metadata.Repository
	keys Keyring
}

func New(meta metadata.Repository, keys Keyring) *Store {
	return &Store{meta: meta, keys: keys}
}

func (s *Store) sealer(ctx context.Context) (*cryptox.Sealer, error) {
	key, err := s.keys.Key(ctx)
	if err != nil {
		return nil, fmt.Errorf("load key: %w", err)
	}
	defer common.WipeByteArray(key)

	return cryptox.NewSealer(key)
}

// Put seals plaintext and stores it under key, replacing any previous
// value. The value is durable once Put returns nil.
func (s *Store) Put(ctx context.Context, key string, plaintext string) error {
	sealer, err := s.sealer(ctx)
	if err != nil {
		return err
	}

	sealed, err := sealer.Seal(plaintext)
	if err != nil {
		return fmt.Errorf("seal %s: %w", key, err)
	}

	if err := s.meta.Set(ctx, key, []byte(sealed)); err != nil {
		return fmt.Errorf("store %s: %w", key, err)
	}
	return nil
}

// Get returns the current plaintext under key. ok is false when nothing was
// ever stored.
func (s *Store) Get(ctx context.Context, key string) (value string, ok bool, err error) {
	raw, err := s.meta.Get(ctx, key)
	if err != nil {
		return "", false, fmt.Errorf("read %s: %w", key, err)
	}
	if raw == nil {
		return "", false, nil
	}

	sealer, err := s.sealer(ctx)
	if err != nil {
		return "", false, err
	}

	plaintext, err := sealer.Open(string(raw))
	if err != nil {
		return "", false, fmt.Errorf("%w: %s: %w", ErrCorrupted, key, err)
	}
	return plaintext, true, nil
}

// Secret returns a Source bound to key. Nothing is read until Load.
func (s *Store) Secret(key string) Source {
	return Source{store: s, key: key}
}

// Source is a lazy view of a single stored value. Every Load reads the
// latest persisted value, so a Source can be kept and reused.
type Source struct {
	store *Store
	key   string
}

func (src Source) Load(ctx context.Context) (string, bool, error) {
	return src.store.Get(ctx, src.key)
}
