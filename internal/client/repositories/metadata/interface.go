package metadata

import (
	"context"
)

// Repository is the small key/value table holding the sealed access token
// and the keyring salt. Get returns nil, nil for a missing key.
type Repository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error

	// SetIfAbsent stores value only when key has no value yet and returns
	// whatever is stored afterwards.
	SetIfAbsent(ctx context.Context, key string, value []byte) ([]byte, error)
}
