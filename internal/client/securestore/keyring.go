package securestore

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/dmitrijs2005/leaguefeed/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/leaguefeed/internal/common"
	"github.com/dmitrijs2005/leaguefeed/internal/cryptox"
)

// SaltKey is the metadata key under which PassphraseKeyring keeps its salt.
const SaltKey = "keyring_salt"

const saltSize = 32

// Keyring supplies the AES key. Each call returns a fresh copy the caller
// owns and may wipe.
type Keyring interface {
	Key(ctx context.Context) ([]byte, error)
}

// FileKeyring keeps a random key in a file readable only by the owner.
// The file is created on first use.
type FileKeyring struct {
	path string
	mu   sync.Mutex
}

func NewFileKeyring(path string) *FileKeyring {
	return &FileKeyring{path: path}
}

func (k *FileKeyring) Key(ctx context.Context) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	k.mu.Lock()
	defer k.mu.Unlock()

	key, err := os.ReadFile(k.path)
	if errors.Is(err, fs.ErrNotExist) {
		key, err = k.create()
	}
	if err != nil {
		return nil, fmt.Errorf("key file %s: %w", k.path, err)
	}

	if len(key) != cryptox.KeySize {
		common.WipeByteArray(key)
		return nil, fmt.Errorf("key file %s: expected %d bytes", k.path, cryptox.KeySize)
	}
	return key, nil
}

// create writes a fresh key to a temp file next to path and links it into
// place, so path either does not exist or holds a complete key.
func (k *FileKeyring) create() ([]byte, error) {
	key := common.GenerateRandByteArray(cryptox.KeySize)

	tmp, err := os.CreateTemp(filepath.Dir(k.path), ".key-*")
	if err != nil {
		common.WipeByteArray(key)
		return nil, err
	}
	defer os.Remove(tmp.Name())

	if err := writeKey(tmp, key); err != nil {
		common.WipeByteArray(key)
		return nil, err
	}

	err = os.Link(tmp.Name(), k.path)
	if errors.Is(err, fs.ErrExist) {
		// another process won the race
		common.WipeByteArray(key)
		return os.ReadFile(k.path)
	}
	if err != nil {
		common.WipeByteArray(key)
		return nil, err
	}
	return key, nil
}

func writeKey(f *os.File, key []byte) error {
	if err := f.Chmod(0o600); err != nil {
		_ = f.Close()
		return err
	}
	if _, err := f.Write(key); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Sync(); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

// PassphraseKeyring derives the key from a passphrase with Argon2id. The
// salt is random, not secret, and stored in metadata on first use.
//
// Every Key call runs the full KDF (64 MiB, see cryptox.DeriveMasterKey),
// so callers should avoid reading secrets in hot paths.
type PassphraseKeyring struct {
	passphrase []byte
	meta       metadata.Repository
}

func NewPassphraseKeyring(passphrase string, meta metadata.Repository) *PassphraseKeyring {
	return &PassphraseKeyring{passphrase: []byte(passphrase), meta: meta}
}

func (k *PassphraseKeyring) Key(ctx context.Context) ([]byte, error) {
	salt, err := k.meta.SetIfAbsent(ctx, SaltKey, common.GenerateRandByteArray(saltSize))
	if err != nil {
		return nil, fmt.Errorf("load salt: %w", err)
	}
	if len(salt) != saltSize {
		return nil, fmt.Errorf("load salt: expected %d bytes, got %d", saltSize, len(salt))
	}

	return cryptox.DeriveMasterKey(k.passphrase, salt), nil
}
