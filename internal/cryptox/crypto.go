// Package cryptox holds the cryptographic primitives of the client: an
// Argon2id key derivation and an AES-GCM sealer for short text secrets.
package cryptox

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"io"

	"golang.org/x/crypto/argon2"
)

// KeySize is the AES-256 key length produced by DeriveMasterKey.
const KeySize = 32

var ErrInvalidPayload = errors.New("invalid sealed payload")

// DeriveMasterKey stretches a password into a KeySize-byte key with
// Argon2id. Identical inputs always yield the same key.
func DeriveMasterKey(password []byte, salt []byte) []byte {
	return argon2.IDKey(password, salt, 1, 64*1024, 4, KeySize)
}

// Sealer seals and opens text values with AES-GCM.
//
// The sealed form is base64(nonce || ciphertext), using the raw standard
// alphabet, so it can be stored in any text column. A fresh random nonce is
// generated for every Seal call.
type Sealer struct {
	aead cipher.AEAD
}

// NewSealer builds a Sealer from a raw AES key (16, 24 or 32 bytes).
// The key slice is not retained past the call; the caller may wipe it.
func NewSealer(key []byte) (*Sealer, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("new cipher: %w", err)
	}
	aead, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("new gcm: %w", err)
	}
	return &Sealer{aead: aead}, nil
}

// Seal encrypts value and returns the printable sealed payload.
func (s *Sealer) Seal(value string) (string, error) {
	nonce := make([]byte, s.aead.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return "", fmt.Errorf("read nonce: %w", err)
	}

	payload := s.aead.Seal(nonce, nonce, []byte(value), nil)
	return base64.RawStdEncoding.EncodeToString(payload), nil
}

// Open reverses Seal. Any tampering, truncation or key mismatch is reported
// as an error; Open never returns unauthenticated plaintext.
func (s *Sealer) Open(sealed string) (string, error) {
	payload, err := base64.RawStdEncoding.DecodeString(sealed)
	if err != nil {
		return "", fmt.Errorf("%w: decode: %v", ErrInvalidPayload, err)
	}

	nonceSize := s.aead.NonceSize()
	if len(payload) < nonceSize+s.aead.Overhead() {
		return "", fmt.Errorf("%w: too short", ErrInvalidPayload)
	}

	plaintext, err := s.aead.Open(nil, payload[:nonceSize], payload[nonceSize:], nil)
	if err != nil {
		return "", fmt.Errorf("decrypt sealed value: %w", err)
	}
	return string(plaintext), nil
}
