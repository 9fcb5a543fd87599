// Package session persists and exposes the single bearer token that
// represents the authenticated session. The Store keeps the token at
// rest sealed with AES-GCM under a key stretched from a per-install
// random seed; file modes keep both files private to the user.
package session

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/crypto/argon2"
)

// ErrNoToken indicates no token is currently stored.
var ErrNoToken = errors.New("session: no stored token")

// Store is durable single-slot storage for the bearer token.
type Store interface {
	Read() (string, error)
	Save(token string) error
	Delete() error
}

const (
	seedFileName  = "seed"
	tokenFileName = "token"
	seedSize      = 32
	saltSize      = 16
	nonceSize     = 12
)

// FileStore keeps the sealed token under a directory, by default
// os.UserConfigDir()/moviactl.
type FileStore struct {
	dir string
}

// NewFileStore creates a store rooted at dir. An empty dir selects the
// default location under the user config directory.
func NewFileStore(dir string) (*FileStore, error) {
	if dir == "" {
		base, err := os.UserConfigDir()
		if err != nil {
			return nil, fmt.Errorf("failed to resolve user config dir: %w", err)
		}
		dir = filepath.Join(base, "moviactl")
	}
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, fmt.Errorf("failed to create session dir: %w", err)
	}
	return &FileStore{dir: dir}, nil
}

// Save seals the token and replaces any previously stored one.
func (s *FileStore) Save(token string) error {
	key, err := s.sealKey()
	if err != nil {
		return err
	}

	nonce := make([]byte, nonceSize)
	if _, err := rand.Read(nonce); err != nil {
		return fmt.Errorf("failed to generate nonce: %w", err)
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return err
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return err
	}

	sealed := gcm.Seal(nil, nonce, []byte(token), nil)
	payload := append(nonce, sealed...)

	if err := os.WriteFile(filepath.Join(s.dir, tokenFileName), payload, 0o600); err != nil {
		return fmt.Errorf("failed to write token file: %w", err)
	}
	return nil
}

// Read returns the stored token, or ErrNoToken when none exists.
func (s *FileStore) Read() (string, error) {
	payload, err := os.ReadFile(filepath.Join(s.dir, tokenFileName))
	if err != nil {
		if os.IsNotExist(err) {
			return "", ErrNoToken
		}
		return "", fmt.Errorf("failed to read token file: %w", err)
	}
	if len(payload) < nonceSize {
		return "", fmt.Errorf("session: token file is corrupt")
	}

	key, err := s.sealKey()
	if err != nil {
		return "", err
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return "", err
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return "", err
	}

	token, err := gcm.Open(nil, payload[:nonceSize], payload[nonceSize:], nil)
	if err != nil {
		return "", fmt.Errorf("failed to unseal token: %w", err)
	}
	return string(token), nil
}

// Delete removes the stored token. Deleting an absent token is not an
// error.
func (s *FileStore) Delete() error {
	err := os.Remove(filepath.Join(s.dir, tokenFileName))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete token file: %w", err)
	}
	return nil
}

// sealKey loads the per-install seed, creating it on first use, and
// stretches it into the AES key. The seed file carries its own salt so
// the derived key is stable across runs.
func (s *FileStore) sealKey() ([]byte, error) {
	seedPath := filepath.Join(s.dir, seedFileName)

	seed, err := os.ReadFile(seedPath)
	if os.IsNotExist(err) {
		seed = make([]byte, seedSize+saltSize)
		if _, err := rand.Read(seed); err != nil {
			return nil, fmt.Errorf("failed to generate seed: %w", err)
		}
		if err := os.WriteFile(seedPath, seed, 0o600); err != nil {
			return nil, fmt.Errorf("failed to write seed file: %w", err)
		}
	} else if err != nil {
		return nil, fmt.Errorf("failed to read seed file: %w", err)
	}
	if len(seed) != seedSize+saltSize {
		return nil, fmt.Errorf("session: seed file is corrupt")
	}

	return argon2.IDKey(seed[:seedSize], seed[seedSize:], 1, 64*1024, 4, 32), nil
}
