// Package identity supplies the stable opaque user id the rest of the
// system keys on. Sign-in itself is someone else's problem; without an
// identity the timer runs on a fresh snapshot and persists nothing.
package identity

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// Provider yields the current user id. ok is false when nobody is signed in.
type Provider interface {
	UserID() (id string, ok bool)
}

// Static is a fixed identity, used when the user id comes from config or a
// command-line flag.
type Static struct {
	ID string
}

func (s Static) UserID() (string, bool) {
	id := strings.TrimSpace(s.ID)
	return id, id != ""
}

// Anonymous is the signed-out state.
type Anonymous struct{}

func (Anonymous) UserID() (string, bool) { return "", false }

// FileProvider keeps a generated user id in a dotfile so every invocation on
// this machine maps to the same document.
type FileProvider struct {
	id string
}

// DefaultIDPath returns the default identity file location.
func DefaultIDPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("get home dir: %w", err)
	}
	return filepath.Join(homeDir, ".life-timer.id"), nil
}

// NewFileProvider loads the id at path, generating and saving one on first
// use.
func NewFileProvider(path string) (*FileProvider, error) {
	raw, err := os.ReadFile(path)
	if err == nil {
		id := strings.TrimSpace(string(raw))
		if id != "" {
			return &FileProvider{id: id}, nil
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("read identity: %w", err)
	}

	id := uuid.NewString()
	if err := os.WriteFile(path, []byte(id+"\n"), 0o600); err != nil {
		return nil, fmt.Errorf("write identity: %w", err)
	}
	return &FileProvider{id: id}, nil
}

func (p *FileProvider) UserID() (string, bool) {
	return p.id, true
}
