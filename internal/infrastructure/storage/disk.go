// Package storage implements the content area where binary payloads live.
package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// DiskStore writes payloads to a directory on the local filesystem, one file
// per blob, named by a random token unrelated to any metadata id.
type DiskStore struct {
	root string
}

// NewDiskStore creates a DiskStore rooted at root, creating the directory
// (including parents) if needed. Creation is idempotent.
func NewDiskStore(root string) (*DiskStore, error) {
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("storage: create root %s: %w", root, err)
	}
	return &DiskStore{root: root}, nil
}

// Save writes the full payload under a fresh random name and returns the
// resulting path as the content address. The payload bytes are opaque.
func (s *DiskStore) Save(_ context.Context, data []byte) (string, error) {
	address := filepath.Join(s.root, uuid.NewString())
	if err := os.WriteFile(address, data, 0o644); err != nil {
		return "", fmt.Errorf("storage: write blob: %w", err)
	}
	return address, nil
}
