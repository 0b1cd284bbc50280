package storage

import (
	"context"
	"strings"

	domainerrors "fx-bothub.backend/internal/domain/errors"
)

// BlobStore persists an already-encoded upload (base64 data URL or URL)
// and returns a retrievable reference for it. The real storage backend is
// an external collaborator; implementations only decide where the bytes go.
type BlobStore interface {
	Put(ctx context.Context, kind, data string) (string, error)
}

// DataURLStore keeps uploads inline: the submitted data URL is the stored
// reference. Rejects payloads that are neither a data URL nor an http(s) URL.
type DataURLStore struct{}

// NewDataURLStore creates a passthrough blob store
func NewDataURLStore() *DataURLStore {
	return &DataURLStore{}
}

// Put validates and returns the reference unchanged
func (s *DataURLStore) Put(_ context.Context, _ string, data string) (string, error) {
	if data == "" {
		return "", domainerrors.ErrInvalidInput
	}
	if !strings.HasPrefix(data, "data:") &&
		!strings.HasPrefix(data, "http://") &&
		!strings.HasPrefix(data, "https://") {
		return "", domainerrors.ErrInvalidInput
	}
	return data, nil
}
