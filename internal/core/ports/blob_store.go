package ports

import "context"

// BlobStore writes binary payloads to the content area.
type BlobStore interface {
	// Save writes data under a freshly generated name unrelated to any
	// metadata id and returns the resulting content address. The payload is
	// opaque: it is never inspected or validated.
	Save(ctx context.Context, data []byte) (string, error)
}
