package ports

import (
	"context"

	"github.com/filesvault/files-api/internal/core/domain"
)

// CreateFileInput carries the raw request fields for creating a file node.
// ParentID and Data arrive unparsed; the service owns their validation.
type CreateFileInput struct {
	Name string
	Type string
	// ParentID is "" or "0" for a top-level node, otherwise the hex id of
	// an existing folder.
	ParentID string
	IsPublic bool
	// Data is the base64-encoded payload. Required unless Type is folder.
	Data string
}

// ListFilesInput carries the raw query parameters for the listing endpoint.
type ListFilesInput struct {
	// ParentID is "" for no parent filter, "0" for top-level nodes only,
	// otherwise a hex folder id.
	ParentID string
	Page     int
}

// FileService validates and persists file nodes and serves scoped lookups.
type FileService interface {
	Create(ctx context.Context, owner *domain.User, in CreateFileInput) (*domain.FileNode, error)
	Get(ctx context.Context, owner *domain.User, id string) (*domain.FileNode, error)
	List(ctx context.Context, owner *domain.User, in ListFilesInput) ([]*domain.FileNode, error)
}
