package ports

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/filesvault/files-api/internal/core/domain"
)

// ListFilesFilter carries the query parameters for listing file nodes.
// OwnerID is always enforced; Parent is optional.
type ListFilesFilter struct {
	OwnerID primitive.ObjectID
	// Parent, when non-nil, restricts the listing to direct children of the
	// referenced folder (or to top-level nodes for the root sentinel).
	Parent *domain.ParentRef
	Page   int // 0-based
	Limit  int // rows per page
}

// FileRepository defines persistence operations for file nodes.
type FileRepository interface {
	// Insert persists a new node and returns it with its assigned id.
	Insert(ctx context.Context, node *domain.FileNode) (*domain.FileNode, error)
	// FindByID retrieves a node scoped by both id and owner. A node owned
	// by someone else is indistinguishable from a missing one.
	FindByID(ctx context.Context, id string, ownerID primitive.ObjectID) (*domain.FileNode, error)
	// FindAnyByID retrieves a node by id regardless of owner. Used for
	// parent-folder validation, where the parent may belong to anyone.
	FindAnyByID(ctx context.Context, id primitive.ObjectID) (*domain.FileNode, error)
	// List returns one page of nodes matching filter, ordered by ascending
	// id (creation order).
	List(ctx context.Context, filter ListFilesFilter) ([]*domain.FileNode, error)
	Count(ctx context.Context) (int64, error)
}
