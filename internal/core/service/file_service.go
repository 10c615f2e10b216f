package service

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/filesvault/files-api/internal/core/domain"
	"github.com/filesvault/files-api/internal/core/ports"
)

// PageSize is the fixed number of records per listing page.
const PageSize = 20

// FileService validates and persists file nodes, enforcing the hierarchy
// invariants: a parent must be an existing folder, and only non-folder nodes
// carry content.
type FileService struct {
	files ports.FileRepository
	blobs ports.BlobStore
	log   zerolog.Logger
}

func NewFileService(files ports.FileRepository, blobs ports.BlobStore, log zerolog.Logger) *FileService {
	return &FileService{files: files, blobs: blobs, log: log}
}

// Create validates in and persists a new node owned by owner.
//
// For files and images the payload is written to the blob store first and
// the metadata record is inserted last. A crash between the two leaves an
// orphaned blob with no record; there is no compensating cleanup.
func (s *FileService) Create(ctx context.Context, owner *domain.User, in ports.CreateFileInput) (*domain.FileNode, error) {
	if in.Name == "" {
		return nil, domain.MissingField("name")
	}
	if !domain.ValidFileType(in.Type) {
		return nil, domain.MissingField("type")
	}
	fileType := domain.FileType(in.Type)
	if in.Data == "" && fileType != domain.TypeFolder {
		return nil, domain.MissingField("data")
	}

	parent, err := s.resolveParent(ctx, in.ParentID)
	if err != nil {
		return nil, err
	}

	ownerID, err := primitive.ObjectIDFromHex(owner.ID)
	if err != nil {
		return nil, fmt.Errorf("create file: owner id: %w", err)
	}

	node := &domain.FileNode{
		UserID:   ownerID,
		Name:     in.Name,
		Type:     fileType,
		IsPublic: in.IsPublic,
		ParentID: parent,
	}

	if fileType != domain.TypeFolder {
		raw, err := base64.StdEncoding.DecodeString(in.Data)
		if err != nil {
			return nil, domain.ErrInvalidData
		}
		address, err := s.blobs.Save(ctx, raw)
		if err != nil {
			s.log.Error().Err(err).Str("name", in.Name).Msg("blob write failed")
			return nil, err
		}
		node.LocalPath = address
	}

	created, err := s.files.Insert(ctx, node)
	if err != nil {
		s.log.Error().Err(err).Str("name", in.Name).Msg("failed to insert file node")
		return nil, err
	}

	s.log.Info().
		Str("file_id", created.ID.Hex()).
		Str("user_id", owner.ID).
		Str("type", in.Type).
		Msg("file node created")

	return created, nil
}

// resolveParent turns the raw parentId field into a ParentRef, verifying that
// a non-root parent exists and is a folder. A syntactically invalid id is
// treated as "not found", never as a distinct error.
func (s *FileService) resolveParent(ctx context.Context, raw string) (domain.ParentRef, error) {
	if raw == "" || raw == "0" {
		return domain.RootParent(), nil
	}

	parentID, err := primitive.ObjectIDFromHex(raw)
	if err != nil {
		return domain.ParentRef{}, domain.ErrParentNotFound
	}

	parent, err := s.files.FindAnyByID(ctx, parentID)
	if err != nil {
		if errors.Is(err, domain.ErrFileNotFound) {
			return domain.ParentRef{}, domain.ErrParentNotFound
		}
		return domain.ParentRef{}, err
	}
	if !parent.IsFolder() {
		return domain.ParentRef{}, domain.ErrParentNotFolder
	}

	return domain.FolderParent(parentID), nil
}

// Get retrieves a single node scoped to owner. A node belonging to someone
// else is reported as not found.
func (s *FileService) Get(ctx context.Context, owner *domain.User, id string) (*domain.FileNode, error) {
	ownerID, err := primitive.ObjectIDFromHex(owner.ID)
	if err != nil {
		return nil, fmt.Errorf("get file: owner id: %w", err)
	}
	return s.files.FindByID(ctx, id, ownerID)
}

// List returns one page of the owner's nodes, optionally filtered by parent,
// in ascending creation order. An out-of-range page yields an empty slice.
func (s *FileService) List(ctx context.Context, owner *domain.User, in ports.ListFilesInput) ([]*domain.FileNode, error) {
	ownerID, err := primitive.ObjectIDFromHex(owner.ID)
	if err != nil {
		return nil, fmt.Errorf("list files: owner id: %w", err)
	}

	page := in.Page
	if page < 0 {
		page = 0
	}

	filter := ports.ListFilesFilter{
		OwnerID: ownerID,
		Page:    page,
		Limit:   PageSize,
	}

	switch in.ParentID {
	case "":
		// no parent filter
	case "0":
		root := domain.RootParent()
		filter.Parent = &root
	default:
		parentID, err := primitive.ObjectIDFromHex(in.ParentID)
		if err != nil {
			// An unparsable parent can match nothing.
			return []*domain.FileNode{}, nil
		}
		parent := domain.FolderParent(parentID)
		filter.Parent = &parent
	}

	nodes, err := s.files.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	if nodes == nil {
		nodes = []*domain.FileNode{}
	}
	return nodes, nil
}
