package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/filesvault/files-api/internal/core/domain"
	"github.com/filesvault/files-api/internal/core/ports"
)

const collectionFiles = "files"

type FileRepository struct {
	col *mongo.Collection
}

func NewFileRepository(db *mongo.Database) *FileRepository {
	return &FileRepository{col: db.Collection(collectionFiles)}
}

// Insert persists a new file node and returns it with the assigned id.
func (r *FileRepository) Insert(ctx context.Context, node *domain.FileNode) (*domain.FileNode, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.InsertOne(ctx, node)
	if err != nil {
		return nil, fmt.Errorf("insert file node: %w", err)
	}

	created := *node
	created.ID = res.InsertedID.(primitive.ObjectID)
	return &created, nil
}

// FindByID retrieves a node scoped by id and owner. Someone else's node and
// a missing node both come back as domain.ErrFileNotFound.
func (r *FileRepository) FindByID(ctx context.Context, id string, ownerID primitive.ObjectID) (*domain.FileNode, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrFileNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var node domain.FileNode
	err = r.col.FindOne(ctx, bson.M{"_id": oid, "user_id": ownerID}).Decode(&node)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrFileNotFound
		}
		return nil, fmt.Errorf("find file node: %w", err)
	}
	return &node, nil
}

// FindAnyByID retrieves a node by id regardless of owner.
func (r *FileRepository) FindAnyByID(ctx context.Context, id primitive.ObjectID) (*domain.FileNode, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var node domain.FileNode
	err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&node)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrFileNotFound
		}
		return nil, fmt.Errorf("find file node: %w", err)
	}
	return &node, nil
}

// List returns one page of nodes matching filter, sorted by ascending _id.
// ObjectIDs embed their creation timestamp, so this is creation order.
func (r *FileRepository) List(ctx context.Context, filter ports.ListFilesFilter) ([]*domain.FileNode, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	query := bson.M{"user_id": filter.OwnerID}
	if filter.Parent != nil {
		if filter.Parent.IsRoot() {
			query["parent_id"] = int32(0)
		} else {
			query["parent_id"] = filter.Parent.FolderID()
		}
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "_id", Value: 1}}).
		SetSkip(int64(filter.Page) * int64(filter.Limit)).
		SetLimit(int64(filter.Limit))

	cur, err := r.col.Find(ctx, query, opts)
	if err != nil {
		return nil, fmt.Errorf("list file nodes: %w", err)
	}
	defer cur.Close(ctx)

	nodes := make([]*domain.FileNode, 0, filter.Limit)
	for cur.Next(ctx) {
		var node domain.FileNode
		if err := cur.Decode(&node); err != nil {
			return nil, fmt.Errorf("decode file node: %w", err)
		}
		nodes = append(nodes, &node)
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("list file nodes: %w", err)
	}
	return nodes, nil
}

func (r *FileRepository) Count(ctx context.Context) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	return r.col.CountDocuments(ctx, bson.M{})
}

// EnsureIndexes creates the indexes backing the listing queries.
func (r *FileRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "user_id", Value: 1}, {Key: "_id", Value: 1}}},
		{Keys: bson.D{{Key: "user_id", Value: 1}, {Key: "parent_id", Value: 1}}},
	}

	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}
