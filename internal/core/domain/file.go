package domain

import "go.mongodb.org/mongo-driver/bson/primitive"

// FileType enumerates the kinds of file nodes.
type FileType string

const (
	TypeFolder FileType = "folder"
	TypeFile   FileType = "file"
	TypeImage  FileType = "image"
)

// ValidFileType reports whether s is one of the accepted node types.
func ValidFileType(s string) bool {
	switch FileType(s) {
	case TypeFolder, TypeFile, TypeImage:
		return true
	}
	return false
}

// FileNode is a metadata record in the ownership hierarchy: either a folder
// or a leaf payload (file/image). The tree is flat in storage — each node
// carries a back-reference to its parent folder, never a child list.
type FileNode struct {
	ID       primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	UserID   primitive.ObjectID `json:"userId" bson:"user_id"`
	Name     string             `json:"name" bson:"name"`
	Type     FileType           `json:"type" bson:"type"`
	IsPublic bool               `json:"isPublic" bson:"is_public"`
	ParentID ParentRef          `json:"parentId" bson:"parent_id"`
	// LocalPath is the content address returned by the blob store.
	// Empty for folders, always set for files and images.
	LocalPath string `json:"localPath,omitempty" bson:"local_path,omitempty"`
}

// IsFolder reports whether the node is a folder.
func (f *FileNode) IsFolder() bool {
	return f.Type == TypeFolder
}
