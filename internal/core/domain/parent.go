package domain

import (
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsontype"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ParentRef is a tagged reference to a node's parent folder: either the root
// sentinel ("no parent") or the id of an existing folder node. It is a
// distinct type rather than a nullable id so the root value can never collide
// with a real generated id.
//
// On the wire and in storage the root is the literal 0, matching the public
// API contract; a folder parent is the folder's ObjectID.
type ParentRef struct {
	id   primitive.ObjectID
	root bool
}

// RootParent returns the "no parent" sentinel.
func RootParent() ParentRef {
	return ParentRef{root: true}
}

// FolderParent returns a reference to the folder with the given id.
func FolderParent(id primitive.ObjectID) ParentRef {
	return ParentRef{id: id}
}

// IsRoot reports whether the reference is the root sentinel.
func (p ParentRef) IsRoot() bool {
	return p.root
}

// FolderID returns the referenced folder id. Only meaningful when !IsRoot().
func (p ParentRef) FolderID() primitive.ObjectID {
	return p.id
}

func (p ParentRef) String() string {
	if p.root {
		return "0"
	}
	return p.id.Hex()
}

// MarshalJSON renders the root sentinel as the literal 0 and a folder parent
// as its hex id string.
func (p ParentRef) MarshalJSON() ([]byte, error) {
	if p.root {
		return []byte("0"), nil
	}
	return []byte(`"` + p.id.Hex() + `"`), nil
}

// MarshalBSONValue stores the root sentinel as int32 0 and a folder parent as
// an ObjectID, so the root listing filter stays an exact-match query.
func (p ParentRef) MarshalBSONValue() (bsontype.Type, []byte, error) {
	if p.root {
		return bson.MarshalValue(int32(0))
	}
	return bson.MarshalValue(p.id)
}

// UnmarshalBSONValue accepts an ObjectID or any numeric zero.
func (p *ParentRef) UnmarshalBSONValue(t bsontype.Type, data []byte) error {
	rv := bson.RawValue{Type: t, Value: data}
	if oid, ok := rv.ObjectIDOK(); ok {
		*p = FolderParent(oid)
		return nil
	}
	if i, ok := rv.Int32OK(); ok && i == 0 {
		*p = RootParent()
		return nil
	}
	if i, ok := rv.Int64OK(); ok && i == 0 {
		*p = RootParent()
		return nil
	}
	return fmt.Errorf("parent_id: unexpected BSON value of type %s", t)
}
