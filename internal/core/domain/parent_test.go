package domain

import (
	"encoding/json"
	"testing"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestParentRef_JSON(t *testing.T) {
	out, err := json.Marshal(RootParent())
	if err != nil {
		t.Fatalf("marshal root: %v", err)
	}
	if string(out) != "0" {
		t.Fatalf("root must render as the literal 0, got %s", out)
	}

	id := primitive.NewObjectID()
	out, err = json.Marshal(FolderParent(id))
	if err != nil {
		t.Fatalf("marshal folder parent: %v", err)
	}
	if string(out) != `"`+id.Hex()+`"` {
		t.Fatalf("folder parent must render as its hex id, got %s", out)
	}
}

func TestParentRef_BSONRoundTrip(t *testing.T) {
	id := primitive.NewObjectID()
	for name, node := range map[string]FileNode{
		"root":   {UserID: primitive.NewObjectID(), Name: "a", Type: TypeFolder, ParentID: RootParent()},
		"folder": {UserID: primitive.NewObjectID(), Name: "b", Type: TypeFile, ParentID: FolderParent(id), LocalPath: "/tmp/x"},
	} {
		raw, err := bson.Marshal(node)
		if err != nil {
			t.Fatalf("%s: marshal: %v", name, err)
		}

		var decoded FileNode
		if err := bson.Unmarshal(raw, &decoded); err != nil {
			t.Fatalf("%s: unmarshal: %v", name, err)
		}
		if decoded.ParentID.IsRoot() != node.ParentID.IsRoot() {
			t.Fatalf("%s: root flag lost in round trip", name)
		}
		if !node.ParentID.IsRoot() && decoded.ParentID.FolderID() != id {
			t.Fatalf("%s: folder id lost in round trip", name)
		}
	}
}

// Legacy documents may carry the root as an int64 zero.
func TestParentRef_DecodesNumericZero(t *testing.T) {
	raw, err := bson.Marshal(bson.M{"parent_id": int64(0)})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var doc struct {
		ParentID ParentRef `bson:"parent_id"`
	}
	if err := bson.Unmarshal(raw, &doc); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !doc.ParentID.IsRoot() {
		t.Fatalf("int64 zero must decode as the root sentinel")
	}
}
