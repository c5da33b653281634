package assets

import (
	"testing"

	"github.com/gogpu/assets/texture"
)

func TestAssetKindString(t *testing.T) {
	if got := KindTexture.String(); got != "Texture" {
		t.Errorf("KindTexture.String() = %q, want %q", got, "Texture")
	}
	if got := AssetKind(0).String(); got != "Unknown" {
		t.Errorf("AssetKind(0).String() = %q, want %q", got, "Unknown")
	}
}

func TestAssetDataTexture(t *testing.T) {
	payload := texture.NewAssetData(texture.DefaultMetadata(), []byte{1, 2, 3, 4})
	d := TextureData(payload)

	if d.Kind() != KindTexture {
		t.Errorf("Kind() = %v, want KindTexture", d.Kind())
	}
	got, ok := d.Texture()
	if !ok || got != payload {
		t.Errorf("Texture() = (%p, %v), want (%p, true)", got, ok, payload)
	}

	var zero AssetData
	if _, ok := zero.Texture(); ok {
		t.Error("zero AssetData.Texture() returned ok")
	}
}

func TestFileTreeNode(t *testing.T) {
	root := newDirNode()
	if !root.IsDir() {
		t.Fatal("newDirNode().IsDir() = false")
	}
	if root.Len() != 0 {
		t.Errorf("empty dir Len() = %d, want 0", root.Len())
	}

	a := &Asset{Path: "a.png", UID: 7}
	file := newFileNode(a)
	if file.IsDir() {
		t.Error("file node IsDir() = true")
	}
	if file.Asset() != a {
		t.Error("file node Asset() did not return the owned asset")
	}

	root.children["a.png"] = file
	if root.Child("a.png") != file {
		t.Error("Child did not resolve an inserted file")
	}
	if root.Child("missing") != nil {
		t.Error("Child resolved a missing segment")
	}
	// Files have no children.
	if file.Child("x") != nil {
		t.Error("Child on a file node returned non-nil")
	}
}
