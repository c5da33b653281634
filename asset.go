package assets

import (
	"time"

	"github.com/gogpu/assets/texture"
)

// AssetKind identifies the payload variant carried by an AssetData.
type AssetKind uint8

const (
	// KindTexture is a decoded texture payload.
	KindTexture AssetKind = iota + 1
)

// String returns a human-readable name for the kind.
func (k AssetKind) String() string {
	switch k {
	case KindTexture:
		return "Texture"
	default:
		return "Unknown"
	}
}

// AssetData is a kind-tagged asset payload. The set of kinds is closed and
// small, so the payload is a tagged variant rather than an interface; new
// kinds are added as variants.
type AssetData struct {
	kind    AssetKind
	texture *texture.AssetData
}

// TextureData wraps a decoded texture payload as an AssetData.
func TextureData(d *texture.AssetData) AssetData {
	return AssetData{kind: KindTexture, texture: d}
}

// Kind returns the payload variant tag.
func (d AssetData) Kind() AssetKind { return d.kind }

// Texture returns the texture payload, or (nil, false) for other kinds.
func (d AssetData) Texture() (*texture.AssetData, bool) {
	if d.kind != KindTexture {
		return nil, false
	}
	return d.texture, true
}

// Asset is a decoded, in-memory representation of a source file.
type Asset struct {
	// Path is the terminal file name of the source file. The full relative
	// path is encoded positionally by the file tree.
	Path string

	// Timestamp is the source file's last-modified time at ingestion,
	// in local time.
	Timestamp time.Time

	// UID is a random 64-bit identifier assigned at ingestion. It is never
	// reused within a process lifetime; re-ingestion assigns a fresh UID.
	UID uint64

	// ThumbnailID is the UID of this asset's thumbnail asset, or 0 when
	// none has been generated.
	ThumbnailID uint64

	// Data is the kind-tagged payload.
	Data AssetData
}

// FileTreeNode is a node of the in-memory directory-shaped asset index.
// A node is either a directory (a mapping from path segment to child node)
// or a file (an owned asset record). Within a directory a segment name
// resolves to exactly one child; no name is both a directory and a file.
type FileTreeNode struct {
	children map[string]*FileTreeNode
	asset    *Asset
}

// newDirNode returns an empty directory node.
func newDirNode() *FileTreeNode {
	return &FileTreeNode{children: make(map[string]*FileTreeNode)}
}

// newFileNode returns a leaf node owning the given asset.
func newFileNode(a *Asset) *FileTreeNode {
	return &FileTreeNode{asset: a}
}

// IsDir reports whether the node is a directory.
func (n *FileTreeNode) IsDir() bool { return n.asset == nil }

// Asset returns the asset owned by a file node, or nil for directories.
func (n *FileTreeNode) Asset() *Asset { return n.asset }

// Child returns the named child of a directory node, or nil when the
// segment is absent or the node is a file.
func (n *FileTreeNode) Child(segment string) *FileTreeNode {
	if n.asset != nil {
		return nil
	}
	return n.children[segment]
}

// Len returns the number of children of a directory node.
func (n *FileTreeNode) Len() int { return len(n.children) }
