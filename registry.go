package assets

import (
	"fmt"
	"math/rand/v2"
	"os"
	"strings"

	"github.com/gogpu/assets/internal/cache"
	"github.com/gogpu/assets/internal/ingest"
	"github.com/gogpu/assets/texture"
	"github.com/gogpu/assets/upload"
)

// AssetRegistry indexes the image files under a base directory and serves
// them as decoded assets and uploaded GPU images.
//
// A registry is owned by one caller at a time. Rescan and GetTexture mutate
// internal state and require exclusive access; the read-only lookups may be
// shared. The registry has no internal goroutines.
type AssetRegistry struct {
	baseRelative string
	baseAbsolute string

	queue upload.Uploader

	fileTree       *FileTreeNode
	cachedTextures *cache.Cache[string, upload.Image]
	uidToPath      map[uint64]string

	walker Walker
	newUID func() uint64
}

// New creates a registry rooted at baseRelative. baseAbsolute is the same
// directory as an absolute path; GetAsset strips it from incoming paths so
// callers may pass either spelling. queue performs GPU uploads for
// GetTexture.
//
// New fails with ErrPathDoesNotExist when baseRelative does not resolve on
// the filesystem. The returned registry is empty; call Rescan to populate it.
func New(baseRelative, baseAbsolute string, queue upload.Uploader, opts ...Option) (*AssetRegistry, error) {
	if _, err := os.Stat(baseRelative); err != nil {
		return nil, fmt.Errorf("%w: %q: %w", ErrPathDoesNotExist, baseRelative, err)
	}

	o := registryOptions{
		walker: dirWalker{},
		newUID: rand.Uint64,
	}
	for _, opt := range opts {
		opt(&o)
	}

	return &AssetRegistry{
		baseRelative:   baseRelative,
		baseAbsolute:   baseAbsolute,
		queue:          queue,
		fileTree:       newDirNode(),
		cachedTextures: cache.New[string, upload.Image](),
		uidToPath:      make(map[uint64]string),
		walker:         o.walker,
		newUID:         o.newUID,
	}, nil
}

// Rescan walks the base directory and reconciles the file tree with the
// filesystem. New ingestible files are decoded and inserted; existing
// entries whose modification time is unchanged are kept as-is; changed
// files are re-ingested under the same directory entry with a fresh UID.
// Files that cannot be ingested are skipped. Entries for files that have
// disappeared from disk are retained.
//
// Walker errors abort the rescan and are returned wrapped in ErrWalk.
func (r *AssetRegistry) Rescan() error {
	var ingested, unchanged, skipped int

	// Entry paths are rooted at the walk root; its segments are not part
	// of the tree.
	rootDepth := len(splitPath(r.baseRelative))

	err := r.walker.Walk(r.baseRelative, func(e WalkEntry) error {
		if e.Dir {
			return nil
		}

		segments := splitPath(e.Path)
		if len(segments) < rootDepth {
			return nil
		}
		segments = segments[rootDepth:]
		if len(segments) == 0 {
			return nil
		}
		filename := segments[len(segments)-1]

		dir := r.fileTree
		for _, seg := range segments[:len(segments)-1] {
			child := dir.children[seg]
			if child == nil {
				child = newDirNode()
				dir.children[seg] = child
			}
			if !child.IsDir() {
				// A file and a directory cannot share a name; the walker
				// yielded a path that contradicts the tree.
				panic(fmt.Sprintf("assets: %q names a file where a directory is required", seg))
			}
			dir = child
		}

		if existing := dir.children[filename]; existing != nil && !existing.IsDir() {
			if existing.asset.Timestamp.Equal(e.ModTime) {
				Logger().Debug("rescan: unchanged", "path", e.Path)
				unchanged++
				return nil
			}
		}

		data, ok := ingest.Process(e.Path, filename)
		if !ok {
			Logger().Debug("rescan: skipped", "path", e.Path)
			skipped++
			return nil
		}

		a := &Asset{
			Path:      filename,
			Timestamp: e.ModTime,
			UID:       r.nextUID(),
			Data:      TextureData(data),
		}
		dir.children[filename] = newFileNode(a)

		// A superseded asset's mapping is not removed; uid_to_path may
		// accumulate ids for replaced entries.
		r.uidToPath[a.UID] = strings.Join(segments, "/")

		Logger().Debug("rescan: ingested", "path", e.Path, "uid", a.UID)
		ingested++
		return nil
	})
	if err != nil {
		return fmt.Errorf("%w: %w", ErrWalk, err)
	}

	Logger().Info("rescan complete",
		"root", r.baseRelative,
		"ingested", ingested,
		"unchanged", unchanged,
		"skipped", skipped)
	return nil
}

// GetAsset resolves a slash-separated path to an asset. The base absolute
// path prefix is stripped from the input, so both relative and absolute
// spellings resolve to the same asset. Returns (nil, false) when the path
// does not name a file in the tree.
func (r *AssetRegistry) GetAsset(path string) (*Asset, bool) {
	path = strings.TrimPrefix(path, r.baseAbsolute)
	segments := splitPath(path)

	node := r.fileTree
	for i, seg := range segments {
		node = node.Child(seg)
		if node == nil {
			return nil, false
		}
		if !node.IsDir() {
			if i == len(segments)-1 {
				return node.asset, true
			}
			// A file cannot appear mid-path.
			return nil, false
		}
	}
	return nil, false
}

// GetAssetsInDirectory resolves a slash-separated path to a directory and
// returns its file children. Directory children are omitted. An empty
// directory yields an empty slice and true; a path that misses or names a
// file yields (nil, false).
func (r *AssetRegistry) GetAssetsInDirectory(path string) ([]*Asset, bool) {
	node := r.fileTree
	for _, seg := range splitPath(path) {
		node = node.Child(seg)
		if node == nil || !node.IsDir() {
			return nil, false
		}
	}

	out := make([]*Asset, 0, node.Len())
	for _, child := range node.children {
		if !child.IsDir() {
			out = append(out, child.asset)
		}
	}
	return out, true
}

// GetPathFromID returns the slash-joined tree path recorded for uid at
// ingestion time, relative to the base directory.
func (r *AssetRegistry) GetPathFromID(uid uint64) (string, bool) {
	path, ok := r.uidToPath[uid]
	return path, ok
}

// GetTexture resolves path to a texture asset and returns its uploaded GPU
// image, uploading on first use. The handle is memoized under the
// caller-supplied path string, so the uploader runs at most once per exact
// path spelling. The upload's completion token is awaited before the handle
// is cached or returned.
//
// Returns (nil, false) when the path does not resolve to a texture asset or
// the upload fails. A texture asset whose format is not RGBA8-sRGB is a
// precondition violation: ingestion only produces RGBA8-sRGB, so this
// panics.
func (r *AssetRegistry) GetTexture(path string) (upload.Image, bool) {
	a, ok := r.GetAsset(path)
	if !ok {
		return nil, false
	}

	if img, ok := r.cachedTextures.Get(path); ok {
		return img, true
	}

	tex, ok := a.Data.Texture()
	if !ok {
		return nil, false
	}

	meta := tex.Meta
	if meta.Format != texture.FormatRGBA8UnormSRGB {
		panic(fmt.Sprintf("assets: upload of format %s not supported", meta.Format))
	}

	width, height := meta.Dimensions()
	img, done, err := r.queue.Upload(tex.Pixels, width, height, meta.Format)
	if err != nil {
		Logger().Warn("texture upload failed", "path", path, "error", err)
		return nil, false
	}
	done.Wait()

	r.cachedTextures.Set(path, img)
	return img, true
}

// nextUID draws asset identifiers from the configured source, re-rolling
// zero values and ids already present in uidToPath.
func (r *AssetRegistry) nextUID() uint64 {
	for {
		uid := r.newUID()
		if uid == 0 {
			continue
		}
		if _, taken := r.uidToPath[uid]; taken {
			continue
		}
		return uid
	}
}

// splitPath canonicalizes separators to '/' and splits, discarding empty
// segments.
func splitPath(p string) []string {
	p = strings.ReplaceAll(p, `\`, "/")
	parts := strings.Split(p, "/")
	segments := make([]string, 0, len(parts))
	for _, s := range parts {
		if s != "" {
			segments = append(segments, s)
		}
	}
	return segments
}
