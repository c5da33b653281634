package assets

import (
	"fmt"
	"image"
	"path/filepath"
	"strings"

	xdraw "golang.org/x/image/draw"

	"github.com/gogpu/assets/texture"
)

// thumbnailSuffix marks thumbnail assets. Thumbnails live only in the tree,
// never on disk, and are themselves never thumbnailed.
const thumbnailSuffix = ".thumb.png"

// thumbJob is a pending thumbnail insertion. Jobs are collected during the
// tree walk and applied afterwards so the walk never mutates a directory it
// is iterating.
type thumbJob struct {
	dir    *FileTreeNode
	parent *Asset
	name   string
	path   string
	data   *texture.AssetData
}

// GenerateThumbnails creates a downscaled thumbnail asset next to every
// texture asset larger than maxDim in either dimension. The thumbnail is
// named after its source with a ".thumb.png" suffix, fits within
// maxDim x maxDim preserving aspect ratio, and its UID is recorded on the
// source asset's ThumbnailID.
//
// Assets at most maxDim in both dimensions, assets that already have a
// thumbnail, and thumbnails themselves are skipped. GenerateThumbnails may
// be called after every Rescan; it only fills in what is missing.
func (r *AssetRegistry) GenerateThumbnails(maxDim int) error {
	if maxDim <= 0 {
		return fmt.Errorf("%w: %d", ErrThumbnailSize, maxDim)
	}

	var jobs []thumbJob
	collectThumbJobs(r.fileTree, nil, maxDim, &jobs)

	for _, j := range jobs {
		a := &Asset{
			Path:      j.name,
			Timestamp: j.parent.Timestamp,
			UID:       r.nextUID(),
			Data:      TextureData(j.data),
		}
		j.dir.children[j.name] = newFileNode(a)
		r.uidToPath[a.UID] = j.path
		j.parent.ThumbnailID = a.UID
		Logger().Debug("thumbnail generated", "path", j.path, "uid", a.UID)
	}
	return nil
}

// collectThumbJobs walks the tree depth-first and records one job per asset
// that needs a thumbnail.
func collectThumbJobs(dir *FileTreeNode, segments []string, maxDim int, jobs *[]thumbJob) {
	for name, child := range dir.children {
		if child.IsDir() {
			collectThumbJobs(child, append(segments, name), maxDim, jobs)
			continue
		}

		a := child.asset
		if a.ThumbnailID != 0 || strings.HasSuffix(a.Path, thumbnailSuffix) {
			continue
		}
		tex, ok := a.Data.Texture()
		if !ok {
			continue
		}
		width, height := tex.Meta.Dimensions()
		if int(width) <= maxDim && int(height) <= maxDim {
			continue
		}

		thumbName := strings.TrimSuffix(name, filepath.Ext(name)) + thumbnailSuffix
		*jobs = append(*jobs, thumbJob{
			dir:    dir,
			parent: a,
			name:   thumbName,
			path:   strings.Join(append(append([]string{}, segments...), thumbName), "/"),
			data:   scaleTexture(tex, maxDim),
		})
	}
}

// scaleTexture downscales a texture payload to fit within maxDim x maxDim,
// preserving aspect ratio, with bilinear filtering.
func scaleTexture(tex *texture.AssetData, maxDim int) *texture.AssetData {
	width, height := tex.Meta.Dimensions()
	w, h := int(width), int(height)

	tw, th := maxDim, maxDim
	if w >= h {
		th = max(1, h*maxDim/w)
	} else {
		tw = max(1, w*maxDim/h)
	}

	src := &image.NRGBA{
		Pix:    tex.Pixels,
		Stride: w * 4,
		Rect:   image.Rect(0, 0, w, h),
	}
	dst := image.NewNRGBA(image.Rect(0, 0, tw, th))
	xdraw.ApproxBiLinear.Scale(dst, dst.Rect, src, src.Rect, xdraw.Src, nil)

	meta := tex.Meta
	meta.SourceSize = [2]uint32{uint32(tw), uint32(th)}
	meta.MaxIngameSize = meta.SourceSize
	meta.DataSize = [2]uint32{uint32(len(dst.Pix)), 0}

	return texture.NewAssetData(meta, dst.Pix)
}
