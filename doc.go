// Package assets provides an on-disk asset registry for GoGPU applications.
//
// # Overview
//
// assets watches a root directory, discovers image files, decodes and
// normalizes them into GPU-ready RGBA8 texture payloads, and indexes the
// results for lookup by hierarchical path and by stable 64-bit identifier.
// On demand it uploads a decoded payload to a GPU image through an
// upload.Uploader and memoizes the handle, so each cache key is uploaded at
// most once.
//
// # Quick Start
//
//	import (
//	    "github.com/gogpu/assets"
//	    uploadwgpu "github.com/gogpu/assets/upload/wgpu"
//	)
//
//	queue := uploadwgpu.NewQueue()
//	if err := queue.Init(); err != nil {
//	    log.Fatal(err)
//	}
//	defer queue.Close()
//
//	reg, err := assets.New("content", "/home/me/game/content", queue)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if err := reg.Rescan(); err != nil {
//	    log.Fatal(err)
//	}
//
//	img, ok := reg.GetTexture("textures/hero.png")
//
// # Architecture
//
// The module is organized into:
//   - Public API: AssetRegistry, Asset, FileTreeNode, Walker
//   - texture: metadata descriptors and decoded payloads
//   - upload: the GPU uploader contract; upload/wgpu implements it on
//     gogpu/wgpu
//   - internal: ingestion processors and the handle cache
//
// # Ownership
//
// An AssetRegistry is owned by a single caller. Rescan and GetTexture mutate
// registry state and must not run concurrently with any other method; the
// registry performs no internal locking.
package assets

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"
)
