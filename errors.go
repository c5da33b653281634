package assets

import "errors"

// Registry errors.
var (
	// ErrPathDoesNotExist is returned by New when the relative base path
	// does not resolve on the filesystem.
	ErrPathDoesNotExist = errors.New("assets: path does not exist")

	// ErrWalk wraps errors surfaced by the directory walker during Rescan.
	ErrWalk = errors.New("assets: directory walk failed")

	// ErrThumbnailSize is returned by GenerateThumbnails for a non-positive
	// maximum dimension.
	ErrThumbnailSize = errors.New("assets: thumbnail size must be positive")
)
