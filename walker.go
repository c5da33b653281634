package assets

import (
	"io/fs"
	"path/filepath"
	"time"
)

// WalkEntry describes one filesystem entry yielded by a Walker.
type WalkEntry struct {
	// Path is the entry's path as reported by the walker, rooted at the
	// walk root (so the first segment is the root itself). Either path
	// separator is accepted; the registry canonicalizes to '/'.
	Path string

	// Name is the terminal file or directory name.
	Name string

	// Dir reports whether the entry is a directory.
	Dir bool

	// ModTime is the entry's last-modified time.
	ModTime time.Time
}

// Walker produces filesystem entries for Rescan. Implementations visit the
// root recursively and call fn for every entry, directories included; a
// non-nil error from fn aborts the walk. The visit order across siblings is
// unspecified.
//
// The default walker reads the local filesystem; supply a custom Walker via
// WithWalker to scan virtual or in-memory sources.
type Walker interface {
	Walk(root string, fn func(WalkEntry) error) error
}

// dirWalker is the default Walker over the local filesystem.
type dirWalker struct{}

func (dirWalker) Walk(root string, fn func(WalkEntry) error) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		info, err := d.Info()
		if err != nil {
			// No readable modification time; fatal for the rescan.
			return err
		}
		return fn(WalkEntry{
			Path:    path,
			Name:    d.Name(),
			Dir:     d.IsDir(),
			ModTime: info.ModTime(),
		})
	})
}
