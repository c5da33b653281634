// Package ingest turns raw image files into normalized texture payloads.
//
// Processors are selected by file extension. Only PNG is implemented; the
// jpg, tga and dds extensions are recognized but reserved, and files with
// any other extension are not assets. A file that cannot be ingested is
// skipped, never an error: rescans must survive arbitrary junk in the asset
// root.
package ingest

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/gogpu/assets/texture"
)

// Diagnostics receives human-readable notes about files that were skipped
// for reasons worth surfacing (currently: unsupported PNG color types).
// Defaults to stderr.
var Diagnostics io.Writer = os.Stderr

// Process decodes the file at path into a texture payload.
//
// It returns (payload, true) on success and (nil, false) when the file is
// not an ingestible asset: unrecognized or reserved extension, unreadable
// file, or unsupported color type.
func Process(path, name string) (*texture.AssetData, bool) {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(name), "."))
	switch ext {
	case "png":
		return processPNG(path, name)
	case "jpg", "tga", "dds":
		// Recognized but reserved; processors land with their decoders.
		return nil, false
	default:
		return nil, false
	}
}
