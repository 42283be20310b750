// Package compression wraps the codecs accepted for seed dataset files.
package compression

import (
	"path/filepath"
	"strings"
)

type Compressor interface {
	Compress(data []byte) ([]byte, error)
	Decompress(data []byte) ([]byte, error)
}

// ForPath picks a compressor from the file extension. ok is false for
// uncompressed files.
func ForPath(path string) (c Compressor, ok bool) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".zst", ".zstd":
		return ZstdCompressor{}, true
	case ".gz":
		return GzipCompressor{}, true
	default:
		return nil, false
	}
}

// TrimExt strips a compression extension, so "seed.json.zst" becomes "seed.json".
func TrimExt(path string) string {
	if _, ok := ForPath(path); ok {
		return strings.TrimSuffix(path, filepath.Ext(path))
	}
	return path
}
