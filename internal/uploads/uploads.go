package uploads

import (
	"context"
	"errors"
	"io"
	"path"
	"strings"
)

// URLPrefix is the public path prefix for files managed by this
// subsystem. An image_url outside this prefix (an external host) is
// never touched by delete/replace operations.
const URLPrefix = "/api/uploads/"

var (
	ErrNotFound     = errors.New("file not found")
	ErrBadExtension = errors.New("file type not allowed. Allowed types: .jpg, .jpeg, .png, .gif, .webp")
)

// allowed image extensions, matched case-insensitively
var allowedExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".webp": true,
}

var contentTypes = map[string]string{
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".png":  "image/png",
	".gif":  "image/gif",
	".webp": "image/webp",
}

// Store abstracts the media storage backend (local disk or MinIO).
type Store interface {
	// Save writes the file under the resource's directory using a
	// generated collision-free name and returns that name plus the
	// public URL. A failed write must not leave a partial file behind.
	Save(ctx context.Context, resource, originalFilename string, r io.Reader, size int64) (filename, url string, err error)
	// Open returns a reader for a stored file, or ErrNotFound.
	Open(ctx context.Context, resource, filename string) (io.ReadCloser, int64, error)
	// Remove deletes the file referenced by a managed URL. URLs outside
	// URLPrefix and already-missing files are silent no-ops.
	Remove(ctx context.Context, url string) error
}

// Ext returns the lower-cased extension of a filename.
func Ext(filename string) string {
	return strings.ToLower(path.Ext(filename))
}

// ValidExtension reports whether the filename carries an allowed image extension.
func ValidExtension(filename string) bool {
	return allowedExtensions[Ext(filename)]
}

// ContentTypeFor maps a filename to its MIME type. Unrecognized
// extensions fall back to a generic binary type: extension validation
// happened at upload time, but serving must not assume files on disk
// are still well-formed.
func ContentTypeFor(filename string) string {
	if ct, ok := contentTypes[Ext(filename)]; ok {
		return ct
	}
	return "application/octet-stream"
}

// Owns reports whether a URL points at a file managed by this subsystem.
func Owns(url string) bool {
	return strings.HasPrefix(url, URLPrefix)
}

// splitURL extracts (resource, filename) from a managed URL, e.g.
// /api/uploads/leadership/abc.png -> ("leadership", "abc.png").
func splitURL(url string) (string, string, bool) {
	if !Owns(url) {
		return "", "", false
	}
	rest := strings.TrimPrefix(url, URLPrefix)
	parts := strings.Split(rest, "/")
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", "", false
	}
	return parts[0], parts[1], true
}
