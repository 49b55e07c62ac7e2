package uploads

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// DiskStore keeps uploads on the local filesystem, one subdirectory per
// resource type, filenames are random-token-plus-original-extension.
type DiskStore struct {
	baseDir string
}

func NewDiskStore(baseDir string) (*DiskStore, error) {
	if err := os.MkdirAll(baseDir, 0o755); err != nil {
		return nil, fmt.Errorf("create uploads dir: %w", err)
	}
	return &DiskStore{baseDir: baseDir}, nil
}

func (s *DiskStore) Save(ctx context.Context, resource, originalFilename string, r io.Reader, size int64) (string, string, error) {
	if !ValidExtension(originalFilename) {
		return "", "", ErrBadExtension
	}
	dir := filepath.Join(s.baseDir, resource)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", "", fmt.Errorf("create upload dir: %w", err)
	}
	filename := uuid.NewString() + Ext(originalFilename)
	dst := filepath.Join(dir, filename)

	f, err := os.Create(dst)
	if err != nil {
		return "", "", fmt.Errorf("create upload file: %w", err)
	}
	if _, err := io.Copy(f, r); err != nil {
		f.Close()
		os.Remove(dst)
		return "", "", fmt.Errorf("write upload file: %w", err)
	}
	if err := f.Close(); err != nil {
		os.Remove(dst)
		return "", "", fmt.Errorf("close upload file: %w", err)
	}
	return filename, URLPrefix + resource + "/" + filename, nil
}

func (s *DiskStore) Open(ctx context.Context, resource, filename string) (io.ReadCloser, int64, error) {
	p := filepath.Join(s.baseDir, resource, filepath.Base(filename))
	fi, err := os.Stat(p)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, 0, ErrNotFound
		}
		return nil, 0, err
	}
	f, err := os.Open(p)
	if err != nil {
		return nil, 0, err
	}
	return f, fi.Size(), nil
}

func (s *DiskStore) Remove(ctx context.Context, url string) error {
	resource, filename, ok := splitURL(url)
	if !ok {
		return nil
	}
	err := os.Remove(filepath.Join(s.baseDir, resource, filepath.Base(filename)))
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
