package uploads

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/gosec/site-backend/internal/config"
	"github.com/google/uuid"
)

// MinIOStore keeps uploads in an S3-compatible bucket under
// "<resource>/<token><ext>" keys. Serving still goes through the
// backend (the public URL shape is identical to the disk backend).
type MinIOStore struct {
	client *minio.Client
	bucket string
}

// NewMinIOStore creates the client and ensures the bucket exists.
func NewMinIOStore(cfg *config.MinIOConfig) (*MinIOStore, error) {
	if cfg == nil || cfg.Endpoint == "" {
		return nil, fmt.Errorf("minio config missing")
	}
	mc, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("minio new: %w", err)
	}
	s := &MinIOStore{client: mc, bucket: cfg.Bucket}
	// ensure bucket exists (idempotent)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := mc.MakeBucket(ctx, s.bucket, minio.MakeBucketOptions{}); err != nil {
		exist, xerr := mc.BucketExists(ctx, s.bucket)
		if xerr != nil || !exist {
			return nil, fmt.Errorf("minio bucket ensure: %w", err)
		}
	}
	return s, nil
}

func (s *MinIOStore) Save(ctx context.Context, resource, originalFilename string, r io.Reader, size int64) (string, string, error) {
	if !ValidExtension(originalFilename) {
		return "", "", ErrBadExtension
	}
	filename := uuid.NewString() + Ext(originalFilename)
	key := resource + "/" + filename
	_, err := s.client.PutObject(ctx, s.bucket, key, r, size, minio.PutObjectOptions{
		ContentType: ContentTypeFor(filename),
	})
	if err != nil {
		return "", "", fmt.Errorf("minio put: %w", err)
	}
	return filename, URLPrefix + resource + "/" + filename, nil
}

func (s *MinIOStore) Open(ctx context.Context, resource, filename string) (io.ReadCloser, int64, error) {
	key := resource + "/" + filename
	obj, err := s.client.GetObject(ctx, s.bucket, key, minio.GetObjectOptions{})
	if err != nil {
		return nil, 0, err
	}
	// stat to verify the object exists and learn its size
	st, err := obj.Stat()
	if err != nil {
		obj.Close()
		if minio.ToErrorResponse(err).Code == "NoSuchKey" {
			return nil, 0, ErrNotFound
		}
		return nil, 0, err
	}
	return obj, st.Size, nil
}

func (s *MinIOStore) Remove(ctx context.Context, url string) error {
	resource, filename, ok := splitURL(url)
	if !ok {
		return nil
	}
	return s.client.RemoveObject(ctx, s.bucket, resource+"/"+filename, minio.RemoveObjectOptions{})
}
