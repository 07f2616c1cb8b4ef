package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"mime"
	"path"
	"time"

	gcs "cloud.google.com/go/storage"
)

const gcsTimeout = 50 * time.Second

// GCSStorage keeps media in a Google Cloud Storage bucket. Credentials come
// from the environment (GOOGLE_APPLICATION_CREDENTIALS or workload identity).
type GCSStorage struct {
	client *gcs.Client
	bucket string
}

func NewGCSStorage(ctx context.Context, bucket string) (*GCSStorage, error) {
	client, err := gcs.NewClient(ctx)
	if err != nil {
		return nil, fmt.Errorf("create gcs client: %w", err)
	}
	return &GCSStorage{client: client, bucket: bucket}, nil
}

func (s *GCSStorage) Save(ctx context.Context, name string, r io.Reader) error {
	ctx, cancel := context.WithTimeout(ctx, gcsTimeout)
	defer cancel()

	wc := s.client.Bucket(s.bucket).Object(name).NewWriter(ctx)
	wc.ContentType = mime.TypeByExtension(path.Ext(name))
	if _, err := io.Copy(wc, r); err != nil {
		wc.Close()
		return fmt.Errorf("io.Copy: %w", err)
	}
	if err := wc.Close(); err != nil {
		return fmt.Errorf("Writer.Close: %w", err)
	}
	return nil
}

func (s *GCSStorage) Delete(ctx context.Context, name string) error {
	ctx, cancel := context.WithTimeout(ctx, gcsTimeout)
	defer cancel()

	err := s.client.Bucket(s.bucket).Object(name).Delete(ctx)
	if err != nil && !errors.Is(err, gcs.ErrObjectNotExist) {
		return err
	}
	return nil
}

func (s *GCSStorage) URL(name string) string {
	return fmt.Sprintf("https://storage.googleapis.com/%s/%s", s.bucket, name)
}

func (s *GCSStorage) Close() error {
	return s.client.Close()
}
