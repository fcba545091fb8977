package media

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"cloud.google.com/go/storage"
)

// GCSStore keeps pictures in a Google Cloud Storage bucket.
type GCSStore struct {
	cl         *storage.Client
	projectID  string
	bucketName string
	uploadPath string
}

// NewGCSStore uses application default credentials (GOOGLE_APPLICATION_CREDENTIALS).
func NewGCSStore(ctx context.Context, projectID, bucketName string) (*GCSStore, error) {
	client, err := storage.NewClient(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create storage client: %w", err)
	}

	return &GCSStore{
		cl:         client,
		projectID:  projectID,
		bucketName: bucketName,
		uploadPath: PictureDir + "/",
	}, nil
}

func (s *GCSStore) Save(ctx context.Context, name string, r io.Reader) error {
	ctx, cancel := context.WithTimeout(ctx, time.Second*50)
	defer cancel()

	wc := s.cl.Bucket(s.bucketName).Object(s.uploadPath + name).NewWriter(ctx)
	if _, err := io.Copy(wc, r); err != nil {
		_ = wc.Close()
		return fmt.Errorf("io.Copy: %w", err)
	}
	if err := wc.Close(); err != nil {
		return fmt.Errorf("Writer.Close: %w", err)
	}
	return nil
}

func (s *GCSStore) Delete(ctx context.Context, name string) error {
	ctx, cancel := context.WithTimeout(ctx, time.Second*10)
	defer cancel()

	err := s.cl.Bucket(s.bucketName).Object(s.uploadPath + name).Delete(ctx)
	if errors.Is(err, storage.ErrObjectNotExist) {
		return nil
	}
	return err
}

// URL is the public object URL; the bucket must allow public reads.
func (s *GCSStore) URL(name string) string {
	return fmt.Sprintf("https://storage.googleapis.com/%s/%s%s", s.bucketName, s.uploadPath, name)
}

func (s *GCSStore) Close() error {
	return s.cl.Close()
}
