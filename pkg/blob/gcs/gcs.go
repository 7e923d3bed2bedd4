// Package gcs implements blob.Store on Google Cloud Storage.
package gcs

import (
	"context"
	"fmt"
	"io"
	"path"
	"strings"

	"directorybolt/pkg/blob"

	"cloud.google.com/go/storage"
)

// Store writes objects to one bucket, optionally below a prefix.
type Store struct {
	client *storage.Client
	bucket string
	prefix string
}

var _ blob.Store = (*Store)(nil)

// New creates a Store. The client stays owned by the caller.
func New(client *storage.Client, bucket, prefix string) (*Store, error) {
	if client == nil {
		return nil, fmt.Errorf("storage client is required")
	}
	if bucket == "" {
		return nil, fmt.Errorf("bucket name is required")
	}

	return &Store{client: client, bucket: bucket, prefix: strings.Trim(prefix, "/")}, nil
}

// PutObject uploads the object and returns a gs:// URI.
func (s *Store) PutObject(ctx context.Context, name, contentType string, r io.Reader) (string, error) {
	if strings.TrimSpace(name) == "" {
		return "", fmt.Errorf("path is required")
	}
	if s.prefix != "" {
		name = path.Join(s.prefix, name)
	}

	w := s.client.Bucket(s.bucket).Object(name).NewWriter(ctx)
	if contentType != "" {
		w.ContentType = contentType
	}
	if _, err := io.Copy(w, r); err != nil {
		_ = w.Close()

		return "", fmt.Errorf("could not upload object: %w", err)
	}
	if err := w.Close(); err != nil {
		return "", fmt.Errorf("could not finish upload: %w", err)
	}

	return fmt.Sprintf("gs://%s/%s", s.bucket, name), nil
}
