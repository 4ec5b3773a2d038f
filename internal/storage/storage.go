// Package storage stores headshot images under the fixed "headshots"
// namespace and hands back publicly reachable URLs.
package storage

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	storage_go "github.com/supabase-community/storage-go"
)

// Namespace is the bucket/directory all headshots live under.
const Namespace = "headshots"

// Storage persists one uploaded image and returns its public URL.
type Storage interface {
	Store(ctx context.Context, filename string, data []byte, contentType string) (string, error)
}

// ObjectName builds a collision-avoided object name from an arbitrary
// client filename: upload timestamp plus a random suffix, keeping only the
// original extension.
func ObjectName(filename string) string {
	ext := strings.ToLower(filepath.Ext(filename))
	suffix := strings.SplitN(uuid.NewString(), "-", 2)[0]
	return fmt.Sprintf("%d-%s%s", time.Now().UnixNano(), suffix, ext)
}

// SupabaseStorage uploads headshots to a Supabase Storage bucket.
type SupabaseStorage struct {
	client *storage_go.Client
	bucket string
}

// NewSupabaseStorage builds a client against the project's storage endpoint.
func NewSupabaseStorage(projectURL, serviceKey, bucket string) *SupabaseStorage {
	endpoint := strings.TrimSuffix(projectURL, "/") + "/storage/v1"
	return &SupabaseStorage{
		client: storage_go.NewClient(endpoint, serviceKey, nil),
		bucket: bucket,
	}
}

func (s *SupabaseStorage) Store(ctx context.Context, filename string, data []byte, contentType string) (string, error) {
	name := ObjectName(filename)
	_, err := s.client.UploadFile(s.bucket, name, bytes.NewReader(data), storage_go.FileOptions{
		ContentType: &contentType,
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload headshot: %w", err)
	}
	return s.client.GetPublicUrl(s.bucket, name).SignedURL, nil
}

// LocalStorage writes headshots to disk, for development and tests. URLs are
// served from baseURL by the API's static file route.
type LocalStorage struct {
	dir     string
	baseURL string
}

// NewLocalStorage creates the headshot directory under dir.
func NewLocalStorage(dir, baseURL string) (*LocalStorage, error) {
	full := filepath.Join(dir, Namespace)
	if err := os.MkdirAll(full, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create storage directory: %w", err)
	}
	return &LocalStorage{dir: full, baseURL: strings.TrimSuffix(baseURL, "/")}, nil
}

func (s *LocalStorage) Store(ctx context.Context, filename string, data []byte, contentType string) (string, error) {
	name := ObjectName(filename)
	if err := os.WriteFile(filepath.Join(s.dir, name), data, 0o644); err != nil {
		return "", fmt.Errorf("failed to write headshot: %w", err)
	}
	return fmt.Sprintf("%s/%s/%s", s.baseURL, Namespace, name), nil
}

// Dir returns the directory local headshots are written to.
func (s *LocalStorage) Dir() string {
	return s.dir
}
