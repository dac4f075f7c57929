package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"go.uber.org/zap"
)

// Bucket is binary object storage with public URL resolution
type Bucket interface {
	Put(ctx context.Context, name string, data []byte, contentType string, upsert bool) error
	PublicURL(name string) string
}

// DiskBucket keeps objects as plain files under root/<bucket>/ and
// resolves public URLs against a configured base
type DiskBucket struct {
	dir     string
	name    string
	baseURL string
	log     *zap.Logger
}

func NewDiskBucket(root, name, baseURL string, log *zap.Logger) (*DiskBucket, error) {
	dir := filepath.Join(root, name)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("create bucket dir: %w", err)
	}

	return &DiskBucket{
		dir:     dir,
		name:    name,
		baseURL: strings.TrimRight(baseURL, "/"),
		log:     log.With(zap.String("bucket", name)),
	}, nil
}

// Dir returns the on-disk directory, used to serve the bucket read-only
// over HTTP.
func (b *DiskBucket) Dir() string {
	return b.dir
}

func (b *DiskBucket) Put(ctx context.Context, name string, data []byte, contentType string, upsert bool) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	clean := filepath.ToSlash(filepath.Clean(name))
	if clean == "." || strings.HasPrefix(clean, "..") || strings.HasPrefix(clean, "/") {
		return fmt.Errorf("invalid object name: %s", name)
	}

	path := filepath.Join(b.dir, filepath.FromSlash(clean))

	if !upsert {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("object already exists: %s", clean)
		}
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create object dir: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		b.log.Error("Failed to write object",
			zap.Error(err),
			zap.String("object", clean),
		)
		return fmt.Errorf("write object %s: %w", clean, err)
	}

	b.log.Debug("Object stored",
		zap.String("object", clean),
		zap.String("content_type", contentType),
		zap.Int("bytes", len(data)),
	)

	return nil
}

func (b *DiskBucket) PublicURL(name string) string {
	return b.baseURL + "/" + b.name + "/" + filepath.ToSlash(name)
}

var allowedExts = map[string]bool{
	"jpg":  true,
	"jpeg": true,
	"png":  true,
	"gif":  true,
	"webp": true,
}

// NormalizeExt derives the storage extension from an asset path or URI:
// query parameters stripped, lower-cased, anything outside the allowed
// set falls back to jpg.
func NormalizeExt(uri string) string {
	parts := strings.Split(uri, ".")
	ext := parts[len(parts)-1]
	ext = strings.SplitN(ext, "?", 2)[0]
	ext = strings.ToLower(ext)

	if !allowedExts[ext] {
		ext = "jpg"
	}
	return ext
}

// ContentTypeFor maps a normalized extension to its MIME type
func ContentTypeFor(ext string) string {
	if ext == "jpg" {
		ext = "jpeg"
	}
	return "image/" + ext
}

// ObjectName builds the per-user destination path <user_id>/<millis>.<ext>.
// Two uploads in the same millisecond by the same user collide; accepted.
func ObjectName(userID string, now time.Time, ext string) string {
	return fmt.Sprintf("%s/%d.%s", userID, now.UnixMilli(), ext)
}
