package storage

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"go.uber.org/zap"
)

func newTestBucket(t *testing.T) *DiskBucket {
	t.Helper()
	b, err := NewDiskBucket(t.TempDir(), "imagens", "http://localhost:8080/storage/", zap.NewNop())
	if err != nil {
		t.Fatalf("NewDiskBucket: %v", err)
	}
	return b
}

func TestNormalizeExt(t *testing.T) {
	tests := []struct {
		name string
		uri  string
		ext  string
		ct   string
	}{
		{"plain jpg", "file:///tmp/foto.jpg", "jpg", "image/jpeg"},
		{"uppercase with query", "https://cdn.example.com/a/b/pic.JPG?token=abc", "jpg", "image/jpeg"},
		{"png", "/data/user/0/cache/img.png", "png", "image/png"},
		{"webp query", "photo.webp?w=200&h=200", "webp", "image/webp"},
		{"gif", "anim.GIF", "gif", "image/gif"},
		{"unknown falls back", "document.pdf", "jpg", "image/jpeg"},
		{"no extension", "noextension", "jpg", "image/jpeg"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ext := NormalizeExt(tt.uri)
			if ext != tt.ext {
				t.Fatalf("NormalizeExt(%q) = %q, want %q", tt.uri, ext, tt.ext)
			}
			if ct := ContentTypeFor(ext); ct != tt.ct {
				t.Fatalf("ContentTypeFor(%q) = %q, want %q", ext, ct, tt.ct)
			}
		})
	}
}

func TestObjectName(t *testing.T) {
	now := time.UnixMilli(1700000000123)
	got := ObjectName("user-1", now, "jpg")
	want := "user-1/1700000000123.jpg"
	if got != want {
		t.Fatalf("ObjectName = %q, want %q", got, want)
	}
}

func TestPutAndPublicURL(t *testing.T) {
	b := newTestBucket(t)
	ctx := context.Background()

	if err := b.Put(ctx, "u1/1.jpg", []byte("abc"), "image/jpeg", true); err != nil {
		t.Fatalf("Put: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(b.Dir(), "u1", "1.jpg"))
	if err != nil {
		t.Fatalf("read stored object: %v", err)
	}
	if string(data) != "abc" {
		t.Fatalf("stored object = %q, want %q", data, "abc")
	}

	url := b.PublicURL("u1/1.jpg")
	want := "http://localhost:8080/storage/imagens/u1/1.jpg"
	if url != want {
		t.Fatalf("PublicURL = %q, want %q", url, want)
	}
}

func TestPutUpsertSemantics(t *testing.T) {
	b := newTestBucket(t)
	ctx := context.Background()

	if err := b.Put(ctx, "u1/1.jpg", []byte("first"), "image/jpeg", false); err != nil {
		t.Fatalf("first Put: %v", err)
	}

	// same name without upsert must fail
	if err := b.Put(ctx, "u1/1.jpg", []byte("second"), "image/jpeg", false); err == nil {
		t.Fatal("Put without upsert over existing object should fail")
	}

	// upsert overwrites
	if err := b.Put(ctx, "u1/1.jpg", []byte("second"), "image/jpeg", true); err != nil {
		t.Fatalf("upsert Put: %v", err)
	}
	data, _ := os.ReadFile(filepath.Join(b.Dir(), "u1", "1.jpg"))
	if string(data) != "second" {
		t.Fatalf("object after upsert = %q, want %q", data, "second")
	}
}

func TestPutRejectsTraversal(t *testing.T) {
	b := newTestBucket(t)
	if err := b.Put(context.Background(), "../escape.jpg", []byte("x"), "image/jpeg", true); err == nil {
		t.Fatal("Put with path traversal should fail")
	}
}
