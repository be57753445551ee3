package storage

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"promptstudio/internal/domain"
)

func TestFileStoreWriteRead(t *testing.T) {
	store, err := NewFileStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileStore: %v", err)
	}
	ctx := context.Background()
	key, err := store.Write(ctx, "/batches//abc.zip", []byte("zip"))
	if err != nil {
		t.Fatalf("Write: %v", err)
	}
	if key != "batches/abc.zip" {
		t.Fatalf("key = %q, want %q", key, "batches/abc.zip")
	}
	got, err := store.Read(ctx, key)
	if err != nil || string(got) != "zip" {
		t.Fatalf("Read = %q, %v", got, err)
	}
	if _, err := os.Stat(filepath.Join(store.BasePath(), "batches", "abc.zip.tmp")); !os.IsNotExist(err) {
		t.Fatalf("temporary file left behind: %v", err)
	}
}

func TestFileStoreReadMissing(t *testing.T) {
	store, _ := NewFileStore(t.TempDir())
	if _, err := store.Read(context.Background(), "batches/none.zip"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("Read(missing) error = %v, want ErrNotFound", err)
	}
}

func TestSanitizeKey(t *testing.T) {
	tests := map[string]string{
		"a/b.zip":       "a/b.zip",
		"./a/./b.zip":   "a/b.zip",
		`a\b.zip`:       "a/b.zip",
		"/abs/file.zip": "abs/file.zip",
		"a/../b.zip":    "b.zip",
	}
	for in, want := range tests {
		got, err := sanitizeKey(in)
		if err != nil || got != want {
			t.Fatalf("sanitizeKey(%q) = %q, %v; want %q", in, got, err, want)
		}
	}
	for _, bad := range []string{"", "  ", "..", "../etc/passwd", "a/../../b"} {
		if _, err := sanitizeKey(bad); !errors.Is(err, domain.ErrInvalidInput) {
			t.Fatalf("sanitizeKey(%q) error = %v, want ErrInvalidInput", bad, err)
		}
	}
}
