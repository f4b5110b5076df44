package store

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestFileBackendRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "erp-data.json")
	backend, err := NewFileBackend(path)
	if err != nil {
		t.Fatalf("new backend: %v", err)
	}

	if _, ok, err := backend.Get(); ok || err != nil {
		t.Fatalf("expected no stored document, ok=%v err=%v", ok, err)
	}

	s := New(backend)
	doc := s.Load()
	if err := s.Save(doc); err != nil {
		t.Fatalf("save: %v", err)
	}

	// Reopen: a fresh store over the same file sees the same document.
	backend2, err := NewFileBackend(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	got := New(backend2).Load()
	if !reflect.DeepEqual(got, doc) {
		t.Fatalf("reopened document differs")
	}
}

func TestFileBackendDeleteIsIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "erp-data.json")
	backend, err := NewFileBackend(path)
	if err != nil {
		t.Fatalf("new backend: %v", err)
	}

	if err := backend.Delete(); err != nil {
		t.Fatalf("delete on missing file: %v", err)
	}
	if err := backend.Put([]byte(`{}`)); err != nil {
		t.Fatalf("put: %v", err)
	}
	if err := backend.Delete(); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Fatalf("expected file removed, stat err=%v", err)
	}
}

func TestFileBackendLeavesNoTempFile(t *testing.T) {
	dir := t.TempDir()
	backend, err := NewFileBackend(filepath.Join(dir, "erp-data.json"))
	if err != nil {
		t.Fatalf("new backend: %v", err)
	}
	if err := backend.Put([]byte(`{"clients":[]}`)); err != nil {
		t.Fatalf("put: %v", err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("readdir: %v", err)
	}
	if len(entries) != 1 || entries[0].Name() != "erp-data.json" {
		t.Fatalf("expected only the data file, got %v", entries)
	}
}
