package store

import (
	"reflect"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	// Use a unique in-memory database per test to avoid cross-test collisions.
	dsn := "file:" + t.Name() + "?mode=memory&cache=shared"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	return db
}

func TestDBBackendRoundTrip(t *testing.T) {
	backend, err := NewDBBackend(setupTestDB(t))
	if err != nil {
		t.Fatalf("new backend: %v", err)
	}

	if _, ok, err := backend.Get(); ok || err != nil {
		t.Fatalf("expected empty table, ok=%v err=%v", ok, err)
	}

	s := New(backend)
	doc := s.Load()
	doc.Products[2].Quantity = 40
	if err := s.Save(doc); err != nil {
		t.Fatalf("save: %v", err)
	}

	got := s.Load()
	if !reflect.DeepEqual(got, doc) {
		t.Fatalf("round trip mismatch")
	}
}

func TestDBBackendOverwritesSingleRow(t *testing.T) {
	db := setupTestDB(t)
	backend, err := NewDBBackend(db)
	if err != nil {
		t.Fatalf("new backend: %v", err)
	}

	if err := backend.Put([]byte(`{"v":1}`)); err != nil {
		t.Fatalf("first put: %v", err)
	}
	if err := backend.Put([]byte(`{"v":2}`)); err != nil {
		t.Fatalf("second put: %v", err)
	}

	var count int64
	if err := db.Model(&documentRow{}).Count(&count).Error; err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected 1 row, got %d", count)
	}

	data, ok, err := backend.Get()
	if err != nil || !ok {
		t.Fatalf("get: ok=%v err=%v", ok, err)
	}
	if string(data) != `{"v":2}` {
		t.Fatalf("expected last write, got %s", data)
	}
}

func TestDBBackendReset(t *testing.T) {
	backend, err := NewDBBackend(setupTestDB(t))
	if err != nil {
		t.Fatalf("new backend: %v", err)
	}

	s := New(backend)
	if err := s.Save(s.Load()); err != nil {
		t.Fatalf("save: %v", err)
	}
	if err := s.Reset(); err != nil {
		t.Fatalf("reset: %v", err)
	}
	if _, ok, err := backend.Get(); ok || err != nil {
		t.Fatalf("expected row removed, ok=%v err=%v", ok, err)
	}
}
