package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"go-erp-dashboard/internal/model"
)

// Key is the single storage key the whole document lives under.
const Key = "erp-data"

// ErrUnavailable wraps every backend write failure (quota, permissions,
// connection loss). The caller's in-memory document stays valid; nothing
// partial reaches storage.
var ErrUnavailable = errors.New("storage unavailable")

// Store is the sole owner of persistence for the ERP document. It is
// coarse-grained and last-writer-wins: every save overwrites the complete
// document, there is no merge, no versioning and no per-record write. Two
// overlapping edit sessions clobber each other; that is a documented
// limitation, not a bug.
type Store struct {
	mu      sync.Mutex
	backend Backend
}

func New(b Backend) *Store {
	return &Store{backend: b}
}

// Load returns the persisted document, or the seed document when nothing is
// persisted, the backend is unreachable, or the persisted payload does not
// parse. Load never fails and never writes the seed back; the default only
// reaches storage through an explicit Save.
func (s *Store) Load() model.Document {
	raw, ok, err := s.backend.Get()
	if err != nil || !ok {
		return SeedDocument()
	}
	var doc model.Document
	if err := json.Unmarshal(raw, &doc); err != nil {
		// Corrupted payload degrades to the defaults.
		return SeedDocument()
	}
	doc.Normalize()
	return doc
}

// Save serializes the full document and overwrites the persisted copy
// unconditionally. Subsequent Loads return exactly this document until the
// next Save or Reset.
func (s *Store) Save(doc model.Document) error {
	raw, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("encode document: %w", err)
	}
	if err := s.backend.Put(raw); err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return nil
}

// Reset removes the persisted copy; the next Load returns the seed again.
func (s *Store) Reset() error {
	if err := s.backend.Delete(); err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return nil
}

// Update codifies the one mutation convention every module follows: read the
// full document, modify one collection, write the full document back. The
// mutex keeps mutations sequential within this process; nothing coordinates
// two processes sharing a backend.
func (s *Store) Update(fn func(model.Document) (model.Document, error)) (model.Document, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := fn(s.Load())
	if err != nil {
		return model.Document{}, err
	}
	if err := s.Save(doc); err != nil {
		return model.Document{}, err
	}
	return doc, nil
}
