package service

import (
	"go-erp-dashboard/internal/model"
	"go-erp-dashboard/internal/store"
	"go-erp-dashboard/internal/ws"
)

// DataService exposes the whole document: a UI hydrates from Document once,
// then works module by module. Reset wipes the persisted copy and hands back
// the seed.
type DataService interface {
	Document() model.Document
	Reset() (model.Document, error)
}

type dataService struct {
	store *store.Store
	hub   *ws.Hub
}

func NewDataService(st *store.Store, hub *ws.Hub) DataService {
	return &dataService{store: st, hub: hub}
}

func (s *dataService) Document() model.Document {
	return s.store.Load()
}

func (s *dataService) Reset() (model.Document, error) {
	if err := s.store.Reset(); err != nil {
		return model.Document{}, err
	}
	go s.hub.Notify("all", "reset", "")
	return s.store.Load(), nil
}
