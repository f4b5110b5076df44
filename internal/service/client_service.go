package service

import (
	"go-erp-dashboard/internal/model"
	"go-erp-dashboard/internal/store"
	"go-erp-dashboard/internal/ws"
	"go-erp-dashboard/pkg/validator"
)

type ClientService interface {
	List() []model.Client
	Create(req *model.Client) (*model.Client, error)
	Update(id string, req *model.Client) (*model.Client, error)
	Delete(id string) error
}

type clientService struct {
	store *store.Store
	hub   *ws.Hub
}

func NewClientService(st *store.Store, hub *ws.Hub) ClientService {
	return &clientService{store: st, hub: hub}
}

func (s *clientService) List() []model.Client {
	return s.store.Load().Clients
}

func (s *clientService) Create(req *model.Client) (*model.Client, error) {
	client := model.Client{
		ID:        model.NewID(),
		Name:      req.Name,
		Email:     req.Email,
		Phone:     req.Phone,
		Company:   req.Company,
		CreatedAt: model.Timestamp(),
	}
	if errs := validator.ValidateStruct(&client); len(errs) > 0 {
		return nil, validationError(errs)
	}

	_, err := s.store.Update(func(doc model.Document) (model.Document, error) {
		doc.Clients = append(doc.Clients, client)
		return doc, nil
	})
	if err != nil {
		return nil, err
	}

	go s.hub.Notify("clients", "created", client.ID)
	return &client, nil
}

func (s *clientService) Update(id string, req *model.Client) (*model.Client, error) {
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		return nil, validationError(errs)
	}

	var updated model.Client
	_, err := s.store.Update(func(doc model.Document) (model.Document, error) {
		c := doc.FindClient(id)
		if c == nil {
			return doc, ErrNotFound
		}
		c.Name = req.Name
		c.Email = req.Email
		c.Phone = req.Phone
		c.Company = req.Company
		updated = *c
		return doc, nil
	})
	if err != nil {
		return nil, err
	}

	go s.hub.Notify("clients", "updated", id)
	return &updated, nil
}

// Delete removes the client only. Orders and invoices keep their clientId;
// name resolution for them degrades to the unknown-client label.
func (s *clientService) Delete(id string) error {
	_, err := s.store.Update(func(doc model.Document) (model.Document, error) {
		kept := doc.Clients[:0:0]
		for _, c := range doc.Clients {
			if c.ID != id {
				kept = append(kept, c)
			}
		}
		if len(kept) == len(doc.Clients) {
			return doc, ErrNotFound
		}
		doc.Clients = kept
		return doc, nil
	})
	if err != nil {
		return err
	}

	go s.hub.Notify("clients", "deleted", id)
	return nil
}
