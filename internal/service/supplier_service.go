package service

import (
	"go-erp-dashboard/internal/model"
	"go-erp-dashboard/internal/store"
	"go-erp-dashboard/internal/ws"
	"go-erp-dashboard/pkg/validator"
)

type SupplierService interface {
	List() []model.Supplier
	Create(req *model.Supplier) (*model.Supplier, error)
	Update(id string, req *model.Supplier) (*model.Supplier, error)
	Delete(id string) error
}

type supplierService struct {
	store *store.Store
	hub   *ws.Hub
}

func NewSupplierService(st *store.Store, hub *ws.Hub) SupplierService {
	return &supplierService{store: st, hub: hub}
}

func (s *supplierService) List() []model.Supplier {
	return s.store.Load().Suppliers
}

func (s *supplierService) Create(req *model.Supplier) (*model.Supplier, error) {
	supplier := model.Supplier{
		ID:        model.NewID(),
		Name:      req.Name,
		Email:     req.Email,
		Phone:     req.Phone,
		Address:   req.Address,
		Category:  req.Category,
		CreatedAt: model.Timestamp(),
	}
	if errs := validator.ValidateStruct(&supplier); len(errs) > 0 {
		return nil, validationError(errs)
	}

	_, err := s.store.Update(func(doc model.Document) (model.Document, error) {
		doc.Suppliers = append(doc.Suppliers, supplier)
		return doc, nil
	})
	if err != nil {
		return nil, err
	}

	go s.hub.Notify("suppliers", "created", supplier.ID)
	return &supplier, nil
}

func (s *supplierService) Update(id string, req *model.Supplier) (*model.Supplier, error) {
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		return nil, validationError(errs)
	}

	var updated model.Supplier
	_, err := s.store.Update(func(doc model.Document) (model.Document, error) {
		sp := doc.FindSupplier(id)
		if sp == nil {
			return doc, ErrNotFound
		}
		sp.Name = req.Name
		sp.Email = req.Email
		sp.Phone = req.Phone
		sp.Address = req.Address
		sp.Category = req.Category
		updated = *sp
		return doc, nil
	})
	if err != nil {
		return nil, err
	}

	go s.hub.Notify("suppliers", "updated", id)
	return &updated, nil
}

func (s *supplierService) Delete(id string) error {
	_, err := s.store.Update(func(doc model.Document) (model.Document, error) {
		kept := doc.Suppliers[:0:0]
		for _, sp := range doc.Suppliers {
			if sp.ID != id {
				kept = append(kept, sp)
			}
		}
		if len(kept) == len(doc.Suppliers) {
			return doc, ErrNotFound
		}
		doc.Suppliers = kept
		return doc, nil
	})
	if err != nil {
		return err
	}

	go s.hub.Notify("suppliers", "deleted", id)
	return nil
}
