package service

import (
	"go-erp-dashboard/internal/metrics"
	"go-erp-dashboard/internal/model"
	"go-erp-dashboard/internal/store"
	"go-erp-dashboard/internal/ws"
	"go-erp-dashboard/pkg/validator"
)

type ProductService interface {
	List() []model.Product
	LowStock() []model.Product
	Create(req *model.Product) (*model.Product, error)
	Update(id string, req *model.Product) (*model.Product, error)
	Delete(id string) error
}

type productService struct {
	store *store.Store
	hub   *ws.Hub
}

func NewProductService(st *store.Store, hub *ws.Hub) ProductService {
	return &productService{store: st, hub: hub}
}

func (s *productService) List() []model.Product {
	return s.store.Load().Products
}

func (s *productService) LowStock() []model.Product {
	return metrics.LowStockProducts(s.store.Load())
}

func (s *productService) Create(req *model.Product) (*model.Product, error) {
	product := model.Product{
		ID:        model.NewID(),
		Name:      req.Name,
		CostPrice: req.CostPrice,
		SalePrice: req.SalePrice,
		Quantity:  req.Quantity,
		Margin:    metrics.ProductMargin(req.CostPrice, req.SalePrice),
	}
	if errs := validator.ValidateStruct(&product); len(errs) > 0 {
		return nil, validationError(errs)
	}

	_, err := s.store.Update(func(doc model.Document) (model.Document, error) {
		doc.Products = append(doc.Products, product)
		return doc, nil
	})
	if err != nil {
		return nil, err
	}

	go s.hub.Notify("products", "created", product.ID)
	return &product, nil
}

// Update overwrites the editable fields and recomputes the stored margin from
// the new prices. Margin is never accepted from the caller.
func (s *productService) Update(id string, req *model.Product) (*model.Product, error) {
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		return nil, validationError(errs)
	}

	var updated model.Product
	_, err := s.store.Update(func(doc model.Document) (model.Document, error) {
		p := doc.FindProduct(id)
		if p == nil {
			return doc, ErrNotFound
		}
		p.Name = req.Name
		p.CostPrice = req.CostPrice
		p.SalePrice = req.SalePrice
		p.Quantity = req.Quantity
		p.Margin = metrics.ProductMargin(p.CostPrice, p.SalePrice)
		updated = *p
		return doc, nil
	})
	if err != nil {
		return nil, err
	}

	go s.hub.Notify("products", "updated", id)
	return &updated, nil
}

func (s *productService) Delete(id string) error {
	_, err := s.store.Update(func(doc model.Document) (model.Document, error) {
		kept := doc.Products[:0:0]
		for _, p := range doc.Products {
			if p.ID != id {
				kept = append(kept, p)
			}
		}
		if len(kept) == len(doc.Products) {
			return doc, ErrNotFound
		}
		doc.Products = kept
		return doc, nil
	})
	if err != nil {
		return err
	}

	go s.hub.Notify("products", "deleted", id)
	return nil
}
