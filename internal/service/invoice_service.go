package service

import (
	"go-erp-dashboard/internal/metrics"
	"go-erp-dashboard/internal/model"
	"go-erp-dashboard/internal/store"
	"go-erp-dashboard/internal/ws"
	"go-erp-dashboard/pkg/validator"
)

// InvoiceView decorates an invoice with the resolved client name.
type InvoiceView struct {
	model.Invoice
	ClientName string `json:"clientName"`
}

type InvoiceService interface {
	List() []InvoiceView
	Create(req *model.Invoice) (*model.Invoice, error)
	Update(id string, req *model.Invoice) (*model.Invoice, error)
	Delete(id string) error
}

type invoiceService struct {
	store *store.Store
	hub   *ws.Hub
}

func NewInvoiceService(st *store.Store, hub *ws.Hub) InvoiceService {
	return &invoiceService{store: st, hub: hub}
}

func (s *invoiceService) List() []InvoiceView {
	doc := s.store.Load()
	views := make([]InvoiceView, 0, len(doc.Invoices))
	for _, inv := range doc.Invoices {
		views = append(views, InvoiceView{
			Invoice:    inv,
			ClientName: metrics.ResolveClientName(doc, inv.ClientID),
		})
	}
	return views
}

func (s *invoiceService) Create(req *model.Invoice) (*model.Invoice, error) {
	invoice := model.Invoice{
		ID:            model.NewID(),
		InvoiceNumber: req.InvoiceNumber,
		OrderID:       req.OrderID,
		ClientID:      req.ClientID,
		TotalAmount:   req.TotalAmount,
		MarginAmount:  req.MarginAmount,
		Status:        req.Status,
		CreatedAt:     model.Timestamp(),
		DueDate:       req.DueDate,
	}
	if invoice.Status == "" {
		invoice.Status = model.InvoiceDraft
	}
	if invoice.DueDate == "" {
		invoice.DueDate = model.Timestamp()
	}
	if errs := validator.ValidateStruct(&invoice); len(errs) > 0 {
		return nil, validationError(errs)
	}

	_, err := s.store.Update(func(doc model.Document) (model.Document, error) {
		doc.Invoices = append(doc.Invoices, invoice)
		return doc, nil
	})
	if err != nil {
		return nil, err
	}

	go s.hub.Notify("invoices", "created", invoice.ID)
	return &invoice, nil
}

func (s *invoiceService) Update(id string, req *model.Invoice) (*model.Invoice, error) {
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		return nil, validationError(errs)
	}

	var updated model.Invoice
	_, err := s.store.Update(func(doc model.Document) (model.Document, error) {
		inv := doc.FindInvoice(id)
		if inv == nil {
			return doc, ErrNotFound
		}
		inv.InvoiceNumber = req.InvoiceNumber
		inv.ClientID = req.ClientID
		inv.Status = req.Status
		if req.OrderID != "" {
			inv.OrderID = req.OrderID
		}
		if req.TotalAmount != 0 {
			inv.TotalAmount = req.TotalAmount
		}
		if req.MarginAmount != 0 {
			inv.MarginAmount = req.MarginAmount
		}
		if req.DueDate != "" {
			inv.DueDate = req.DueDate
		}
		updated = *inv
		return doc, nil
	})
	if err != nil {
		return nil, err
	}

	go s.hub.Notify("invoices", "updated", id)
	return &updated, nil
}

func (s *invoiceService) Delete(id string) error {
	_, err := s.store.Update(func(doc model.Document) (model.Document, error) {
		kept := doc.Invoices[:0:0]
		for _, inv := range doc.Invoices {
			if inv.ID != id {
				kept = append(kept, inv)
			}
		}
		if len(kept) == len(doc.Invoices) {
			return doc, ErrNotFound
		}
		doc.Invoices = kept
		return doc, nil
	})
	if err != nil {
		return err
	}

	go s.hub.Notify("invoices", "deleted", id)
	return nil
}
