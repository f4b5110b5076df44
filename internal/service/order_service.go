package service

import (
	"go-erp-dashboard/internal/metrics"
	"go-erp-dashboard/internal/model"
	"go-erp-dashboard/internal/store"
	"go-erp-dashboard/internal/ws"
	"go-erp-dashboard/pkg/validator"
)

// OrderView decorates an order with the display fields the list screens
// derive: resolved client name and margin percentage.
type OrderView struct {
	model.Order
	ClientName       string  `json:"clientName"`
	MarginPercentage float64 `json:"marginPercentage"`
}

type OrderService interface {
	List() []OrderView
	Create(req *model.Order) (*model.Order, error)
	Update(id string, req *model.Order) (*model.Order, error)
	Delete(id string) error
}

type orderService struct {
	store *store.Store
	hub   *ws.Hub
}

func NewOrderService(st *store.Store, hub *ws.Hub) OrderService {
	return &orderService{store: st, hub: hub}
}

func (s *orderService) List() []OrderView {
	doc := s.store.Load()
	views := make([]OrderView, 0, len(doc.Orders))
	for _, o := range doc.Orders {
		views = append(views, OrderView{
			Order:            o,
			ClientName:       metrics.ResolveClientName(doc, o.ClientID),
			MarginPercentage: metrics.OrderMarginPercentage(o),
		})
	}
	return views
}

// itemTotals recomputes each line's totalPrice and returns the order sums.
// Line margin is a caller-supplied absolute amount and is only summed.
func itemTotals(items []model.OrderItem) (total, margin float64) {
	for i := range items {
		items[i].TotalPrice = float64(items[i].Quantity) * items[i].UnitPrice
		total += items[i].TotalPrice
		margin += items[i].Margin
	}
	return total, margin
}

func (s *orderService) Create(req *model.Order) (*model.Order, error) {
	order := model.Order{
		ID:           model.NewID(),
		OrderNumber:  req.OrderNumber,
		ClientID:     req.ClientID,
		Items:        req.Items,
		TotalAmount:  req.TotalAmount,
		MarginAmount: req.MarginAmount,
		Status:       req.Status,
		CreatedAt:    model.Timestamp(),
	}
	if order.Status == "" {
		order.Status = model.OrderDraft
	}
	if order.Items == nil {
		order.Items = []model.OrderItem{}
	}
	if len(order.Items) > 0 {
		order.TotalAmount, order.MarginAmount = itemTotals(order.Items)
	}
	if errs := validator.ValidateStruct(&order); len(errs) > 0 {
		return nil, validationError(errs)
	}
	// ClientID may dangle; the store does not enforce referential integrity
	// and display degrades to the unknown-client label.

	_, err := s.store.Update(func(doc model.Document) (model.Document, error) {
		doc.Orders = append(doc.Orders, order)
		return doc, nil
	})
	if err != nil {
		return nil, err
	}

	go s.hub.Notify("orders", "created", order.ID)
	return &order, nil
}

func (s *orderService) Update(id string, req *model.Order) (*model.Order, error) {
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		return nil, validationError(errs)
	}

	var updated model.Order
	_, err := s.store.Update(func(doc model.Document) (model.Document, error) {
		o := doc.FindOrder(id)
		if o == nil {
			return doc, ErrNotFound
		}
		o.OrderNumber = req.OrderNumber
		o.ClientID = req.ClientID
		o.Status = req.Status
		if req.Items != nil {
			o.Items = req.Items
			o.TotalAmount, o.MarginAmount = itemTotals(o.Items)
		} else {
			// Amount edits without items, matching the original form: zero
			// means "keep the previous value".
			if req.TotalAmount != 0 {
				o.TotalAmount = req.TotalAmount
			}
			if req.MarginAmount != 0 {
				o.MarginAmount = req.MarginAmount
			}
		}
		updated = *o
		return doc, nil
	})
	if err != nil {
		return nil, err
	}

	go s.hub.Notify("orders", "updated", id)
	return &updated, nil
}

func (s *orderService) Delete(id string) error {
	_, err := s.store.Update(func(doc model.Document) (model.Document, error) {
		kept := doc.Orders[:0:0]
		for _, o := range doc.Orders {
			if o.ID != id {
				kept = append(kept, o)
			}
		}
		if len(kept) == len(doc.Orders) {
			return doc, ErrNotFound
		}
		doc.Orders = kept
		return doc, nil
	})
	if err != nil {
		return err
	}

	go s.hub.Notify("orders", "deleted", id)
	return nil
}
