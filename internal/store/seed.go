package store

import (
	"time"

	"go-erp-dashboard/internal/model"
)

// SeedDocument returns the fixed default dataset Load falls back to when
// nothing is persisted. Timestamps are stamped at call time; everything else
// is constant.
func SeedDocument() model.Document {
	now := time.Now().UTC()
	createdAt := now.Format(time.RFC3339)
	dueDate := now.AddDate(0, 0, 30).Format(time.RFC3339)

	return model.Document{
		Clients: []model.Client{
			{
				ID:        "1",
				Name:      "Acme Corp",
				Email:     "contact@acme.com",
				Phone:     "+33 1 23 45 67 89",
				Company:   "Acme Corporation",
				CreatedAt: createdAt,
			},
			{
				ID:        "2",
				Name:      "Tech Solutions",
				Email:     "info@tech.com",
				Phone:     "+33 2 34 56 78 90",
				Company:   "Tech Solutions SA",
				CreatedAt: createdAt,
			},
		},
		Products: []model.Product{
			{ID: "1", Name: "Produit A", CostPrice: 50, SalePrice: 120, Quantity: 150, Margin: 58.33},
			{ID: "2", Name: "Produit B", CostPrice: 30, SalePrice: 85, Quantity: 200, Margin: 64.71},
			{ID: "3", Name: "Service Premium", CostPrice: 100, SalePrice: 250, Quantity: 50, Margin: 60},
		},
		Orders: []model.Order{
			{
				ID:          "1",
				OrderNumber: "CMD-001",
				ClientID:    "1",
				Items: []model.OrderItem{
					{ProductID: "1", Quantity: 5, UnitPrice: 120, TotalPrice: 600, Margin: 350},
					{ProductID: "2", Quantity: 3, UnitPrice: 85, TotalPrice: 255, Margin: 165},
				},
				TotalAmount:  855,
				MarginAmount: 515,
				Status:       model.OrderConfirmed,
				CreatedAt:    createdAt,
			},
		},
		Invoices: []model.Invoice{
			{
				ID:            "1",
				InvoiceNumber: "FAC-001",
				OrderID:       "1",
				ClientID:      "1",
				TotalAmount:   855,
				MarginAmount:  515,
				Status:        model.InvoiceSent,
				CreatedAt:     createdAt,
				DueDate:       dueDate,
			},
		},
		Suppliers: []model.Supplier{
			{
				ID:        "1",
				Name:      "Supplier Premium",
				Email:     "supplier@premium.com",
				Phone:     "+33 3 45 67 89 01",
				Category:  "Fournitures",
				CreatedAt: createdAt,
			},
		},
	}
}
