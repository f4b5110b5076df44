package model

// Document is the single root object the store persists under one key.
// The five collections keep insertion order; insertion order is display order.
type Document struct {
	Clients   []Client   `json:"clients"`
	Products  []Product  `json:"products"`
	Orders    []Order    `json:"orders"`
	Invoices  []Invoice  `json:"invoices"`
	Suppliers []Supplier `json:"suppliers"`
}

// Normalize replaces nil collections with empty slices so a document decoded
// from an older or partial payload still carries all five collections.
func (d *Document) Normalize() {
	if d.Clients == nil {
		d.Clients = []Client{}
	}
	if d.Products == nil {
		d.Products = []Product{}
	}
	if d.Orders == nil {
		d.Orders = []Order{}
	}
	if d.Invoices == nil {
		d.Invoices = []Invoice{}
	}
	if d.Suppliers == nil {
		d.Suppliers = []Supplier{}
	}
}

// FindClient returns the client with the given id, or nil.
func (d *Document) FindClient(id string) *Client {
	for i := range d.Clients {
		if d.Clients[i].ID == id {
			return &d.Clients[i]
		}
	}
	return nil
}

// FindProduct returns the product with the given id, or nil.
func (d *Document) FindProduct(id string) *Product {
	for i := range d.Products {
		if d.Products[i].ID == id {
			return &d.Products[i]
		}
	}
	return nil
}

// FindOrder returns the order with the given id, or nil.
func (d *Document) FindOrder(id string) *Order {
	for i := range d.Orders {
		if d.Orders[i].ID == id {
			return &d.Orders[i]
		}
	}
	return nil
}

// FindInvoice returns the invoice with the given id, or nil.
func (d *Document) FindInvoice(id string) *Invoice {
	for i := range d.Invoices {
		if d.Invoices[i].ID == id {
			return &d.Invoices[i]
		}
	}
	return nil
}

// FindSupplier returns the supplier with the given id, or nil.
func (d *Document) FindSupplier(id string) *Supplier {
	for i := range d.Suppliers {
		if d.Suppliers[i].ID == id {
			return &d.Suppliers[i]
		}
	}
	return nil
}
