package events

import "time"

// CatalogEvent is a domain event emitted after a successful catalog mutation
type CatalogEvent interface {
	EventType() string
	OccurredAt() time.Time
}

type base struct {
	At time.Time `json:"occurred_at"`
}

func (b base) OccurredAt() time.Time { return b.At }

func newBase() base { return base{At: time.Now().UTC()} }

// ProductCreated is emitted after a product and its list projection are written
type ProductCreated struct {
	base
	ProductID  string  `json:"product_id"`
	BrandID    string  `json:"brand_id"`
	CategoryID string  `json:"category_id"`
	Price      float64 `json:"price"`
}

// NewProductCreated builds a ProductCreated event
func NewProductCreated(productID, brandID, categoryID string, price float64) ProductCreated {
	return ProductCreated{base: newBase(), ProductID: productID, BrandID: brandID, CategoryID: categoryID, Price: price}
}

// EventType implements CatalogEvent
func (ProductCreated) EventType() string { return "catalog.product.created" }

// ProductDeleted is emitted after both physical product items are removed
type ProductDeleted struct {
	base
	ProductID string `json:"product_id"`
}

// NewProductDeleted builds a ProductDeleted event
func NewProductDeleted(productID string) ProductDeleted {
	return ProductDeleted{base: newBase(), ProductID: productID}
}

// EventType implements CatalogEvent
func (ProductDeleted) EventType() string { return "catalog.product.deleted" }

// StockChanged is emitted after a stock update or adjustment
type StockChanged struct {
	base
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

// NewStockChanged builds a StockChanged event
func NewStockChanged(productID string, quantity int) StockChanged {
	return StockChanged{base: newBase(), ProductID: productID, Quantity: quantity}
}

// EventType implements CatalogEvent
func (StockChanged) EventType() string { return "catalog.product.stock_changed" }
