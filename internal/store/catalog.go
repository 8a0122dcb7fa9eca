// Package store holds the domain models that own mutable state: the product
// catalog, the cart and the buyer draft. Stores never touch views; every
// mutation ends in exactly one bus emission and views react to that.
package store

import (
	"github.com/weblarek/larek/internal/domain"
	"github.com/weblarek/larek/internal/event"
)

// Bus topics owned by the stores. Payload types are fixed per topic.
const (
	TopicCatalogChanged = "catalog:changed" // []domain.Product
	TopicProductSelect  = "product:select"  // ProductSelection
	TopicCartChanged    = "basket:changed"  // CartState
	TopicBuyerChanged   = "buyer:changed"   // domain.BuyerData
)

// ProductSelection is the product:select payload. Product is nil when the
// preview was cleared.
type ProductSelection struct {
	Product *domain.Product
}

// Catalog owns the product list and the product under detailed inspection.
type Catalog struct {
	bus     *event.Bus
	items   []domain.Product
	preview *domain.Product
}

func NewCatalog(bus *event.Bus) *Catalog {
	return &Catalog{bus: bus}
}

// SetItems replaces the full catalog and emits catalog:changed. An empty list
// is a valid state; whether emptiness means "load failed" is the
// orchestrator's call, carried separately from the list.
func (c *Catalog) SetItems(items []domain.Product) {
	c.items = append([]domain.Product(nil), items...)
	_ = c.bus.Emit(TopicCatalogChanged, c.Items())
}

// Items returns a snapshot of the catalog.
func (c *Catalog) Items() []domain.Product {
	return append([]domain.Product(nil), c.items...)
}

// Product looks up a product by id.
func (c *Catalog) Product(id string) (domain.Product, bool) {
	for _, p := range c.items {
		if p.ID == id {
			return p, true
		}
	}
	return domain.Product{}, false
}

// SetPreview sets or clears the product under detailed inspection and emits
// product:select with the product (or nil when clearing).
func (c *Catalog) SetPreview(p *domain.Product) {
	c.preview = p
	_ = c.bus.Emit(TopicProductSelect, ProductSelection{Product: p})
}

// Preview returns the previewed product, or nil.
func (c *Catalog) Preview() *domain.Product {
	return c.preview
}
