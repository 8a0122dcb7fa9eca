package store

import (
	"github.com/weblarek/larek/internal/domain"
	"github.com/weblarek/larek/internal/event"
)

// CartState is the basket:changed payload: a snapshot of the cart plus the
// recomputed total.
type CartState struct {
	Items []domain.Product
	Total int
}

// Cart owns the set of products added to the cart. Membership is keyed by
// product id: no duplicates, no quantities. The store accepts nil-price
// products (they change the count, never the total); refusing to sell them
// is the buy button's job.
type Cart struct {
	bus   *event.Bus
	items []domain.Product
}

func NewCart(bus *event.Bus) *Cart {
	return &Cart{bus: bus}
}

// AddItem appends the product unless its id is already present. Adding a
// member id is a no-op and emits nothing.
func (c *Cart) AddItem(p domain.Product) {
	if c.HasItem(p.ID) {
		return
	}
	c.items = append(c.items, p)
	c.emitChange()
}

// RemoveItem removes the product with the given id. Removing an absent id is
// a silent no-op: no mutation, no emission.
func (c *Cart) RemoveItem(id string) {
	for i, p := range c.items {
		if p.ID == id {
			c.items = append(c.items[:i:i], c.items[i+1:]...)
			c.emitChange()
			return
		}
	}
}

// Clear empties the cart and emits a change.
func (c *Cart) Clear() {
	c.items = nil
	c.emitChange()
}

// Items returns a snapshot of the cart in insertion order.
func (c *Cart) Items() []domain.Product {
	return append([]domain.Product(nil), c.items...)
}

// TotalPrice recomputes the sum of non-nil prices. O(n) on a cart bounded by
// the catalog size.
func (c *Cart) TotalPrice() int {
	total := 0
	for _, p := range c.items {
		total += p.PriceValue()
	}
	return total
}

// ItemCount returns the number of distinct products in the cart.
func (c *Cart) ItemCount() int { return len(c.items) }

// HasItem reports cart membership by product id.
func (c *Cart) HasItem(id string) bool {
	for _, p := range c.items {
		if p.ID == id {
			return true
		}
	}
	return false
}

func (c *Cart) emitChange() {
	_ = c.bus.Emit(TopicCartChanged, CartState{Items: c.Items(), Total: c.TotalPrice()})
}
