// Package flow is the control core of the client: a state machine that turns
// UI intents and store change events into navigation, re-renders and gateway
// calls. Views never mutate stores and stores never call views; everything
// meets here through the bus.
package flow

import (
	"context"
	"strings"

	"github.com/weblarek/larek/internal/domain"
	"github.com/weblarek/larek/internal/event"
	"github.com/weblarek/larek/internal/store"
)

// State is the single active view. At most one modal is in focus at a time;
// an in-flight submission is a flag inside StateContacts, not a state.
type State string

const (
	StateNone         State = "none"
	StatePreview      State = "preview"
	StateCart         State = "cart"
	StateDelivery     State = "delivery"
	StateContacts     State = "contacts"
	StateConfirmation State = "confirmation"
)

// MsgOrderFailed is the retryable failure text for a rejected submission.
const MsgOrderFailed = "Не удалось оформить заказ. Попробуйте позже."

// OrderGateway submits an order. Satisfied by *api.Client.
type OrderGateway interface {
	CreateOrder(ctx context.Context, order domain.OrderRequest) (domain.OrderConfirmation, error)
}

// AsyncRunner moves a blocking task off the event loop and applies the
// continuation it returns back on it. The default runs everything inline,
// which is what tests want; the composition root swaps in one backed by the
// program's message queue.
type AsyncRunner func(task func() func())

// Orchestrator wires the stores, the bus and the renderer together and owns
// the navigation/validation policy.
type Orchestrator struct {
	ctx     context.Context
	bus     *event.Bus
	catalog *store.Catalog
	cart    *store.Cart
	buyer   *store.Buyer
	gateway OrderGateway
	view    Renderer
	async   AsyncRunner

	state      State
	submitting bool
	loadFailed bool
}

func New(ctx context.Context, bus *event.Bus, catalog *store.Catalog, cart *store.Cart, buyer *store.Buyer, gateway OrderGateway, view Renderer) *Orchestrator {
	return &Orchestrator{
		ctx:     ctx,
		bus:     bus,
		catalog: catalog,
		cart:    cart,
		buyer:   buyer,
		gateway: gateway,
		view:    view,
		async:   func(task func() func()) { task()() },
		state:   StateNone,
	}
}

// SetAsync replaces the submission runner. Call before Attach.
func (o *Orchestrator) SetAsync(r AsyncRunner) { o.async = r }

// State returns the active view.
func (o *Orchestrator) State() State { return o.state }

// Submitting reports whether an order is in flight.
func (o *Orchestrator) Submitting() bool { return o.submitting }

// Attach subscribes the orchestrator to every store and UI intent topic.
func (o *Orchestrator) Attach() {
	event.On(o.bus, store.TopicCatalogChanged, o.onCatalogChanged)
	event.On(o.bus, store.TopicProductSelect, o.onProductSelect)
	event.On(o.bus, store.TopicCartChanged, o.onCartChanged)
	event.On(o.bus, store.TopicBuyerChanged, o.onBuyerChanged)

	event.On(o.bus, TopicProductOpen, o.onProductOpen)
	event.On(o.bus, TopicProductAdd, o.onProductAdd)
	event.On(o.bus, TopicProductRemove, o.onProductRemove)
	event.On(o.bus, TopicBasketRemove, o.onBasketRemove)
	event.On(o.bus, TopicCartOpen, o.onCartOpen)
	event.On(o.bus, TopicCheckout, o.onCheckout)
	event.On(o.bus, TopicPaymentChange, o.onPaymentChange)
	event.On(o.bus, TopicFormChange, o.onFormChange)
	event.On(o.bus, TopicCheckoutNext, o.onCheckoutNext)
	event.On(o.bus, TopicCheckoutSubmit, o.onCheckoutSubmit)
	event.On(o.bus, TopicModalClose, o.onModalClose)
}

// CatalogLoaded seeds the catalog after the startup load. failed marks a load
// that fell through every source; it travels next to the list rather than
// being inferred from emptiness.
func (o *Orchestrator) CatalogLoaded(items []domain.Product, failed bool) {
	o.loadFailed = failed
	o.catalog.SetItems(items)
	o.view.RenderHeader(o.cart.ItemCount())
}

// --- store change handlers -------------------------------------------------

func (o *Orchestrator) onCatalogChanged(items []domain.Product) error {
	o.view.RenderCatalog(items, o.membership(items), o.loadFailed)
	return nil
}

func (o *Orchestrator) onProductSelect(sel store.ProductSelection) error {
	if sel.Product != nil {
		o.state = StatePreview
		o.view.RenderPreview(*sel.Product, o.cart.HasItem(sel.Product.ID))
		return nil
	}
	if o.state == StatePreview {
		o.closeModal()
	}
	return nil
}

func (o *Orchestrator) onCartChanged(cs store.CartState) error {
	o.view.RenderHeader(len(cs.Items))
	switch o.state {
	case StateCart:
		o.view.RenderCart(cs.Items, cs.Total)
	case StatePreview:
		// keep the open preview's buy/remove affordance current instead of
		// closing it
		if p := o.catalog.Preview(); p != nil {
			o.view.RenderPreview(*p, o.cart.HasItem(p.ID))
		}
	}
	// catalog cards flag membership too
	o.view.RenderCatalog(o.catalog.Items(), o.membership(o.catalog.Items()), o.loadFailed)
	return nil
}

func (o *Orchestrator) onBuyerChanged(domain.BuyerData) error {
	switch o.state {
	case StateDelivery:
		o.renderDelivery("")
	case StateContacts:
		o.renderContacts("")
	}
	return nil
}

// --- UI intent handlers ----------------------------------------------------

func (o *Orchestrator) onProductOpen(e ProductOpen) error {
	if p, ok := o.catalog.Product(e.ID); ok {
		o.catalog.SetPreview(&p)
	}
	return nil
}

func (o *Orchestrator) onProductAdd(e ProductAdd) error {
	if p, ok := o.findProduct(e.ID); ok {
		o.cart.AddItem(p)
		o.closeModal()
	}
	return nil
}

func (o *Orchestrator) onProductRemove(e ProductRemove) error {
	if _, ok := o.findProduct(e.ID); ok {
		o.cart.RemoveItem(e.ID)
		o.closeModal()
	}
	return nil
}

func (o *Orchestrator) onBasketRemove(e BasketRemove) error {
	o.cart.RemoveItem(e.ID)
	return nil
}

func (o *Orchestrator) onCartOpen(CartOpen) error {
	o.state = StateCart
	o.view.RenderCart(o.cart.Items(), o.cart.TotalPrice())
	return nil
}

func (o *Orchestrator) onCheckout(Checkout) error {
	o.state = StateDelivery
	o.renderDelivery("")
	return nil
}

func (o *Orchestrator) onPaymentChange(e PaymentChange) error {
	o.buyer.SetPayment(e.Payment)
	return nil
}

func (o *Orchestrator) onFormChange(e FormChange) error {
	switch e.Field {
	case FieldAddress:
		o.buyer.SetAddress(e.Value)
	case FieldEmail:
		o.buyer.SetEmail(e.Value)
	case FieldPhone:
		o.buyer.SetPhone(e.Value)
	}
	return nil
}

func (o *Orchestrator) onCheckoutNext(CheckoutNext) error {
	if !o.buyer.ValidAddress() {
		o.renderDelivery(store.ErrTextAddress)
		return nil
	}
	o.state = StateContacts
	o.renderContacts("")
	return nil
}

func (o *Orchestrator) onCheckoutSubmit(CheckoutSubmit) error {
	if o.submitting {
		return nil
	}
	res := o.buyer.Validate()
	if res.Address != "" {
		// address slipped through the delivery step; send the buyer back
		o.state = StateDelivery
		o.renderDelivery(res.Address)
		return nil
	}
	if !res.IsValid {
		o.renderContacts("")
		return nil
	}

	buyer := o.buyer.Data()
	req := domain.OrderRequest{
		Payment: buyer.Payment,
		Email:   buyer.Email,
		Phone:   buyer.Phone,
		Address: buyer.Address,
		Total:   o.cart.TotalPrice(),
		Items:   o.itemIDs(),
	}

	o.submitting = true
	o.renderContacts("")
	o.async(func() func() {
		conf, err := o.gateway.CreateOrder(o.ctx, req)
		return func() { o.completeOrder(conf, err) }
	})
	return nil
}

func (o *Orchestrator) onModalClose(ModalClose) error {
	o.closeModal()
	return nil
}

// --- internals -------------------------------------------------------------

func (o *Orchestrator) completeOrder(conf domain.OrderConfirmation, err error) {
	o.submitting = false
	if err != nil {
		// keep cart and draft so the buyer can retry without re-entering data
		o.renderContacts(MsgOrderFailed)
		return
	}
	o.state = StateConfirmation
	o.view.RenderSuccess(conf.Total)
	o.cart.Clear()
	o.buyer.Clear()
}

func (o *Orchestrator) closeModal() {
	o.state = StateNone
	o.view.CloseModal()
	if o.catalog.Preview() != nil {
		o.catalog.SetPreview(nil)
	}
}

func (o *Orchestrator) renderDelivery(errText string) {
	buyer := o.buyer.Data()
	valid := o.buyer.ValidAddress()
	if errText == "" && !valid {
		errText = store.ErrTextAddress
	}
	o.view.RenderDelivery(DeliveryView{
		Payment: buyer.Payment,
		Address: buyer.Address,
		Valid:   valid,
		Error:   errText,
	})
}

// renderContacts redraws the contacts step. Address errors never show here:
// the address was already validated on the delivery step. override replaces
// the field errors (used for the gateway retry message).
func (o *Orchestrator) renderContacts(override string) {
	buyer := o.buyer.Data()
	res := o.buyer.Validate()
	var parts []string
	for _, e := range []string{res.Email, res.Phone} {
		if e != "" {
			parts = append(parts, e)
		}
	}
	errText := strings.Join(parts, ". ")
	if override != "" {
		errText = override
	}
	o.view.RenderContacts(ContactsView{
		Email:      buyer.Email,
		Phone:      buyer.Phone,
		Valid:      len(parts) == 0,
		Error:      errText,
		Submitting: o.submitting,
	})
}

// findProduct resolves an id against the catalog first, then the cart, so
// items added before a catalog refresh stay removable.
func (o *Orchestrator) findProduct(id string) (domain.Product, bool) {
	if p, ok := o.catalog.Product(id); ok {
		return p, true
	}
	for _, p := range o.cart.Items() {
		if p.ID == id {
			return p, true
		}
	}
	return domain.Product{}, false
}

func (o *Orchestrator) membership(items []domain.Product) map[string]bool {
	m := make(map[string]bool, len(items))
	for _, p := range items {
		if o.cart.HasItem(p.ID) {
			m[p.ID] = true
		}
	}
	return m
}

func (o *Orchestrator) itemIDs() []string {
	items := o.cart.Items()
	ids := make([]string, len(items))
	for i, p := range items {
		ids[i] = p.ID
	}
	return ids
}
