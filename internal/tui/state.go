package tui

import (
	"github.com/weblarek/larek/internal/domain"
	"github.com/weblarek/larek/internal/flow"
)

// modalKind mirrors the orchestrator's active view for drawing purposes.
type modalKind string

const (
	modalNone     modalKind = ""
	modalPreview  modalKind = "preview"
	modalCart     modalKind = "cart"
	modalDelivery modalKind = "delivery"
	modalContacts modalKind = "contacts"
	modalSuccess  modalKind = "success"
)

// viewState is the render target the orchestrator writes through
// flow.Renderer. The App reads it in View; a shared pointer keeps the writes
// visible across bubbletea's value-copied model.
type viewState struct {
	headerCount  int
	catalogItems []domain.Product
	inCart       map[string]bool
	loadFailed   bool
	catalogDirty bool

	modal modalKind

	previewProduct domain.Product
	previewInCart  bool

	cartItems []domain.Product
	cartTotal int

	delivery flow.DeliveryView
	contacts flow.ContactsView

	successTotal int
}

var _ flow.Renderer = (*viewState)(nil)

func (v *viewState) RenderHeader(count int) {
	v.headerCount = count
}

func (v *viewState) RenderCatalog(items []domain.Product, inCart map[string]bool, loadFailed bool) {
	v.catalogItems = items
	v.inCart = inCart
	v.loadFailed = loadFailed
	v.catalogDirty = true
}

func (v *viewState) RenderPreview(p domain.Product, inCart bool) {
	v.modal = modalPreview
	v.previewProduct = p
	v.previewInCart = inCart
}

func (v *viewState) RenderCart(items []domain.Product, total int) {
	v.modal = modalCart
	v.cartItems = items
	v.cartTotal = total
}

func (v *viewState) RenderDelivery(d flow.DeliveryView) {
	v.modal = modalDelivery
	v.delivery = d
}

func (v *viewState) RenderContacts(c flow.ContactsView) {
	v.modal = modalContacts
	v.contacts = c
}

func (v *viewState) RenderSuccess(total int) {
	v.modal = modalSuccess
	v.successTotal = total
}

func (v *viewState) CloseModal() {
	v.modal = modalNone
}
