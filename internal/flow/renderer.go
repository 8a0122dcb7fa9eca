package flow

import "github.com/weblarek/larek/internal/domain"

// DeliveryView is everything the delivery step needs to draw itself.
type DeliveryView struct {
	Payment domain.PaymentMethod
	Address string
	Valid   bool
	Error   string
}

// ContactsView is everything the contacts step needs to draw itself.
// Submitting means an order is in flight: the submit affordance must be
// disabled until the gateway answers.
type ContactsView struct {
	Email      string
	Phone      string
	Valid      bool
	Error      string
	Submitting bool
}

// Renderer is the presentation surface the orchestrator drives. The core
// never knows how views draw; it only pushes the data shapes below. All calls
// happen synchronously on the event loop.
type Renderer interface {
	// RenderHeader updates the cart counter badge.
	RenderHeader(count int)
	// RenderCatalog redraws the product gallery. loadFailed marks a catalog
	// that is empty because loading failed, as opposed to genuinely empty.
	RenderCatalog(items []domain.Product, inCart map[string]bool, loadFailed bool)
	// RenderPreview opens or redraws the product detail modal.
	RenderPreview(p domain.Product, inCart bool)
	// RenderCart opens or redraws the cart modal.
	RenderCart(items []domain.Product, total int)
	// RenderDelivery opens or redraws the delivery step.
	RenderDelivery(v DeliveryView)
	// RenderContacts opens or redraws the contacts step.
	RenderContacts(v ContactsView)
	// RenderSuccess opens the order confirmation with the server's total.
	RenderSuccess(total int)
	// CloseModal dismisses any open modal.
	CloseModal()
}
