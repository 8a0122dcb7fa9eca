package flow

import "github.com/weblarek/larek/internal/domain"

// UI intent topics. Views emit these on the bus; the orchestrator is the only
// consumer. One fixed payload type per topic.
const (
	TopicProductOpen    = "view:product-open"    // ProductOpen
	TopicProductAdd     = "view:product-add"     // ProductAdd
	TopicProductRemove  = "view:product-remove"  // ProductRemove
	TopicBasketRemove   = "view:basket-remove"   // BasketRemove
	TopicCartOpen       = "view:cart-open"       // CartOpen
	TopicCheckout       = "view:checkout"        // Checkout
	TopicPaymentChange  = "view:payment-change"  // PaymentChange
	TopicFormChange     = "view:form-change"     // FormChange
	TopicCheckoutNext   = "view:checkout-next"   // CheckoutNext
	TopicCheckoutSubmit = "view:checkout-submit" // CheckoutSubmit
	TopicModalClose     = "view:modal-close"     // ModalClose
)

// ProductOpen asks for the product's detail view.
type ProductOpen struct{ ID string }

// ProductAdd puts the product in the cart. Emitted from the preview view, so
// handling it also closes the modal.
type ProductAdd struct{ ID string }

// ProductRemove takes the product out of the cart from the preview view;
// handling it also closes the modal.
type ProductRemove struct{ ID string }

// BasketRemove takes the product out of the cart from the cart list itself;
// the cart stays open.
type BasketRemove struct{ ID string }

// CartOpen shows the cart.
type CartOpen struct{}

// Checkout starts the delivery step from the cart.
type Checkout struct{}

// PaymentChange switches the payment method on the delivery step.
type PaymentChange struct{ Payment domain.PaymentMethod }

// Field names FormChange can carry.
const (
	FieldAddress = "address"
	FieldEmail   = "email"
	FieldPhone   = "phone"
)

// FormChange carries one edited form field.
type FormChange struct {
	Field string
	Value string
}

// CheckoutNext advances from delivery to contacts.
type CheckoutNext struct{}

// CheckoutSubmit submits the order from the contacts step.
type CheckoutSubmit struct{}

// ModalClose dismisses whatever modal is open (including the confirmation).
type ModalClose struct{}
