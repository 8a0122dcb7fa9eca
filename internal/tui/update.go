package tui

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/weblarek/larek/internal/domain"
	"github.com/weblarek/larek/internal/flow"
)

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.ready = true
		return a, nil

	case catalogLoadedMsg:
		a.orch.CatalogLoaded(msg.items, msg.failed)
		a.refreshCatalog()
		return a, nil

	case ResumeMsg:
		prev := a.vs.modal
		msg.Fn()
		return a, a.syncModal(prev)

	case spinner.TickMsg:
		if a.vs.modal == modalContacts && a.vs.contacts.Submitting {
			var cmd tea.Cmd
			a.spin, cmd = a.spin.Update(msg)
			return a, cmd
		}
		return a, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return a, tea.Quit
		}
		return a.handleKey(msg)
	}
	return a, nil
}

// handleKey routes input to whichever view is in focus. Exactly one view is
// active at a time, so the first match wins.
func (a *App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch a.vs.modal {
	case modalPreview:
		return a.updatePreview(msg)
	case modalCart:
		return a.updateCart(msg)
	case modalDelivery:
		return a.updateDelivery(msg)
	case modalContacts:
		return a.updateContacts(msg)
	case modalSuccess:
		return a.updateSuccess(msg)
	default:
		return a.updateCatalog(msg)
	}
}

// dispatch emits an intent and reseeds widgets when the active modal changed
// under it.
func (a *App) dispatch(topic string, payload any) tea.Cmd {
	prev := a.vs.modal
	a.emit(topic, payload)
	return a.syncModal(prev)
}

// syncModal seeds input widgets after a modal transition and refreshes the
// catalog rows if the orchestrator redrew them.
func (a *App) syncModal(prev modalKind) tea.Cmd {
	a.refreshCatalog()
	if a.vs.modal == prev {
		return nil
	}
	switch a.vs.modal {
	case modalDelivery:
		a.address.SetValue(a.vs.delivery.Address)
		a.address.CursorEnd()
		a.address.Focus()
	case modalContacts:
		a.email.SetValue(a.vs.contacts.Email)
		a.email.CursorEnd()
		a.phone.SetValue(a.vs.contacts.Phone)
		a.phone.CursorEnd()
		a.contactFocus = 0
		a.email.Focus()
		a.phone.Blur()
	case modalCart:
		a.clampCartCursor()
	}
	return nil
}

func (a *App) refreshCatalog() {
	if !a.vs.catalogDirty && a.visible != nil {
		return
	}
	a.visible = rankProducts(a.vs.catalogItems, a.search.Value())
	a.vs.catalogDirty = false
	if a.catCursor >= len(a.visible) {
		a.catCursor = len(a.visible) - 1
	}
	if a.catCursor < 0 {
		a.catCursor = 0
	}
}

func (a *App) clampCartCursor() {
	if a.cartCursor >= len(a.vs.cartItems) {
		a.cartCursor = len(a.vs.cartItems) - 1
	}
	if a.cartCursor < 0 {
		a.cartCursor = 0
	}
}

// --- catalog ---------------------------------------------------------------

func (a *App) updateCatalog(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if a.searching {
		switch {
		case key.Matches(msg, a.keys.Close):
			a.searching = false
			a.search.SetValue("")
			a.search.Blur()
			a.vs.catalogDirty = true
			a.refreshCatalog()
			return a, nil
		case key.Matches(msg, a.keys.Enter):
			a.searching = false
			a.search.Blur()
			return a, nil
		default:
			var cmd tea.Cmd
			a.search, cmd = a.search.Update(msg)
			a.vs.catalogDirty = true
			a.refreshCatalog()
			return a, cmd
		}
	}

	switch {
	case key.Matches(msg, a.keys.Quit):
		return a, tea.Quit
	case key.Matches(msg, a.keys.Up):
		if a.catCursor > 0 {
			a.catCursor--
		}
	case key.Matches(msg, a.keys.Down):
		if a.catCursor < len(a.visible)-1 {
			a.catCursor++
		}
	case key.Matches(msg, a.keys.Search):
		a.searching = true
		a.search.Focus()
	case key.Matches(msg, a.keys.Cart):
		return a, a.dispatch(flow.TopicCartOpen, flow.CartOpen{})
	case key.Matches(msg, a.keys.Enter):
		if p, ok := a.selectedProduct(); ok {
			return a, a.dispatch(flow.TopicProductOpen, flow.ProductOpen{ID: p.ID})
		}
	}
	return a, nil
}

// --- preview ---------------------------------------------------------------

func (a *App) updatePreview(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, a.keys.Close):
		return a, a.dispatch(flow.TopicModalClose, flow.ModalClose{})
	case key.Matches(msg, a.keys.Enter):
		p := a.vs.previewProduct
		if a.vs.previewInCart {
			return a, a.dispatch(flow.TopicProductRemove, flow.ProductRemove{ID: p.ID})
		}
		if p.Purchasable() {
			return a, a.dispatch(flow.TopicProductAdd, flow.ProductAdd{ID: p.ID})
		}
		// nil-price items have no buy button to press
	}
	return a, nil
}

// --- cart ------------------------------------------------------------------

func (a *App) updateCart(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, a.keys.Close):
		return a, a.dispatch(flow.TopicModalClose, flow.ModalClose{})
	case key.Matches(msg, a.keys.Up):
		if a.cartCursor > 0 {
			a.cartCursor--
		}
	case key.Matches(msg, a.keys.Down):
		if a.cartCursor < len(a.vs.cartItems)-1 {
			a.cartCursor++
		}
	case key.Matches(msg, a.keys.Remove):
		if a.cartCursor < len(a.vs.cartItems) {
			id := a.vs.cartItems[a.cartCursor].ID
			cmd := a.dispatch(flow.TopicBasketRemove, flow.BasketRemove{ID: id})
			a.clampCartCursor()
			return a, cmd
		}
	case key.Matches(msg, a.keys.Enter):
		// checkout is disabled while the cart is empty
		if len(a.vs.cartItems) > 0 {
			return a, a.dispatch(flow.TopicCheckout, flow.Checkout{})
		}
	}
	return a, nil
}

// --- delivery step ---------------------------------------------------------

func (a *App) updateDelivery(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, a.keys.Close):
		return a, a.dispatch(flow.TopicModalClose, flow.ModalClose{})
	case key.Matches(msg, a.keys.Payment):
		next := domain.PaymentCard
		if a.vs.delivery.Payment == domain.PaymentCard {
			next = domain.PaymentCash
		}
		return a, a.dispatch(flow.TopicPaymentChange, flow.PaymentChange{Payment: next})
	case key.Matches(msg, a.keys.Enter):
		return a, a.dispatch(flow.TopicCheckoutNext, flow.CheckoutNext{})
	}

	var cmd tea.Cmd
	before := a.address.Value()
	a.address, cmd = a.address.Update(msg)
	if v := a.address.Value(); v != before {
		a.emit(flow.TopicFormChange, flow.FormChange{Field: flow.FieldAddress, Value: v})
	}
	return a, cmd
}

// --- contacts step ---------------------------------------------------------

func (a *App) updateContacts(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if a.vs.contacts.Submitting {
		// submission in flight: everything but quit is ignored
		return a, nil
	}

	switch {
	case key.Matches(msg, a.keys.Close):
		return a, a.dispatch(flow.TopicModalClose, flow.ModalClose{})
	case key.Matches(msg, a.keys.Tab):
		a.contactFocus = 1 - a.contactFocus
		if a.contactFocus == 0 {
			a.email.Focus()
			a.phone.Blur()
		} else {
			a.phone.Focus()
			a.email.Blur()
		}
		return a, nil
	case key.Matches(msg, a.keys.Enter):
		cmd := a.dispatch(flow.TopicCheckoutSubmit, flow.CheckoutSubmit{})
		if a.vs.contacts.Submitting {
			return a, tea.Batch(cmd, a.spin.Tick)
		}
		return a, cmd
	}

	var cmd tea.Cmd
	if a.contactFocus == 0 {
		before := a.email.Value()
		a.email, cmd = a.email.Update(msg)
		if v := a.email.Value(); v != before {
			a.emit(flow.TopicFormChange, flow.FormChange{Field: flow.FieldEmail, Value: v})
		}
	} else {
		before := a.phone.Value()
		a.phone, cmd = a.phone.Update(msg)
		if v := a.phone.Value(); v != before {
			a.emit(flow.TopicFormChange, flow.FormChange{Field: flow.FieldPhone, Value: v})
		}
	}
	return a, cmd
}

// --- success ---------------------------------------------------------------

func (a *App) updateSuccess(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, a.keys.Close) || key.Matches(msg, a.keys.Enter) {
		return a, a.dispatch(flow.TopicModalClose, flow.ModalClose{})
	}
	return a, nil
}
