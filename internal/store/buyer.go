package store

import (
	"regexp"
	"strings"

	"github.com/weblarek/larek/internal/domain"
	"github.com/weblarek/larek/internal/event"
)

// Validation errors are user-facing text, field-scoped.
const (
	ErrTextEmail   = "Некорректный email адрес"
	ErrTextPhone   = "Некорректный номер телефона"
	ErrTextAddress = "Адрес доставки обязателен"
)

var (
	// one "@", at least one char on each side, dot plus suffix in the domain
	emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	// +7 followed by exactly ten digits, no separators
	phoneRe = regexp.MustCompile(`^\+7\d{10}$`)
)

// ValidationResult is the outcome of a full draft validation. Errors holds
// user-facing text per failed field.
type ValidationResult struct {
	IsValid bool
	Email   string
	Phone   string
	Address string
}

// BuyerPatch is a partial draft update for Set. Nil fields are left alone.
type BuyerPatch struct {
	Payment *domain.PaymentMethod
	Email   *string
	Phone   *string
	Address *string
}

// Buyer owns the in-progress checkout draft. Every setter trims its input and
// emits buyer:changed with the full snapshot, so subscribers always see the
// complete current draft.
type Buyer struct {
	bus  *event.Bus
	data domain.BuyerData
}

func NewBuyer(bus *event.Bus) *Buyer {
	return &Buyer{bus: bus, data: defaultBuyer()}
}

func defaultBuyer() domain.BuyerData {
	return domain.BuyerData{Payment: domain.PaymentCard}
}

func (b *Buyer) SetPayment(p domain.PaymentMethod) {
	b.data.Payment = p
	b.emitChange()
}

func (b *Buyer) SetEmail(email string) {
	b.data.Email = strings.TrimSpace(email)
	b.emitChange()
}

func (b *Buyer) SetPhone(phone string) {
	b.data.Phone = strings.TrimSpace(phone)
	b.emitChange()
}

func (b *Buyer) SetAddress(address string) {
	b.data.Address = strings.TrimSpace(address)
	b.emitChange()
}

// Set applies a partial update in one go: exactly one emission when at least
// one field is supplied, none otherwise.
func (b *Buyer) Set(patch BuyerPatch) {
	changed := false
	if patch.Payment != nil {
		b.data.Payment = *patch.Payment
		changed = true
	}
	if patch.Email != nil {
		b.data.Email = strings.TrimSpace(*patch.Email)
		changed = true
	}
	if patch.Phone != nil {
		b.data.Phone = strings.TrimSpace(*patch.Phone)
		changed = true
	}
	if patch.Address != nil {
		b.data.Address = strings.TrimSpace(*patch.Address)
		changed = true
	}
	if changed {
		b.emitChange()
	}
}

// Data returns the current draft snapshot.
func (b *Buyer) Data() domain.BuyerData { return b.data }

// Clear resets the draft to defaults and emits a change. Called after a
// successful order or an explicit cancel.
func (b *Buyer) Clear() {
	b.data = defaultBuyer()
	b.emitChange()
}

// Validate checks the full draft. Pure: no mutation, no emission.
func (b *Buyer) Validate() ValidationResult {
	res := ValidationResult{}
	if !b.ValidEmail() {
		res.Email = ErrTextEmail
	}
	if !b.ValidPhone() {
		res.Phone = ErrTextPhone
	}
	if !b.ValidAddress() {
		res.Address = ErrTextAddress
	}
	res.IsValid = res.Email == "" && res.Phone == "" && res.Address == ""
	return res
}

func (b *Buyer) ValidEmail() bool { return emailRe.MatchString(b.data.Email) }

func (b *Buyer) ValidPhone() bool { return phoneRe.MatchString(b.data.Phone) }

// ValidAddress is the cheap standalone check the delivery step uses; the full
// email/phone validation only matters at the contacts step.
func (b *Buyer) ValidAddress() bool { return b.data.Address != "" }

func (b *Buyer) emitChange() {
	_ = b.bus.Emit(TopicBuyerChanged, b.data)
}
