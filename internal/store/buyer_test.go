package store

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/weblarek/larek/internal/domain"
	"github.com/weblarek/larek/internal/event"
)

func watchBuyer(t *testing.T, bus *event.Bus) *[]domain.BuyerData {
	t.Helper()
	var seen []domain.BuyerData
	event.On(bus, TopicBuyerChanged, func(d domain.BuyerData) error {
		seen = append(seen, d)
		return nil
	})
	return &seen
}

func strptr(s string) *string { return &s }

func TestDefaultsAndTrimming(t *testing.T) {
	t.Parallel()

	bus := event.New()
	buyer := NewBuyer(bus)

	require.Equal(t, domain.PaymentCard, buyer.Data().Payment)
	require.Empty(t, buyer.Data().Email)

	buyer.SetEmail("  a@b.co  ")
	buyer.SetAddress("\tул. Ленина 1 ")
	require.Equal(t, "a@b.co", buyer.Data().Email)
	require.Equal(t, "ул. Ленина 1", buyer.Data().Address)
}

func TestEverySetterEmitsFullSnapshot(t *testing.T) {
	t.Parallel()

	bus := event.New()
	buyer := NewBuyer(bus)
	seen := watchBuyer(t, bus)

	buyer.SetEmail("a@b.co")
	buyer.SetPhone("+79991234567")

	require.Len(t, *seen, 2)
	// the second event carries the whole draft, not just the phone
	require.Equal(t, "a@b.co", (*seen)[1].Email)
	require.Equal(t, "+79991234567", (*seen)[1].Phone)
}

func TestBatchedSetEmitsOnce(t *testing.T) {
	t.Parallel()

	bus := event.New()
	buyer := NewBuyer(bus)
	seen := watchBuyer(t, bus)

	pay := domain.PaymentCash
	buyer.Set(BuyerPatch{
		Payment: &pay,
		Email:   strptr(" a@b.co "),
		Phone:   strptr("+79991234567"),
		Address: strptr("Москва"),
	})

	require.Len(t, *seen, 1, "bulk update must emit exactly once")
	require.Equal(t, domain.PaymentCash, buyer.Data().Payment)
	require.Equal(t, "a@b.co", buyer.Data().Email)
}

func TestEmptyPatchEmitsNothing(t *testing.T) {
	t.Parallel()

	bus := event.New()
	buyer := NewBuyer(bus)
	seen := watchBuyer(t, bus)

	buyer.Set(BuyerPatch{})
	require.Empty(t, *seen)
}

func TestValidateIsPure(t *testing.T) {
	t.Parallel()

	bus := event.New()
	buyer := NewBuyer(bus)
	buyer.SetEmail("a@b.co")
	seen := watchBuyer(t, bus)

	first := buyer.Validate()
	second := buyer.Validate()
	require.Equal(t, first, second)
	require.Empty(t, *seen, "validation must not emit")
	require.Equal(t, "a@b.co", buyer.Data().Email, "validation must not mutate")
}

func TestEmailValidation(t *testing.T) {
	t.Parallel()

	cases := []struct {
		email string
		valid bool
	}{
		{"a@b.co", true},
		{"ivan.petrov@example.ru", true},
		{"a@b", false}, // no dot suffix after the domain
		{"@b.co", false},
		{"a@.co", false},
		{"a b@c.co", false},
		{"", false},
	}
	for _, tc := range cases {
		bus := event.New()
		buyer := NewBuyer(bus)
		buyer.SetEmail(tc.email)
		require.Equal(t, tc.valid, buyer.ValidEmail(), "email %q", tc.email)
	}
}

func TestPhoneValidation(t *testing.T) {
	t.Parallel()

	cases := []struct {
		phone string
		valid bool
	}{
		{"+79991234567", true},
		{"89991234567", false},  // must start with +7
		{"+7999123456", false},  // nine digits
		{"+799912345678", false}, // eleven digits
		{"+7 999 123 45 67", false},
		{"", false},
	}
	for _, tc := range cases {
		bus := event.New()
		buyer := NewBuyer(bus)
		buyer.SetPhone(tc.phone)
		require.Equal(t, tc.valid, buyer.ValidPhone(), "phone %q", tc.phone)
	}
}

func TestValidateCollectsFieldErrors(t *testing.T) {
	t.Parallel()

	bus := event.New()
	buyer := NewBuyer(bus)
	buyer.SetEmail("bad")
	buyer.SetPhone("bad")

	res := buyer.Validate()
	require.False(t, res.IsValid)
	require.Equal(t, ErrTextEmail, res.Email)
	require.Equal(t, ErrTextPhone, res.Phone)
	require.Equal(t, ErrTextAddress, res.Address)

	buyer.SetEmail("a@b.co")
	buyer.SetPhone("+79991234567")
	buyer.SetAddress("Москва")
	res = buyer.Validate()
	require.True(t, res.IsValid)
	require.Empty(t, res.Email)
}

func TestClearResetsToDefaultsAndEmits(t *testing.T) {
	t.Parallel()

	bus := event.New()
	buyer := NewBuyer(bus)
	pay := domain.PaymentCash
	buyer.Set(BuyerPatch{Payment: &pay, Email: strptr("a@b.co"), Address: strptr("Москва")})
	seen := watchBuyer(t, bus)

	buyer.Clear()
	require.Len(t, *seen, 1)
	require.Equal(t, domain.BuyerData{Payment: domain.PaymentCard}, buyer.Data())
}
