package store

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/weblarek/larek/internal/domain"
	"github.com/weblarek/larek/internal/event"
)

func price(n int) *int { return &n }

func product(id string, p *int) domain.Product {
	return domain.Product{ID: id, Title: "товар " + id, Category: domain.CategoryOther, Price: p}
}

func watchCart(t *testing.T, bus *event.Bus) *[]CartState {
	t.Helper()
	var seen []CartState
	event.On(bus, TopicCartChanged, func(cs CartState) error {
		seen = append(seen, cs)
		return nil
	})
	return &seen
}

func TestAddItemIsIdempotent(t *testing.T) {
	t.Parallel()

	bus := event.New()
	cart := NewCart(bus)
	seen := watchCart(t, bus)

	p := product("p1", price(100))
	cart.AddItem(p)
	cart.AddItem(p)

	require.Equal(t, 1, cart.ItemCount())
	require.Equal(t, 100, cart.TotalPrice())
	require.Len(t, *seen, 1, "re-adding a member id must not emit")
}

func TestNilPriceItemChangesCountNotTotal(t *testing.T) {
	t.Parallel()

	bus := event.New()
	cart := NewCart(bus)

	cart.AddItem(product("p1", price(750)))
	cart.AddItem(product("p2", nil))

	require.Equal(t, 2, cart.ItemCount())
	require.Equal(t, 750, cart.TotalPrice())
}

func TestRemoveAbsentIDIsSilent(t *testing.T) {
	// Policy choice: removing a non-member emits nothing, so subscribers
	// only ever see real changes.
	t.Parallel()

	bus := event.New()
	cart := NewCart(bus)
	cart.AddItem(product("p1", price(100)))
	seen := watchCart(t, bus)

	cart.RemoveItem("missing")
	require.Empty(t, *seen)
	require.Equal(t, 1, cart.ItemCount())

	cart.RemoveItem("p1")
	require.Len(t, *seen, 1)
	require.Equal(t, 0, cart.ItemCount())
}

func TestCountNeverGoesNegative(t *testing.T) {
	t.Parallel()

	bus := event.New()
	cart := NewCart(bus)
	cart.RemoveItem("p1")
	cart.RemoveItem("p1")
	require.Equal(t, 0, cart.ItemCount())
}

func TestNoDuplicateIDsAcrossSequences(t *testing.T) {
	t.Parallel()

	bus := event.New()
	cart := NewCart(bus)

	ops := []struct {
		add bool
		id  string
	}{
		{true, "a"}, {true, "b"}, {true, "a"}, {false, "b"},
		{true, "c"}, {true, "b"}, {false, "z"}, {true, "a"},
	}
	for _, op := range ops {
		if op.add {
			cart.AddItem(product(op.id, price(10)))
		} else {
			cart.RemoveItem(op.id)
		}
	}

	seen := map[string]bool{}
	for _, p := range cart.Items() {
		require.False(t, seen[p.ID], "duplicate id %s", p.ID)
		seen[p.ID] = true
	}
	require.Equal(t, 3, cart.ItemCount())
}

func TestClearEmitsAndEmpties(t *testing.T) {
	t.Parallel()

	bus := event.New()
	cart := NewCart(bus)
	cart.AddItem(product("p1", price(100)))
	seen := watchCart(t, bus)

	cart.Clear()
	require.Equal(t, 0, cart.ItemCount())
	require.Equal(t, 0, cart.TotalPrice())
	require.Len(t, *seen, 1)
	require.Empty(t, (*seen)[0].Items)
	require.Zero(t, (*seen)[0].Total)
}

func TestCartChangePayloadCarriesSnapshotAndTotal(t *testing.T) {
	t.Parallel()

	bus := event.New()
	cart := NewCart(bus)
	seen := watchCart(t, bus)

	cart.AddItem(product("p1", price(100)))
	cart.AddItem(product("p2", price(50)))

	require.Len(t, *seen, 2)
	last := (*seen)[1]
	require.Equal(t, 150, last.Total)
	require.Len(t, last.Items, 2)

	// mutating the snapshot must not touch the store
	last.Items[0].ID = "hacked"
	require.True(t, cart.HasItem("p1"))
}
