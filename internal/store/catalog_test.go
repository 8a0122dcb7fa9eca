package store

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/weblarek/larek/internal/domain"
	"github.com/weblarek/larek/internal/event"
)

func TestSetItemsReplacesAndEmitsSnapshot(t *testing.T) {
	t.Parallel()

	bus := event.New()
	catalog := NewCatalog(bus)

	var seen [][]domain.Product
	event.On(bus, TopicCatalogChanged, func(items []domain.Product) error {
		seen = append(seen, items)
		return nil
	})

	catalog.SetItems([]domain.Product{product("p1", price(100)), product("p2", nil)})
	require.Len(t, seen, 1)
	require.Len(t, seen[0], 2)

	// empty replacement is a valid state and still emits
	catalog.SetItems(nil)
	require.Len(t, seen, 2)
	require.Empty(t, seen[1])
	require.Empty(t, catalog.Items())
}

func TestProductLookup(t *testing.T) {
	t.Parallel()

	bus := event.New()
	catalog := NewCatalog(bus)
	catalog.SetItems([]domain.Product{product("p1", price(100))})

	p, ok := catalog.Product("p1")
	require.True(t, ok)
	require.Equal(t, "p1", p.ID)

	_, ok = catalog.Product("nope")
	require.False(t, ok)
}

func TestSetPreviewEmitsSelection(t *testing.T) {
	t.Parallel()

	bus := event.New()
	catalog := NewCatalog(bus)
	p := product("p1", price(100))
	catalog.SetItems([]domain.Product{p})

	var seen []ProductSelection
	event.On(bus, TopicProductSelect, func(sel ProductSelection) error {
		seen = append(seen, sel)
		return nil
	})

	catalog.SetPreview(&p)
	require.NotNil(t, catalog.Preview())
	require.Len(t, seen, 1)
	require.Equal(t, "p1", seen[0].Product.ID)

	catalog.SetPreview(nil)
	require.Nil(t, catalog.Preview())
	require.Len(t, seen, 2)
	require.Nil(t, seen[1].Product)
}

func TestMutationVisibleToHandlers(t *testing.T) {
	t.Parallel()

	bus := event.New()
	catalog := NewCatalog(bus)

	var lenDuringEmit int
	event.On(bus, TopicCatalogChanged, func([]domain.Product) error {
		lenDuringEmit = len(catalog.Items())
		return nil
	})

	catalog.SetItems([]domain.Product{product("p1", price(1)), product("p2", price(2))})
	require.Equal(t, 2, lenDuringEmit, "state must be mutated before the emit")
}
