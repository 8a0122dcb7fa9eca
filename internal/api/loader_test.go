package api

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/weblarek/larek/internal/domain"
)

type stubSource struct {
	items []domain.Product
	err   error
	calls int
}

func (s *stubSource) ProductList(context.Context) ([]domain.Product, error) {
	s.calls++
	return s.items, s.err
}

func TestLoaderPrefersPrimary(t *testing.T) {
	t.Parallel()

	primary := &stubSource{items: []domain.Product{{ID: "p1"}}}
	mirror := &stubSource{items: []domain.Product{{ID: "m1"}}}
	l, err := NewLoader(primary, mirror)
	require.NoError(t, err)

	items, failed := l.Load(context.Background())
	require.False(t, failed)
	require.Equal(t, "p1", items[0].ID)
	require.Zero(t, mirror.calls, "mirror is only for failover")
}

func TestLoaderFallsBackToMirror(t *testing.T) {
	t.Parallel()

	primary := &stubSource{err: errors.New("down")}
	mirror := &stubSource{items: []domain.Product{{ID: "m1"}}}
	l, err := NewLoader(primary, mirror)
	require.NoError(t, err)

	items, failed := l.Load(context.Background())
	require.False(t, failed)
	require.Equal(t, "m1", items[0].ID)
	require.Equal(t, 1, primary.calls)
}

func TestLoaderFallsBackToBundledCatalog(t *testing.T) {
	t.Parallel()

	primary := &stubSource{err: errors.New("down")}
	mirror := &stubSource{err: errors.New("down too")}
	l, err := NewLoader(primary, mirror)
	require.NoError(t, err)

	items, failed := l.Load(context.Background())
	// the bundled list keeps the catalog non-empty, so this is not a failure
	// the user needs to see
	require.False(t, failed)
	require.NotEmpty(t, items)

	byID := map[string]domain.Product{}
	for _, p := range items {
		byID[p.ID] = p
	}
	require.Len(t, byID, len(items), "bundled catalog ids must be unique")
}

func TestLoaderSkipsNilSources(t *testing.T) {
	t.Parallel()

	primary := &stubSource{items: []domain.Product{{ID: "p1"}}}
	l, err := NewLoader(primary, nil)
	require.NoError(t, err)

	items, failed := l.Load(context.Background())
	require.False(t, failed)
	require.Len(t, items, 1)
}

func TestBundledCatalogHasANilPriceItem(t *testing.T) {
	t.Parallel()

	l, err := NewLoader()
	require.NoError(t, err)
	items, failed := l.Load(context.Background())
	require.False(t, failed)

	var free int
	for _, p := range items {
		if !p.Purchasable() {
			free++
		}
	}
	require.Positive(t, free, "the priceless edge case must stay exercised offline")
}
