package api

import (
	"context"
	_ "embed"
	"encoding/json"
	"fmt"

	"github.com/weblarek/larek/internal/domain"
)

// CatalogSource is anything that can produce the product list. Satisfied by
// *Client; tests substitute fakes.
type CatalogSource interface {
	ProductList(ctx context.Context) ([]domain.Product, error)
}

//go:embed fallback.json
var fallbackJSON []byte

// Loader runs the primary-then-mirror-then-static catalog chain. The catalog
// view is never left empty just because the network is down.
type Loader struct {
	sources  []CatalogSource
	fallback []domain.Product
}

// NewLoader takes the remote sources in preference order. Nil sources are
// skipped, so an unconfigured mirror can be passed as-is.
func NewLoader(sources ...CatalogSource) (*Loader, error) {
	l := &Loader{}
	for _, s := range sources {
		if s != nil {
			l.sources = append(l.sources, s)
		}
	}
	var list domain.ProductList
	if err := json.Unmarshal(fallbackJSON, &list); err != nil {
		return nil, fmt.Errorf("parse bundled catalog: %w", err)
	}
	l.fallback = list.Items
	return l, nil
}

// Load returns the first source that answers, falling back to the bundled
// static list when all fail. failed is true only when every source failed AND
// the static list has nothing to show.
func (l *Loader) Load(ctx context.Context) (items []domain.Product, failed bool) {
	for _, s := range l.sources {
		got, err := s.ProductList(ctx)
		if err == nil {
			return got, false
		}
	}
	return l.fallback, len(l.fallback) == 0
}
