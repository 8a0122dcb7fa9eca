package tui

import (
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"

	"github.com/weblarek/larek/internal/domain"
)

// rankProducts filters the catalog by a fuzzy title match. Substring hits
// come first in catalog order; near misses are ranked by edit distance so a
// typo like "лиденец" still finds the HEX-леденец.
func rankProducts(items []domain.Product, query string) []domain.Product {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return items
	}

	type scored struct {
		p    domain.Product
		dist int
	}
	// edit-distance budget scales with query length, counted in runes so
	// cyrillic queries are not three times as lenient
	budget := len([]rune(query))/3 + 1

	var exact, near []scored
	for _, p := range items {
		title := strings.ToLower(p.Title)
		if strings.Contains(title, query) {
			exact = append(exact, scored{p: p})
			continue
		}
		if d := bestWordDistance(title, query); d <= budget {
			near = append(near, scored{p: p, dist: d})
		}
	}
	sort.SliceStable(near, func(i, j int) bool { return near[i].dist < near[j].dist })

	out := make([]domain.Product, 0, len(exact)+len(near))
	for _, s := range exact {
		out = append(out, s.p)
	}
	for _, s := range near {
		out = append(out, s.p)
	}
	return out
}

// bestWordDistance is the smallest edit distance between the query and any
// word of the title.
func bestWordDistance(title, query string) int {
	best := len(query) + len(title)
	for _, word := range strings.Fields(title) {
		if d := levenshtein.ComputeDistance(word, query); d < best {
			best = d
		}
	}
	return best
}
