package catalog

import (
	"cmp"
	"slices"

	"folio.dev/internal/models"
)

// SortKey selects a catalog ordering
type SortKey string

const (
	SortNone      SortKey = ""
	SortNewest    SortKey = "newest"
	SortRating    SortKey = "rating"
	SortPriceLow  SortKey = "price-low"
	SortPriceHigh SortKey = "price-high"
)

// ParseSortKey maps user input to a known key. Unknown input yields
// SortNone and ok=false.
func ParseSortKey(s string) (SortKey, bool) {
	switch k := SortKey(s); k {
	case SortNone, SortNewest, SortRating, SortPriceLow, SortPriceHigh:
		return k, true
	default:
		return SortNone, false
	}
}

// Sort returns a stably sorted copy of projects. Label prices go last for
// both price orders. SortNone and unknown keys keep the input order.
func Sort(projects []models.Project, key SortKey) []models.Project {
	out := slices.Clone(projects)

	var compare func(a, b models.Project) int
	switch key {
	case SortNewest:
		compare = func(a, b models.Project) int { return cmp.Compare(b.Year, a.Year) }
	case SortRating:
		compare = func(a, b models.Project) int { return cmp.Compare(b.Rating, a.Rating) }
	case SortPriceLow:
		compare = func(a, b models.Project) int { return comparePrice(a.Price, b.Price, false) }
	case SortPriceHigh:
		compare = func(a, b models.Project) int { return comparePrice(a.Price, b.Price, true) }
	default:
		return out
	}

	slices.SortStableFunc(out, compare)
	return out
}

func comparePrice(a, b models.Price, descending bool) int {
	switch {
	case !a.IsNumeric() && !b.IsNumeric():
		return 0
	case !a.IsNumeric():
		return 1
	case !b.IsNumeric():
		return -1
	case descending:
		return b.Amount().Cmp(a.Amount())
	default:
		return a.Amount().Cmp(b.Amount())
	}
}
