// Package view derives filtered, sorted, aggregated projections of a
// catalog. The engine is a pure function of its inputs and keeps no
// state between calls.
package view

import (
	"sort"
	"strings"

	"github.com/thinglist-app/backend/domain"
)

// FilterAll is the sentinel category that passes every item through.
const FilterAll = "All"

// Aggregates are the totals computed over a sequence of items.
type Aggregates struct {
	ItemCount     int     `json:"item_count"`
	TotalQuantity int     `json:"total_quantity"`
	TotalValue    float64 `json:"total_value"`
}

// View is a transient projection of a catalog: the filtered and sorted
// items plus their aggregates. It never outlives the catalog slice it
// was built from.
type View struct {
	Items []domain.Item
	Aggregates
}

// Build filters, then stably sorts, then aggregates. Filtering is an
// exact case-sensitive match against the item category unless the
// filter is FilterAll. Filtering never reorders; sorting applies to
// the already-filtered sequence.
func Build(items []domain.Item, key domain.SortKey, filterCategory string, policy domain.CountPolicy) View {
	filtered := make([]domain.Item, 0, len(items))
	for _, it := range items {
		if filterCategory != FilterAll && it.Category != filterCategory {
			continue
		}
		filtered = append(filtered, it)
	}

	sortItems(filtered, key)

	return View{
		Items:      filtered,
		Aggregates: Totals(filtered, policy),
	}
}

// Totals aggregates a sequence on its own, independent of any filter.
// The screens show header totals over the whole catalog next to totals
// over the filtered list; computing them separately keeps the two from
// being conflated.
func Totals(items []domain.Item, policy domain.CountPolicy) Aggregates {
	var agg Aggregates
	for _, it := range items {
		agg.TotalQuantity += it.Quantity
		agg.TotalValue += it.UnitPrice * float64(it.Quantity)
	}

	switch policy {
	case domain.CountEntries:
		agg.ItemCount = len(items)
	default:
		agg.ItemCount = agg.TotalQuantity
	}
	return agg
}

func sortItems(items []domain.Item, key domain.SortKey) {
	switch key {
	case domain.SortNameAsc:
		sort.SliceStable(items, func(i, j int) bool {
			return strings.ToLower(items[i].Name) < strings.ToLower(items[j].Name)
		})
	case domain.SortQuantityDesc:
		sort.SliceStable(items, func(i, j int) bool {
			return items[i].Quantity > items[j].Quantity
		})
	case domain.SortCategoryAsc:
		sort.SliceStable(items, func(i, j int) bool {
			return strings.ToLower(items[i].Category) < strings.ToLower(items[j].Category)
		})
	case domain.SortPriceDesc:
		sort.SliceStable(items, func(i, j int) bool {
			return items[i].UnitPrice > items[j].UnitPrice
		})
	default:
		// SortDefault and unknown keys keep insertion order.
	}
}
