package view_test

import (
	"reflect"
	"testing"

	"github.com/thinglist-app/backend/domain"
	"github.com/thinglist-app/backend/view"
)

func names(items []domain.Item) []string {
	out := make([]string, len(items))
	for i, it := range items {
		out[i] = it.Name
	}
	return out
}

func TestBuildSorting(t *testing.T) {
	catalog := []domain.Item{
		{Name: "B", Quantity: 2, Category: "Electronics", UnitPrice: 10},
		{Name: "A", Quantity: 5, Category: "kitchenware", UnitPrice: 3},
		{Name: "c", Quantity: 5, Category: "Bags", UnitPrice: 10},
	}

	cases := map[string]struct {
		key       domain.SortKey
		wantOrder []string
	}{
		"name ascending is case-insensitive": {
			key:       domain.SortNameAsc,
			wantOrder: []string{"A", "B", "c"},
		},
		"quantity descending, ties keep input order": {
			key:       domain.SortQuantityDesc,
			wantOrder: []string{"A", "c", "B"},
		},
		"category ascending is case-insensitive": {
			key:       domain.SortCategoryAsc,
			wantOrder: []string{"c", "B", "A"},
		},
		"price descending, ties keep input order": {
			key:       domain.SortPriceDesc,
			wantOrder: []string{"B", "c", "A"},
		},
		"unknown key keeps insertion order": {
			key:       domain.SortKey(99),
			wantOrder: []string{"B", "A", "c"},
		},
	}

	for name, tt := range cases {
		tt := tt
		t.Run(name, func(t *testing.T) {
			v := view.Build(catalog, tt.key, view.FilterAll, domain.CountUnits)
			if got := names(v.Items); !reflect.DeepEqual(got, tt.wantOrder) {
				t.Fatalf("unexpected order: want: %v, got: %v", tt.wantOrder, got)
			}
		})
	}
}

func TestBuildSortIsStable(t *testing.T) {
	catalog := []domain.Item{
		{Name: "first", Quantity: 7},
		{Name: "second", Quantity: 7},
		{Name: "third", Quantity: 7},
		{Name: "biggest", Quantity: 9},
	}

	v := view.Build(catalog, domain.SortQuantityDesc, view.FilterAll, domain.CountUnits)
	want := []string{"biggest", "first", "second", "third"}
	if got := names(v.Items); !reflect.DeepEqual(got, want) {
		t.Fatalf("equal keys must keep relative order: want: %v, got: %v", want, got)
	}
}

func TestBuildFilter(t *testing.T) {
	catalog := []domain.Item{
		{Name: "Mouse", Quantity: 2, Category: "Electronics", UnitPrice: 10},
		{Name: "Cable", Quantity: 3, Category: "Electronics", UnitPrice: 5},
		{Name: "Mug", Quantity: 1, Category: "Kitchenware", UnitPrice: 9},
	}

	v := view.Build(catalog, domain.SortDefault, "Electronics", domain.CountUnits)

	if len(v.Items) != 2 {
		t.Fatalf("unexpected filtered length: want: 2, got: %d", len(v.Items))
	}
	for _, it := range v.Items {
		if it.Category != "Electronics" {
			t.Fatalf("filter leaked category %q", it.Category)
		}
	}
	if want := 2*10.0 + 3*5.0; v.TotalValue != want {
		t.Fatalf("unexpected total value: want: %v, got: %v", want, v.TotalValue)
	}
	if v.TotalQuantity != 5 {
		t.Fatalf("unexpected total quantity: want: 5, got: %d", v.TotalQuantity)
	}
}

func TestBuildFilterIsCaseSensitive(t *testing.T) {
	catalog := []domain.Item{
		{Name: "Mouse", Quantity: 1, Category: "electronics"},
	}

	v := view.Build(catalog, domain.SortDefault, "Electronics", domain.CountUnits)
	if len(v.Items) != 0 {
		t.Fatalf("case-insensitive match leaked: got %d items", len(v.Items))
	}
}

func TestBuildFilterAllIsPermutation(t *testing.T) {
	catalog := []domain.Item{
		{Name: "B", Quantity: 1, Category: "Bags"},
		{Name: "A", Quantity: 1, Category: "Sports"},
		{Name: "C", Quantity: 1, Category: "Misc"},
	}

	v := view.Build(catalog, domain.SortNameAsc, view.FilterAll, domain.CountUnits)
	if len(v.Items) != len(catalog) {
		t.Fatalf("the All filter dropped items: want: %d, got: %d", len(catalog), len(v.Items))
	}

	seen := map[string]int{}
	for _, it := range catalog {
		seen[it.Name]++
	}
	for _, it := range v.Items {
		seen[it.Name]--
	}
	for name, n := range seen {
		if n != 0 {
			t.Fatalf("item %q count off by %d", name, n)
		}
	}
}

func TestBuildUnknownCategory(t *testing.T) {
	catalog := []domain.Item{
		{Name: "Mouse", Quantity: 2, Category: "Electronics", UnitPrice: 10},
	}

	v := view.Build(catalog, domain.SortDefault, "Garden", domain.CountUnits)
	if len(v.Items) != 0 || v.ItemCount != 0 || v.TotalQuantity != 0 || v.TotalValue != 0 {
		t.Fatalf("filter with no matches must yield an empty zero view, got: %+v", v)
	}
}

func TestBuildEmptyCatalog(t *testing.T) {
	v := view.Build(nil, domain.SortNameAsc, view.FilterAll, domain.CountEntries)
	if len(v.Items) != 0 || v.ItemCount != 0 || v.TotalQuantity != 0 || v.TotalValue != 0 {
		t.Fatalf("empty catalog must yield an empty zero view, got: %+v", v)
	}
}

func TestCountPolicies(t *testing.T) {
	catalog := []domain.Item{
		{Name: "Mouse", Quantity: 45, Category: "Electronics", UnitPrice: 2},
		{Name: "Mug", Quantity: 5, Category: "Kitchenware", UnitPrice: 4},
	}

	units := view.Build(catalog, domain.SortDefault, view.FilterAll, domain.CountUnits)
	if units.ItemCount != 50 {
		t.Fatalf("CountUnits must sum quantities: want: 50, got: %d", units.ItemCount)
	}

	entries := view.Build(catalog, domain.SortDefault, view.FilterAll, domain.CountEntries)
	if entries.ItemCount != 2 {
		t.Fatalf("CountEntries must count rows: want: 2, got: %d", entries.ItemCount)
	}

	// The value aggregate is policy-independent.
	if units.TotalValue != entries.TotalValue || units.TotalValue != 45*2.0+5*4.0 {
		t.Fatalf("unexpected total values: %v vs %v", units.TotalValue, entries.TotalValue)
	}
}

func TestBuildIsPure(t *testing.T) {
	catalog := []domain.Item{
		{Name: "Mouse", Quantity: 2, Category: "Electronics", UnitPrice: 10},
		{Name: "Mug", Quantity: 1, Category: "Kitchenware", UnitPrice: 9},
	}

	first := view.Build(catalog, domain.SortPriceDesc, view.FilterAll, domain.CountUnits)
	second := view.Build(catalog, domain.SortPriceDesc, view.FilterAll, domain.CountUnits)

	if !reflect.DeepEqual(first, second) {
		t.Fatalf("repeated builds over an unchanged catalog diverged:\n%+v\n%+v", first, second)
	}
}

func TestHeaderTotalsIgnoreFilter(t *testing.T) {
	catalog := []domain.Item{
		{Name: "Mouse", Quantity: 2, Category: "Electronics", UnitPrice: 10},
		{Name: "Mug", Quantity: 1, Category: "Kitchenware", UnitPrice: 9},
	}

	header := view.Totals(catalog, domain.CountEntries)
	filtered := view.Build(catalog, domain.SortDefault, "Electronics", domain.CountEntries)

	if header.ItemCount != 2 || header.TotalValue != 29 {
		t.Fatalf("unexpected header totals: %+v", header)
	}
	if filtered.ItemCount != 1 || filtered.TotalValue != 20 {
		t.Fatalf("unexpected filtered totals: %+v", filtered.Aggregates)
	}
}
