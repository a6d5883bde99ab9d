package domain

// SortKey selects the ordering of an inventory view. Sorting is stable:
// items with equal keys keep their catalog order.
type SortKey int

const (
	SortDefault SortKey = iota // catalog (insertion) order
	SortNameAsc
	SortQuantityDesc
	SortCategoryAsc
	SortPriceDesc
)

// ParseSortKey maps the query-string form to a SortKey. Unknown values
// fall back to SortDefault rather than failing.
func ParseSortKey(s string) SortKey {
	switch s {
	case "name":
		return SortNameAsc
	case "quantity":
		return SortQuantityDesc
	case "category":
		return SortCategoryAsc
	case "price":
		return SortPriceDesc
	}
	return SortDefault
}

// CountPolicy decides what the item_count aggregate means. The
// dashboard counts units (summed quantity), the vault counts rows.
type CountPolicy int

const (
	CountUnits CountPolicy = iota
	CountEntries
)

// Item is a canonical catalog entry after normalization.
type Item struct {
	Name        string
	Quantity    int
	Category    string
	Description string
	Location    string
	UnitPrice   float64
	ImagePath   string
}

// Contribution is a user-supplied item in its raw, pre-normalization
// form: price is free text (may carry currency symbols and thousands
// separators), status doubles as the category label.
type Contribution struct {
	Name        string
	Description string
	Price       string
	Location    string
	Status      string
	ImagePath   string
}

type ItemResponse struct {
	Name               string  `json:"name"`
	Quantity           int     `json:"quantity"`
	Category           string  `json:"category"`
	Description        string  `json:"description"`
	Location           string  `json:"location,omitempty"`
	UnitPrice          float64 `json:"unit_price"`
	UnitPriceFormatted string  `json:"unit_price_formatted,omitempty"`
	ImagePath          string  `json:"image_path,omitempty"`
}

type Category struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// InventoryCategories is the filter vocabulary of the general
// inventory screen. The category set is open: unknown labels are kept
// as-is, so this list is advertised, not enforced.
var InventoryCategories = []Category{
	{ID: 1, Name: "Electronics"},
	{ID: 2, Name: "Stationery"},
	{ID: 3, Name: "Kitchenware"},
	{ID: 4, Name: "Furniture"},
	{ID: 5, Name: "Sports"},
	{ID: 6, Name: "Accessories"},
	{ID: 7, Name: "Bags"},
	{ID: 8, Name: "Misc"},
}

// VaultCategories is the filter vocabulary of the vault screen.
var VaultCategories = []Category{
	{ID: 1, Name: "Documents"},
	{ID: 2, Name: "Jewelry"},
	{ID: 3, Name: "Cash"},
	{ID: 4, Name: "Electronics"},
	{ID: 5, Name: "Art"},
	{ID: 6, Name: "Other"},
}

func ConvertToItemResponses(items []Item) []ItemResponse {
	res := make([]ItemResponse, len(items))

	for i, d := range items {
		res[i] = ItemResponse{
			Name:        d.Name,
			Quantity:    d.Quantity,
			Category:    d.Category,
			Description: d.Description,
			Location:    d.Location,
			UnitPrice:   d.UnitPrice,
			ImagePath:   d.ImagePath,
		}
	}
	return res
}
