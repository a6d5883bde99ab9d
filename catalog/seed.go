package catalog

import "github.com/thinglist-app/backend/domain"

// SeedInventory returns the fixed demo inventory shown on the
// dashboard before any user contributions. The slice is rebuilt on
// every call so callers can never mutate the seed block.
func SeedInventory() []domain.Item {
	return []domain.Item{
		{Name: "Wireless Mouse", Quantity: 45, Category: "Electronics",
			Description: "Ergonomic wireless mouse with USB receiver", UnitPrice: 29.99},
		{Name: "Notebook Set", Quantity: 120, Category: "Stationery",
			Description: "Pack of 3 ruled notebooks, A5 size", UnitPrice: 12.50},
		{Name: "Coffee Mug", Quantity: 78, Category: "Kitchenware",
			Description: "Ceramic mug with heat-resistant handle", UnitPrice: 8.99},
		{Name: "USB-C Cable", Quantity: 200, Category: "Electronics",
			Description: "6ft braided charging cable", UnitPrice: 15.99},
		{Name: "Desk Lamp", Quantity: 34, Category: "Furniture",
			Description: "LED desk lamp with adjustable brightness", UnitPrice: 45.00},
		{Name: "Water Bottle", Quantity: 92, Category: "Sports",
			Description: "Stainless steel insulated bottle, 32oz", UnitPrice: 24.99},
		{Name: "Keyboard", Quantity: 28, Category: "Electronics",
			Description: "Mechanical keyboard with RGB lighting", UnitPrice: 89.99},
		{Name: "Sticky Notes", Quantity: 150, Category: "Stationery",
			Description: "Colorful sticky notes, 400 sheets", UnitPrice: 6.99},
		{Name: "Phone Stand", Quantity: 65, Category: "Accessories",
			Description: "Adjustable aluminum phone holder", UnitPrice: 18.99},
		{Name: "Backpack", Quantity: 42, Category: "Bags",
			Description: "Laptop backpack with USB charging port", UnitPrice: 55.00},
		{Name: "Headphones", Quantity: 56, Category: "Electronics",
			Description: "Wireless over-ear headphones with ANC", UnitPrice: 129.99},
		{Name: "Pen Set", Quantity: 180, Category: "Stationery",
			Description: "Set of 10 ballpoint pens, black ink", UnitPrice: 9.99},
		{Name: "Monitor Stand", Quantity: 38, Category: "Furniture",
			Description: "Wooden monitor riser with storage", UnitPrice: 35.00},
		{Name: "Yoga Mat", Quantity: 71, Category: "Sports",
			Description: "Non-slip exercise mat with carrying strap", UnitPrice: 32.50},
		{Name: "Webcam", Quantity: 25, Category: "Electronics",
			Description: "1080p HD webcam with built-in microphone", UnitPrice: 69.99},
	}
}

// SeedVault returns the fixed vault contents. Vault entries are single
// valuables, so quantity is always 1.
func SeedVault() []domain.Item {
	return []domain.Item{
		{Name: "Passport (John Doe)", Quantity: 1, Category: "Documents",
			Description: "Valid until 2029", Location: "Section A", UnitPrice: 0},
		{Name: "Emergency Cash Reserve", Quantity: 1, Category: "Cash",
			Description: "Emergency fund - mixed denominations", Location: "Compartment C", UnitPrice: 5000},
		{Name: "Silver Coins Collection", Quantity: 1, Category: "Cash",
			Description: "Rare silver dollar collection (24 coins)", Location: "Compartment D", UnitPrice: 2400},
		{Name: "Gold Wedding Band", Quantity: 1, Category: "Jewelry",
			Description: "18K gold wedding band, custom engraved", Location: "Drawer 1A", UnitPrice: 3500},
		{Name: "Diamond Earrings", Quantity: 1, Category: "Jewelry",
			Description: "2ct diamond stud earrings, platinum setting", Location: "Drawer 1B", UnitPrice: 8200},
		{Name: "Property Deed", Quantity: 1, Category: "Documents",
			Description: "Original property deed for 123 Main Street", Location: "Section B", UnitPrice: 0},
		{Name: "Vintage Rolex", Quantity: 1, Category: "Jewelry",
			Description: "Rolex Submariner 1960s vintage", Location: "Watch Box", UnitPrice: 15000},
		{Name: "Birth Certificates", Quantity: 1, Category: "Documents",
			Description: "Family birth certificates (3)", Location: "Section A", UnitPrice: 0},
	}
}
