package models

// Product represents a sellable item within a category.
type Product struct {
	// ID is the store-generated row identifier.
	ID int64

	// Name is the display name. Never empty.
	Name string

	// Price is the unit price in whole rupiah. Stored as a float but the
	// fractional part is never displayed; totals truncate toward zero.
	Price float64

	// CategoryID references the owning Category. Rows cascade-delete with
	// their category.
	CategoryID int64

	// Position defines display order within the category.
	Position int
}
