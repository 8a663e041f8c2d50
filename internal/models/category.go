package models

// Category represents a catalog group ("Minuman", "Makanan", ...).
// Categories are shown ordered by Position; deleting a category removes
// every product in it.
type Category struct {
	// ID is the store-generated row identifier.
	ID int64

	// Name is the display name. Never empty.
	Name string

	// ImageURI is the app-local path of the category thumbnail, or empty
	// when no image was picked.
	ImageURI string

	// Position defines display order within the catalog. Assigned
	// max+1 on create, rewritten in bulk on reorder.
	Position int
}
