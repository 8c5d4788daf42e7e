package models

// Category is the database row shape for a category reference entry.
type Category struct {
	CategoryID string `db:"category_id"`
	Name       string `db:"name"`
	Type       string `db:"type"`
	Color      string `db:"color"`
}
