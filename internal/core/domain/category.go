package domain

// CategoryType restricts which transaction types a category applies to.
type CategoryType string

const (
	CategoryIncome  CategoryType = "income"
	CategoryExpense CategoryType = "expense"
	CategoryBoth    CategoryType = "both"
)

// DefaultCategoryID is the fallback category assigned when no classifier
// suggestion or manual choice exists at commit time.
const DefaultCategoryID = "outros"

// Category is a mostly-static reference entry that transactions point at.
type Category struct {
	CategoryID string       `json:"categoryID"`
	Name       string       `json:"name"`
	Type       CategoryType `json:"type"`
	Color      string       `json:"color,omitempty"` // Display hint only
}

// AppliesTo reports whether the category is compatible with a transaction type.
func (c Category) AppliesTo(t TransactionType) bool {
	return c.Type == CategoryBoth || string(c.Type) == string(t)
}
