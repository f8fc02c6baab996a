package model

// CategoryType indicates whether a category applies to income,
// expense, or both.
type CategoryType string

const (
	// CategoryTypeIncome marks income-only categories.
	CategoryTypeIncome CategoryType = "income"
	// CategoryTypeExpense marks expense-only categories.
	CategoryTypeExpense CategoryType = "expense"
	// CategoryTypeBoth marks categories valid in either direction.
	CategoryTypeBoth CategoryType = "both"
)

// CategoryDef describes a spending or income category.
type CategoryDef struct {
	ID   string       `json:"id"`
	Name string       `json:"name"`
	Icon string       `json:"icon"`
	Type CategoryType `json:"type"`
}

// DefaultCategories is the built-in category set.
func DefaultCategories() []CategoryDef {
	return []CategoryDef{
		{ID: "Food", Name: "Food", Icon: "🍔", Type: CategoryTypeExpense},
		{ID: "Transport", Name: "Transport", Icon: "🚕", Type: CategoryTypeExpense},
		{ID: "Shopping", Name: "Shopping", Icon: "🛍️", Type: CategoryTypeExpense},
		{ID: "Utilities", Name: "Utilities", Icon: "💡", Type: CategoryTypeExpense},
		{ID: "Entertainment", Name: "Entertainment", Icon: "🎬", Type: CategoryTypeExpense},
		{ID: "Health", Name: "Health", Icon: "💊", Type: CategoryTypeExpense},
		{ID: "General", Name: "General", Icon: "📝", Type: CategoryTypeBoth},
		{ID: "Salary", Name: "Salary", Icon: "💰", Type: CategoryTypeIncome},
		{ID: "Freelance", Name: "Freelance", Icon: "💻", Type: CategoryTypeIncome},
		{ID: "Gift", Name: "Gift", Icon: "🎁", Type: CategoryTypeBoth},
		{ID: "Investment", Name: "Investment", Icon: "📈", Type: CategoryTypeIncome},
		{ID: "Refund", Name: "Refund", Icon: "↩️", Type: CategoryTypeIncome},
		{ID: "Transfer", Name: "Transfer", Icon: "⇄", Type: CategoryTypeBoth},
	}
}

// CategoryNames returns the built-in category ids plus any custom ones.
func CategoryNames(custom []string) []string {
	defs := DefaultCategories()
	names := make([]string, 0, len(defs)+len(custom))
	for _, d := range defs {
		names = append(names, d.ID)
	}
	names = append(names, custom...)
	return names
}
