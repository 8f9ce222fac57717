package domain

// AddOn represents an optional extra offered with any activity.
// Список add-on'ов глобальный, не привязан к конкретной активности.
type AddOn struct {
	ID          string
	Name        string
	Price       float64
	Description string
	Image       string
}

// Bundle represents a promotional bundle shown on the activity page
type Bundle struct {
	Name        string
	Description string
}
