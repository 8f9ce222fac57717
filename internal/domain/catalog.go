package domain

// Category категория активностей для фильтрации
type Category struct {
	ID   string
	Name string
}

// City город, в котором проводятся активности
type City struct {
	ID   string
	Name string
}

// Sort options for activity listings
const (
	SortPriceAsc  = "price-asc"
	SortPriceDesc = "price-desc"
	SortDistance  = "distance"
)

// ActivityFilter фильтр для выборки активностей
type ActivityFilter struct {
	Query      string   // Подстрока в имени или категории (без учёта регистра)
	Categories []string // Пустой список = все категории
	Cities     []string // Пустой список = все города
	MinPrice   *float64 // nil = без нижней границы
	MaxPrice   *float64 // nil = без верхней границы
	Sort       string   // SortPriceAsc по умолчанию
}
