package update_addons

// UpdateAddOnRequest HTTP request model
// Ровно одно из полей quantity/delta: quantity задаёт абсолютное
// значение, delta изменяет счётчик на +1/-1
type UpdateAddOnRequest struct {
	AddOnID  string `json:"addonId"`
	Quantity *int   `json:"quantity,omitempty"`
	Delta    *int   `json:"delta,omitempty"`
}
