package list_addons

import "github.com/explorio/booking-service/internal/domain"

// AddOnResponse элемент списка add-on'ов
type AddOnResponse struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Description string  `json:"description,omitempty"`
	Image       string  `json:"image,omitempty"`
}

// ListAddOnsResponse HTTP response model
type ListAddOnsResponse struct {
	AddOns []AddOnResponse `json:"addons"`
}

// FromDomainList конвертирует список add-on'ов в HTTP response
func FromDomainList(addOns []domain.AddOn) *ListAddOnsResponse {
	items := make([]AddOnResponse, 0, len(addOns))
	for _, a := range addOns {
		items = append(items, AddOnResponse{
			ID:          a.ID,
			Name:        a.Name,
			Price:       a.Price,
			Description: a.Description,
			Image:       a.Image,
		})
	}
	return &ListAddOnsResponse{AddOns: items}
}
