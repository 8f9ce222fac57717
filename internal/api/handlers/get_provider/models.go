package get_provider

import "github.com/explorio/booking-service/internal/domain"

// ProviderResponse HTTP response model
type ProviderResponse struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Address     string  `json:"address"`
	Image       string  `json:"image,omitempty"`
	Description string  `json:"description,omitempty"`
	Distance    float64 `json:"distance"`

	// OpeningHours день недели -> часы работы, "Closed" = выходной
	OpeningHours map[string]string `json:"openingHours,omitempty"`

	ActivityIDs []string `json:"activityIds,omitempty"`
}

// FromDomain конвертирует domain провайдера в HTTP response
func FromDomain(provider *domain.Provider) *ProviderResponse {
	return &ProviderResponse{
		ID:           provider.ID,
		Name:         provider.Name,
		Address:      provider.Address,
		Image:        provider.Image,
		Description:  provider.Description,
		Distance:     provider.Distance,
		OpeningHours: provider.OpeningHours,
		ActivityIDs:  provider.ActivityIDs,
	}
}
