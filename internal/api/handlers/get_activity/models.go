package get_activity

import "github.com/explorio/booking-service/internal/domain"

// ActivityResponse HTTP response model с полными данными активности
type ActivityResponse struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Category   string `json:"category"`
	City       string `json:"city"`
	ProviderID string `json:"providerId"`

	Currency string  `json:"currency"`
	Price    float64 `json:"price"`

	Durations []string `json:"durations,omitempty"`
	Duration  string   `json:"duration,omitempty"`

	Distance float64 `json:"distance"`

	Description   string   `json:"description"`
	WhatsIncluded []string `json:"whatsIncluded,omitempty"`
	WhatToBring   []string `json:"whatToBring,omitempty"`
	Images        []string `json:"images,omitempty"`

	ParticipantBased bool `json:"participantBased"`
}

// FromDomain конвертирует domain активность в HTTP response
func FromDomain(activity *domain.Activity) *ActivityResponse {
	return &ActivityResponse{
		ID:               activity.ID,
		Name:             activity.Name,
		Category:         activity.Category,
		City:             activity.City,
		ProviderID:       activity.ProviderID,
		Currency:         activity.Currency,
		Price:            activity.Price,
		Durations:        activity.Durations,
		Duration:         activity.Duration,
		Distance:         activity.Distance,
		Description:      activity.Description,
		WhatsIncluded:    activity.WhatsIncluded,
		WhatToBring:      activity.WhatToBring,
		Images:           activity.Images,
		ParticipantBased: activity.IsParticipantBased(),
	}
}
