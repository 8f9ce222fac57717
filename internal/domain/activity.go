package domain

// Activity represents a bookable tour or activity in the catalog
type Activity struct {
	ID         string
	Name       string
	Category   string
	City       string
	ProviderID string

	Currency string
	Price    float64 // Цена за единицу: за взрослого или за слот длительности

	// Durations варианты длительности ("1 hour", "2 hours", ...)
	// Пустой список означает тарификацию по числу участников
	Durations []string

	// Duration отображаемая длительность ("1.5 hours")
	Duration string

	Distance float64 // Расстояние до точки встречи, км

	Description   string
	WhatsIncluded []string
	WhatToBring   []string
	Images        []string
}

// IsParticipantBased returns true if the activity is priced per participant.
// Ровно один режим тарификации: либо по длительности, либо по участникам.
func (a *Activity) IsParticipantBased() bool {
	return len(a.Durations) == 0
}

// HasDuration returns true if the given duration option exists for the activity
func (a *Activity) HasDuration(duration string) bool {
	for _, d := range a.Durations {
		if d == duration {
			return true
		}
	}
	return false
}
