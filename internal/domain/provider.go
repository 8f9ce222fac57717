package domain

// Provider represents a service provider operating one or more activities
type Provider struct {
	ID          string
	Name        string
	Address     string
	Image       string
	Description string
	Distance    float64

	// OpeningHours расписание день недели -> часы работы
	// Значение HoursClosed означает выходной
	OpeningHours map[string]string

	ActivityIDs []string
}

// IsClosedOn returns true if the provider is closed on the given day
func (p *Provider) IsClosedOn(day string) bool {
	hours, ok := p.OpeningHours[day]
	if !ok {
		return true
	}
	return hours == HoursClosed
}

// OffersActivity returns true if the provider operates the given activity
func (p *Provider) OffersActivity(activityID string) bool {
	for _, id := range p.ActivityIDs {
		if id == activityID {
			return true
		}
	}
	return false
}
