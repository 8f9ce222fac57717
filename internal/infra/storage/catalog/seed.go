package catalog

import (
	"github.com/explorio/booking-service/internal/domain"
	"github.com/explorio/booking-service/pkg/types"
)

// Демо-данные каталога: Кипр, курортная зона Ayia Napa — Protaras

var seedCategories = []domain.Category{
	{ID: "watersports", Name: "Watersports"},
	{ID: "boat-tours", Name: "Boat Tours"},
	{ID: "adventure", Name: "Adventure"},
	{ID: "culture", Name: "Culture"},
	{ID: "family", Name: "Family"},
	{ID: "food-drink", Name: "Food & Drink"},
}

var seedCities = []domain.City{
	{ID: "ayia-napa", Name: "Ayia Napa"},
	{ID: "protaras", Name: "Protaras"},
	{ID: "larnaca", Name: "Larnaca"},
	{ID: "limassol", Name: "Limassol"},
}

var seedProviders = []domain.Provider{
	{
		ID:          "pr-blue-lagoon",
		Name:        "Blue Lagoon Watersports",
		Address:     "Ayia Napa Marina, Shop 12, Ayia Napa 5330",
		Image:       "/images/providers/blue-lagoon.jpg",
		Description: "Family-run watersports centre at Ayia Napa Marina, operating since 2004. Certified instructors, modern equipment and daily departures all season.",
		Distance:    1.2,
		OpeningHours: map[string]string{
			"Monday":    "09:00 - 18:00",
			"Tuesday":   "09:00 - 18:00",
			"Wednesday": "09:00 - 18:00",
			"Thursday":  "09:00 - 18:00",
			"Friday":    "09:00 - 18:00",
			"Saturday":  "09:00 - 20:00",
			"Sunday":    domain.HoursClosed,
		},
		ActivityIDs: []string{"act-jetski", "act-parasail", "act-sea-caves"},
	},
	{
		ID:          "pr-napa-divers",
		Name:        "Napa Divers Club",
		Address:     "Kryou Nerou 28, Ayia Napa 5330",
		Image:       "/images/providers/napa-divers.jpg",
		Description: "PADI five-star dive centre offering discovery dives and boat cruises along the east coast sea caves.",
		Distance:    2.8,
		OpeningHours: map[string]string{
			"Monday":    "08:30 - 17:30",
			"Tuesday":   "08:30 - 17:30",
			"Wednesday": "08:30 - 17:30",
			"Thursday":  "08:30 - 17:30",
			"Friday":    "08:30 - 17:30",
			"Saturday":  "08:30 - 17:30",
			"Sunday":    "10:00 - 16:00",
		},
		ActivityIDs: []string{"act-scuba", "act-lagoon-cruise"},
	},
	{
		ID:          "pr-cape-adventures",
		Name:        "Cape Greco Adventures",
		Address:     "Cavo Greko Ave 4, Protaras 5296",
		Image:       "/images/providers/cape-adventures.jpg",
		Description: "Off-road buggy safaris and guided hikes around the Cape Greco national park.",
		Distance:    5.4,
		OpeningHours: map[string]string{
			"Monday":    "09:00 - 17:00",
			"Tuesday":   "09:00 - 17:00",
			"Wednesday": "09:00 - 17:00",
			"Thursday":  "09:00 - 17:00",
			"Friday":    "09:00 - 17:00",
			"Saturday":  domain.HoursClosed,
			"Sunday":    domain.HoursClosed,
		},
		ActivityIDs: []string{"act-buggy", "act-waterpark"},
	},
	{
		ID:          "pr-taste-cyprus",
		Name:        "Taste of Cyprus Tours",
		Address:     "Anexartisias 45, Limassol 3040",
		Image:       "/images/providers/taste-cyprus.jpg",
		Description: "Small-group food and wine experiences across traditional villages of the Limassol wine region.",
		Distance:    68.0,
		OpeningHours: map[string]string{
			"Monday":    "10:00 - 19:00",
			"Tuesday":   "10:00 - 19:00",
			"Wednesday": "10:00 - 19:00",
			"Thursday":  "10:00 - 19:00",
			"Friday":    "10:00 - 21:00",
			"Saturday":  "10:00 - 21:00",
			"Sunday":    domain.HoursClosed,
		},
		ActivityIDs: []string{"act-wine"},
	},
}

var seedActivities = []domain.Activity{
	{
		ID:            "act-jetski",
		Name:          "Jet Ski Safari",
		Category:      "watersports",
		City:          "ayia-napa",
		ProviderID:    "pr-blue-lagoon",
		Currency:      "€",
		Price:         50.00,
		Duration:      "30 minutes",
		Distance:      1.2,
		Description:   "Ride a brand-new jet ski along the famous Ayia Napa coastline with a guide leading the way.",
		WhatsIncluded: []string{"Jet ski rental", "Safety briefing", "Life jackets", "Fuel"},
		WhatToBring:   []string{"Swimwear", "Sunscreen", "Towel"},
		Images:        []string{"/images/activities/jetski-1.jpg", "/images/activities/jetski-2.jpg"},
	},
	{
		ID:            "act-parasail",
		Name:          "Parasailing Experience",
		Category:      "watersports",
		City:          "ayia-napa",
		ProviderID:    "pr-blue-lagoon",
		Currency:      "€",
		Price:         65.00,
		Duration:      "45 minutes",
		Distance:      1.2,
		Description:   "Soar up to 100 metres above the Mediterranean for unbeatable views of Nissi Beach.",
		WhatsIncluded: []string{"Boat trip", "Harness and equipment", "Insurance"},
		WhatToBring:   []string{"Swimwear", "Camera strap"},
		Images:        []string{"/images/activities/parasail-1.jpg"},
	},
	{
		ID:            "act-sea-caves",
		Name:          "Sea Caves Kayak Tour",
		Category:      "adventure",
		City:          "protaras",
		ProviderID:    "pr-blue-lagoon",
		Currency:      "€",
		Price:         45.00,
		Duration:      "2.5 hours",
		Distance:      4.1,
		Description:   "Paddle through the Cape Greco sea caves with a certified guide, swimming stops included.",
		WhatsIncluded: []string{"Kayak and paddle", "Dry bag", "Snorkelling gear"},
		WhatToBring:   []string{"Water shoes", "Sunscreen", "Water bottle"},
		Images:        []string{"/images/activities/kayak-1.jpg", "/images/activities/kayak-2.jpg"},
	},
	{
		ID:            "act-scuba",
		Name:          "Discover Scuba Diving",
		Category:      "adventure",
		City:          "ayia-napa",
		ProviderID:    "pr-napa-divers",
		Currency:      "€",
		Price:         80.00,
		Durations:     []string{"2 hours", "Half day"},
		Duration:      "2 hours",
		Distance:      2.8,
		Description:   "First-time dive in sheltered waters with a PADI instructor. No experience needed.",
		WhatsIncluded: []string{"Full scuba equipment", "PADI instructor", "Pool briefing", "One open-water dive"},
		WhatToBring:   []string{"Swimwear", "Towel"},
		Images:        []string{"/images/activities/scuba-1.jpg"},
	},
	{
		ID:            "act-lagoon-cruise",
		Name:          "Blue Lagoon Cruise",
		Category:      "boat-tours",
		City:          "protaras",
		ProviderID:    "pr-napa-divers",
		Currency:      "€",
		Price:         35.00,
		Durations:     []string{"3 hours", "Full day"},
		Duration:      "3 hours",
		Distance:      3.5,
		Description:   "Lazy cruise to the Blue Lagoon with swimming and snorkelling stops and an open deck bar.",
		WhatsIncluded: []string{"Boat cruise", "Snorkelling equipment", "Soft drinks"},
		WhatToBring:   []string{"Swimwear", "Hat", "Sunscreen"},
		Images:        []string{"/images/activities/cruise-1.jpg", "/images/activities/cruise-2.jpg"},
	},
	{
		ID:            "act-buggy",
		Name:          "Buggy Safari to Cape Greco",
		Category:      "adventure",
		City:          "protaras",
		ProviderID:    "pr-cape-adventures",
		Currency:      "€",
		Price:         120.00,
		Durations:     []string{"2 hours", "4 hours"},
		Duration:      "2 hours",
		Distance:      5.4,
		Description:   "Self-drive buggy adventure over coastal trails and through the national park, convoy led by a guide.",
		WhatsIncluded: []string{"Buggy rental (2 seats)", "Helmets and goggles", "Guide", "Fuel"},
		WhatToBring:   []string{"Closed shoes", "Sunglasses", "Driving licence"},
		Images:        []string{"/images/activities/buggy-1.jpg"},
	},
	{
		ID:            "act-waterpark",
		Name:          "WaterWorld Day Pass",
		Category:      "family",
		City:          "ayia-napa",
		ProviderID:    "pr-cape-adventures",
		Currency:      "€",
		Price:         38.00,
		Duration:      "Full day",
		Distance:      2.0,
		Description:   "Full-day entry to the largest themed waterpark in Europe. Slides for all ages.",
		WhatsIncluded: []string{"Day entry ticket", "Sunbed"},
		WhatToBring:   []string{"Swimwear", "Towel", "Sunscreen"},
		Images:        []string{"/images/activities/waterpark-1.jpg"},
	},
	{
		ID:            "act-wine",
		Name:          "Cyprus Wine Tasting",
		Category:      "food-drink",
		City:          "limassol",
		ProviderID:    "pr-taste-cyprus",
		Currency:      "€",
		Price:         40.00,
		Duration:      "1.5 hours",
		Distance:      68.0,
		Description:   "Guided tasting of six local wines including Commandaria, with village cheese and bread.",
		WhatsIncluded: []string{"Six wine tastings", "Local snacks", "Sommelier guide"},
		WhatToBring:   []string{"Valid ID"},
		Images:        []string{"/images/activities/wine-1.jpg"},
	},
}

var seedAddOns = []domain.AddOn{
	{
		ID:          "addon-photos",
		Name:        "Photo Package",
		Price:       20.00,
		Description: "Professional action photos delivered digitally within 24 hours",
		Image:       "/images/addons/photos.jpg",
	},
	{
		ID:          "addon-gopro",
		Name:        "GoPro Rental",
		Price:       15.00,
		Description: "GoPro HERO12 with chest mount and 64GB memory card",
		Image:       "/images/addons/gopro.jpg",
	},
	{
		ID:          "addon-lunch",
		Name:        "Lunch Box",
		Price:       12.00,
		Description: "Sandwich, fruit, snack and a bottle of water",
		Image:       "/images/addons/lunch.jpg",
	},
	{
		ID:          "addon-transfer",
		Name:        "Hotel Transfer",
		Price:       10.00,
		Description: "Return transfer from any hotel in the Ayia Napa / Protaras area",
		Image:       "/images/addons/transfer.jpg",
	},
	{
		ID:          "addon-insurance",
		Name:        "Cancellation Protection",
		Price:       8.00,
		Description: "Free cancellation up to 2 hours before the start",
		Image:       "/images/addons/insurance.jpg",
	},
}

var seedBundles = []domain.Bundle{
	{Name: "Combo Saver", Description: "Book two activities with the same provider and save 10%"},
	{Name: "Family Sunday", Description: "Children join free on Sunday departures"},
}

var seedTimeSlots = []types.TimeString{
	"09:00", "10:00", "11:00", "12:00",
	"13:00", "14:00", "15:00", "16:00", "17:00",
}
