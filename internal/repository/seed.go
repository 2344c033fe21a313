package repository

import (
	"time"

	"github.com/finestevents/backend/internal/domain"
)

// SeedEvents returns the portfolio fixture used by the in-memory store and by
// cmd/seed. Timestamps are staggered so newest-first ordering is stable.
func SeedEvents() []domain.Event {
	base := time.Date(2024, time.December, 1, 12, 0, 0, 0, time.UTC)
	events := []domain.Event{
		{
			Title:       "Elegant Garden Wedding",
			Description: "A breathtaking outdoor celebration featuring romantic garden ambiance with custom floral installations, candlelit pathways, and an exquisite reception under the stars. Every detail was meticulously crafted to create an unforgettable experience for 200 guests.",
			Category:    "Wedding",
			ImageURL:    "/assets/portfolio/garden-wedding.png",
			Location:    "The Botanical Gardens, San Francisco",
			EventDate:   "June 2024",
			GuestCount:  200,
			IsFeatured:  true,
		},
		{
			Title:       "Annual Corporate Gala",
			Description: "A sophisticated black-tie event showcasing innovation and excellence. Featured state-of-the-art AV production, interactive brand experiences, and world-class entertainment that impressed 500+ industry leaders and stakeholders.",
			Category:    "Corporate",
			ImageURL:    "/assets/portfolio/corporate-gala.png",
			Location:    "Grand Hyatt, New York",
			EventDate:   "October 2023",
			GuestCount:  500,
			IsFeatured:  true,
		},
		{
			Title:       "Tropical Destination Wedding",
			Description: "An intimate beachfront ceremony in paradise, complete with sunset vows, tropical florals, and a stunning reception pavilion. We coordinated every detail from travel logistics to local vendor management for this dream destination celebration.",
			Category:    "Destination",
			ImageURL:    "/assets/portfolio/destination-wedding.png",
			Location:    "Maui, Hawaii",
			EventDate:   "March 2024",
			GuestCount:  75,
			IsFeatured:  true,
		},
		{
			Title:       "Milestone Birthday Celebration",
			Description: "An upscale private party celebrating a special milestone with sophisticated cocktail service, gourmet cuisine, and elegant entertainment. The intimate atmosphere featured custom décor in burgundy and gold tones creating a memorable evening.",
			Category:    "Private",
			ImageURL:    "/assets/portfolio/private-party.png",
			Location:    "Private Estate, Beverly Hills",
			EventDate:   "September 2023",
			GuestCount:  50,
			IsFeatured:  true,
		},
		{
			Title:       "Executive Team Building Retreat",
			Description: "A transformative multi-day corporate retreat combining professional development with luxury hospitality. Featured interactive workshops, networking dinners, and team activities in an inspiring mountain setting.",
			Category:    "Corporate",
			ImageURL:    "/assets/portfolio/corporate-retreat.png",
			Location:    "Aspen, Colorado",
			EventDate:   "January 2024",
			GuestCount:  100,
			IsFeatured:  false,
		},
		{
			Title:       "Intimate Vineyard Wedding",
			Description: "A charming wedding celebration amid rolling vineyards, featuring farm-to-table dining, wine pairings, and rustic elegance. The ceremony took place at golden hour with reception in a beautifully restored barn.",
			Category:    "Wedding",
			ImageURL:    "/assets/portfolio/vineyard-wedding.png",
			Location:    "Napa Valley, California",
			EventDate:   "May 2024",
			GuestCount:  120,
			IsFeatured:  false,
		},
	}
	for i := range events {
		ts := base.Add(-time.Duration(i) * time.Hour)
		events[i].CreatedAt = ts
		events[i].UpdatedAt = ts
	}
	return events
}
