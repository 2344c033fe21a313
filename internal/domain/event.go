package domain

import "time"

// Event is a portfolio entry shown on the public site. Category is a free-text
// label; the planner UI offers Wedding, Corporate, Private, Destination and
// Other but nothing enforces the list server-side.
type Event struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	ImageURL    string    `json:"imageUrl"`
	Location    string    `json:"location,omitempty"`
	EventDate   string    `json:"eventDate,omitempty"`
	GuestCount  int       `json:"guestCount,omitempty"`
	IsFeatured  bool      `json:"isFeatured"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}
