package domain

import "time"

type BookingStatus string

const (
	BookingStatusPending  BookingStatus = "pending"
	BookingStatusAccepted BookingStatus = "accepted"
	BookingStatusRejected BookingStatus = "rejected"
)

// IsDecision reports whether s is one of the admin decision states.
func (s BookingStatus) IsDecision() bool {
	return s == BookingStatusAccepted || s == BookingStatusRejected
}

// Booking is a customer request for a calendar date. Date is a plain
// YYYY-MM-DD string; the blocked-date check is an exact string comparison.
type Booking struct {
	ID        string        `json:"id"`
	Name      string        `json:"name"`
	Email     string        `json:"email"`
	EventType string        `json:"eventType"`
	Guests    int           `json:"guests"`
	Location  string        `json:"location"`
	Decor     string        `json:"decor"`
	Date      string        `json:"date"`
	Status    BookingStatus `json:"status"`
	CreatedAt time.Time     `json:"createdAt"`
}
