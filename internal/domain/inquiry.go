package domain

import "time"

// Inquiry is a contact-form submission. Inquiries are never deleted; the
// admin dashboard only flips IsRead.
type Inquiry struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	EventType string    `json:"eventType"`
	Message   string    `json:"message"`
	IsRead    bool      `json:"isRead"`
	CreatedAt time.Time `json:"createdAt"`
}
