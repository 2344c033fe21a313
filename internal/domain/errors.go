package domain

import "errors"

var (
	// ErrNotFound is returned when a record id is unknown.
	ErrNotFound = errors.New("not found")

	// ErrDateBlocked is returned when a booking targets a date that already
	// has an accepted booking.
	ErrDateBlocked = errors.New("date is already booked")

	// ErrUpstream is returned when an external provider call fails.
	ErrUpstream = errors.New("upstream provider failure")
)
