// Package pricing implements the budget estimator shown on the planner page.
// The coefficients mirror the published rate card; the result is a display
// heuristic, not a quote.
package pricing

import (
	"errors"
	"math"
)

var (
	ErrUnknownPackage = errors.New("unknown guest package")
	ErrUnknownDecor   = errors.New("unknown decor option")
)

// defaultBase is used for event types outside the rate card ("Other" and any
// free-text category).
const defaultBase = 350000

var basePricing = map[string]float64{
	"Wedding":     650000,
	"Corporate":   420000,
	"Private":     280000,
	"Destination": 900000,
	"Other":       350000,
}

// Guest packages are fixed tiers keyed by headcount.
var packageMultipliers = map[int]float64{
	50:  1,
	100: 1.4,
	200: 1.85,
	350: 2.4,
}

// Venues outside the serviced cities carry no surcharge.
var locationMultipliers = map[string]float64{
	"Mumbai": 1.3,
	"Pune":   1.1,
	"Delhi":  1.25,
}

var decorMultipliers = map[string]float64{
	"Simple":       1,
	"Intermediate": 1.4,
	"Premium":      1.9,
}

// Estimate returns the budget in whole rupees:
// base(eventType) × package(guests) × location × decor.
func Estimate(eventType string, guests int, location, decor string) (int64, error) {
	base, ok := basePricing[eventType]
	if !ok {
		base = defaultBase
	}

	pkg, ok := packageMultipliers[guests]
	if !ok {
		return 0, ErrUnknownPackage
	}

	loc, ok := locationMultipliers[location]
	if !ok {
		loc = 1
	}

	dec, ok := decorMultipliers[decor]
	if !ok {
		return 0, ErrUnknownDecor
	}

	return int64(math.Round(base * pkg * loc * dec)), nil
}

// GuestPackages lists the supported package headcounts, for prompt assembly
// and client option lists.
func GuestPackages() []int {
	return []int{50, 100, 200, 350}
}

func EventTypes() []string {
	return []string{"Wedding", "Corporate", "Private", "Destination", "Other"}
}

func Locations() []string {
	return []string{"Mumbai", "Pune", "Delhi"}
}

func DecorOptions() []string {
	return []string{"Simple", "Intermediate", "Premium"}
}
