package domain

import "time"

// CatalogService represents a bookable offering of a business
// Price and duration edits do not retroactively affect existing
// reservations: both are copied into the reservation at creation time
type CatalogService struct {
	ID              int64
	BusinessID      int64
	Name            string
	DurationMinutes int
	Price           float64
	Category        string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
