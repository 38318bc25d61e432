package domain

import "time"

// ProfessionalStatus represents the operating status of a professional
type ProfessionalStatus string

const (
	ProfessionalActive ProfessionalStatus = "active"
	ProfessionalAway   ProfessionalStatus = "away"
)

// Professional represents a bookable staff member of a business
type Professional struct {
	ID             int64
	BusinessID     int64
	Name           string
	CommissionRate float64 // процент комиссии (0-100)
	Status         ProfessionalStatus
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// IsBookable returns true if the professional currently accepts bookings
func (p *Professional) IsBookable() bool {
	return p.Status == ProfessionalActive
}
