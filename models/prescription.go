package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Prescription has its own lifecycle: it is not removed when the owning
// customer is deleted. Optical values are stored as entered, without range
// checks.
type Prescription struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key"`
	CustomerID uuid.UUID `gorm:"type:uuid;index;not null"`

	DateIssued time.Time

	RSphere   float64
	RCylinder float64
	RAxis     float64
	LSphere   float64
	LCylinder float64
	LAxis     float64
	PD        float64
	Add       float64

	Notes string

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (p *Prescription) BeforeCreate(tx *gorm.DB) (err error) {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return
}
