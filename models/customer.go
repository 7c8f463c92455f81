package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Customer stores the phone as digits only (exactly 10 when present);
// display formatting is derived, never stored. The address is kept as
// structured fields, the single-line form is a projection.
type Customer struct {
	ID uuid.UUID `gorm:"type:uuid;primary_key"`

	Name  string `gorm:"not null"`
	Email string
	Phone string `gorm:"index"`

	Street string
	City   string
	State  string
	Zip    string

	Prescriptions []Prescription `gorm:"foreignKey:CustomerID" json:"-"`
	Orders        []Order        `gorm:"foreignKey:CustomerID" json:"-"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (c *Customer) BeforeCreate(tx *gorm.DB) (err error) {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return
}
