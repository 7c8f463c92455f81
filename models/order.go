package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Order keeps monetary fields in their original decimal-string form.
// Balance and PayoffStatus are derived server-side on every write and are
// never trusted from input. PrescriptionID is a soft reference: it may point
// at a prescription that no longer exists.
type Order struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key"`
	CustomerID     uuid.UUID `gorm:"type:uuid;index;not null"`
	PrescriptionID uuid.UUID `gorm:"type:uuid"`

	OrderDate time.Time

	Height     float64
	Frame      string
	FramePrice string
	Lens       string
	LensPrice  string

	TotalAmount float64
	Discount    string
	FinalAmount string
	Deposit     string
	Balance     string
	BalancePaid string

	PayoffStatus string `gorm:"type:varchar(20)"` // Pending, Partial, Paid

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (o *Order) BeforeCreate(tx *gorm.DB) (err error) {
	if o.ID == uuid.Nil {
		o.ID = uuid.New()
	}
	return
}
