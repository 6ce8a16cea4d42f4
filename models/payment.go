package models

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Payment struct {
	ID uuid.UUID `gorm:"type:uuid;primary_key"`

	BookingID uuid.UUID       `gorm:"type:uuid;index;not null"`
	PaidOn    Date            `gorm:"type:date;not null"`
	Amount    decimal.Decimal `gorm:"type:decimal(12,2);not null"`

	// Display copies from the booking at record time.
	BrideName string `gorm:"index"`
	GroomName string

	// Booking balance right after this payment was recorded.
	RemainingAfter decimal.Decimal `gorm:"type:decimal(12,2);not null"`

	Notes string

	gorm.Model
}

func (p *Payment) BeforeCreate(tx *gorm.DB) (err error) {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return
}
