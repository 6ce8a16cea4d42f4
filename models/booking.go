package models

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Booking links a customer to a service (and optionally a dress) for a
// priced amount on an event date. Remaining is always Price - Paid.
type Booking struct {
	ID uuid.UUID `gorm:"type:uuid;primary_key"`

	Code       string    `gorm:"uniqueIndex;not null"` // department-prefixed, e.g. DR-20260830-X4K2P9
	CustomerID uuid.UUID `gorm:"type:uuid;index;not null"`

	// Display copies kept in sync by the customer rename cascade.
	BrideName string `gorm:"not null;index"`
	GroomName string

	Department  string    `gorm:"type:varchar(20);not null"`
	ServiceID   uuid.UUID `gorm:"type:uuid;index;not null"`
	ServiceName string    `gorm:"not null"`

	DressID *uuid.UUID `gorm:"type:uuid;index"` // required when Department is dresses

	EventDate Date            `gorm:"type:date;not null"`
	Price     decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	Paid      decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	Remaining decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	Notes     string

	Payments []Payment `gorm:"foreignKey:BookingID"`

	gorm.Model
}

func (b *Booking) BeforeCreate(tx *gorm.DB) (err error) {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	return
}
