package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Customer struct {
	ID uuid.UUID `gorm:"type:uuid;primary_key"`

	RegisteredOn Date   `gorm:"type:date"`
	BrideName    string `gorm:"not null;index"`
	GroomName    string
	Address      string
	Phone1       string `gorm:"not null"`
	Phone2       string
	Notes        string

	Bookings []Booking `gorm:"foreignKey:CustomerID"`

	gorm.Model
}

func (c *Customer) BeforeCreate(tx *gorm.DB) (err error) {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return
}
