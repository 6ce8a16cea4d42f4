package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Dress statuses.
const (
	DressAvailable   = "available"
	DressBooked      = "booked"
	DressAtCleaners  = "at_cleaners"
	DressUnderRepair = "under_repair"
)

func ValidDressStatus(status string) bool {
	switch status {
	case DressAvailable, DressBooked, DressAtCleaners, DressUnderRepair:
		return true
	}
	return false
}

type Dress struct {
	ID uuid.UUID `gorm:"type:uuid;primary_key"`

	Code        string `gorm:"not null;index"` // user-supplied, unique among live rows
	Category    string
	PurchasedOn Date `gorm:"type:date"`
	Description string
	ImagePath   string // reference into the external asset store
	Status      string `gorm:"type:varchar(20);default:'available'"`

	gorm.Model
}

func (d *Dress) BeforeCreate(tx *gorm.DB) (err error) {
	if d.ID == uuid.Nil {
		d.ID = uuid.New()
	}
	return
}
