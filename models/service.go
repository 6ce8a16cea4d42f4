package models

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Atelier departments. The prefix is used when generating booking codes.
const (
	DeptMakeup      = "makeup"
	DeptPhotography = "photography"
	DeptHair        = "hair"
	DeptSkincare    = "skincare"
	DeptDresses     = "dresses"
)

var departmentPrefixes = map[string]string{
	DeptMakeup:      "MK",
	DeptPhotography: "PH",
	DeptHair:        "HR",
	DeptSkincare:    "SK",
	DeptDresses:     "DR",
}

func ValidDepartment(department string) bool {
	_, ok := departmentPrefixes[department]
	return ok
}

func DepartmentPrefix(department string) string {
	if prefix, ok := departmentPrefixes[department]; ok {
		return prefix
	}
	return "BK"
}

type Service struct {
	ID uuid.UUID `gorm:"type:uuid;primary_key"`

	Department     string          `gorm:"type:varchar(20);not null;index"`
	Name           string          `gorm:"not null"`
	SuggestedPrice decimal.Decimal `gorm:"type:decimal(12,2);not null"`

	gorm.Model
}

func (s *Service) BeforeCreate(tx *gorm.DB) (err error) {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return
}
