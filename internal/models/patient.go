package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Patient is keyed by email: repeat bookings under the same address
// update contact fields instead of creating a second record.
type Patient struct {
	ID          string     `gorm:"type:uuid;primaryKey" json:"id"`
	FirstName   string     `gorm:"not null" json:"firstName"`
	LastName    string     `gorm:"not null" json:"lastName"`
	Email       string     `gorm:"uniqueIndex;not null" json:"email"`
	Phone       string     `gorm:"not null" json:"phone"`
	DateOfBirth *time.Time `json:"dateOfBirth,omitempty"`
	Address     string     `json:"address,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

func (p *Patient) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}
