package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Review is visitor-submitted and hidden until a staff member approves
// it. The public listing never returns unapproved records.
type Review struct {
	ID          string    `gorm:"type:uuid;primaryKey" json:"id"`
	PatientName string    `gorm:"not null" json:"patientName"`
	Rating      int       `gorm:"not null;check:rating >= 1 AND rating <= 5" json:"rating"`
	Comment     string    `gorm:"type:text" json:"comment"`
	IsApproved  bool      `gorm:"default:false;index" json:"isApproved"`
	CreatedAt   time.Time `json:"createdAt"`
}

func (r *Review) BeforeCreate(tx *gorm.DB) error {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	return nil
}
