package store

import (
	"context"
	"time"

	"gorm.io/gorm/clause"

	"github.com/youssefchaouch/dental-practice-api/internal/models"
)

// PatientInput carries the identity fields from a booking submission.
type PatientInput struct {
	FirstName   string
	LastName    string
	Email       string
	Phone       string
	DateOfBirth *time.Time
	Address     string
}

// UpsertPatientByEmail inserts a patient or, when the email already
// exists, updates the contact fields in place. The choice between
// insert and update happens atomically in the database (ON CONFLICT on
// the unique email index), so concurrent bookings under the same email
// cannot duplicate the patient.
func (s *Store) UpsertPatientByEmail(ctx context.Context, in PatientInput) (*models.Patient, error) {
	patient := models.Patient{
		FirstName:   in.FirstName,
		LastName:    in.LastName,
		Email:       in.Email,
		Phone:       in.Phone,
		DateOfBirth: in.DateOfBirth,
		Address:     in.Address,
	}

	// The booking form leaves date of birth and address optional; an
	// absent field must not wipe a value stored by an earlier booking,
	// so only provided fields join the update list.
	cols := []string{"first_name", "last_name", "phone", "updated_at"}
	if in.DateOfBirth != nil {
		cols = append(cols, "date_of_birth")
	}
	if in.Address != "" {
		cols = append(cols, "address")
	}

	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "email"}},
		DoUpdates: clause.AssignmentColumns(cols),
	}).Create(&patient).Error
	if err != nil {
		return nil, err
	}

	// On the update path the generated ID above is discarded by the
	// database; read back the canonical row.
	var out models.Patient
	if err := s.db.WithContext(ctx).Where("email = ?", in.Email).Take(&out).Error; err != nil {
		return nil, err
	}
	return &out, nil
}

// PatientByEmail returns the patient for an email address, or
// gorm.ErrRecordNotFound.
func (s *Store) PatientByEmail(ctx context.Context, email string) (*models.Patient, error) {
	var patient models.Patient
	if err := s.db.WithContext(ctx).Where("email = ?", email).Take(&patient).Error; err != nil {
		return nil, err
	}
	return &patient, nil
}
