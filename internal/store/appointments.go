package store

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/youssefchaouch/dental-practice-api/internal/models"
)

// AppointmentInput carries a validated booking request ready for
// persistence.
type AppointmentInput struct {
	PatientID     string
	Service       string
	PreferredDate time.Time
	PreferredTime string
	Notes         string
}

// StatusUpdate carries the optional scheduling fields a staff member
// may assign alongside a lifecycle transition.
type StatusUpdate struct {
	Status        models.AppointmentStatus
	ActualDate    *time.Time
	ActualTime    string
	GoogleEventID string
}

// CreateAppointment persists a new pending appointment and returns it
// with the owning patient preloaded.
func (s *Store) CreateAppointment(ctx context.Context, in AppointmentInput) (*models.Appointment, error) {
	apt := models.Appointment{
		PatientID:     in.PatientID,
		Service:       in.Service,
		PreferredDate: in.PreferredDate,
		PreferredTime: in.PreferredTime,
		Notes:         in.Notes,
		Status:        models.StatusPending,
	}
	if err := s.db.WithContext(ctx).Omit("Patient").Create(&apt).Error; err != nil {
		return nil, err
	}
	return s.AppointmentByID(ctx, apt.ID)
}

// AppointmentsByStatus lists appointments newest-first, optionally
// filtered to one lifecycle status. An empty status returns all.
func (s *Store) AppointmentsByStatus(ctx context.Context, status models.AppointmentStatus) ([]models.Appointment, error) {
	q := s.db.WithContext(ctx).Preload("Patient").Order("created_at DESC")
	if status != "" {
		q = q.Where("status = ?", status)
	}
	var appointments []models.Appointment
	if err := q.Find(&appointments).Error; err != nil {
		return nil, err
	}
	if appointments == nil {
		appointments = make([]models.Appointment, 0)
	}
	return appointments, nil
}

// AppointmentByID fetches a single appointment with its patient, or
// gorm.ErrRecordNotFound.
func (s *Store) AppointmentByID(ctx context.Context, id string) (*models.Appointment, error) {
	var apt models.Appointment
	if err := s.db.WithContext(ctx).Preload("Patient").Where("id = ?", id).Take(&apt).Error; err != nil {
		return nil, err
	}
	return &apt, nil
}

// UpdateAppointmentStatus applies a lifecycle transition. Concurrent
// transitions on the same appointment are last-write-wins; there is no
// appointment-level locking. Returns the updated record with its
// patient, or gorm.ErrRecordNotFound for an unknown id.
func (s *Store) UpdateAppointmentStatus(ctx context.Context, id string, upd StatusUpdate) (*models.Appointment, error) {
	fields := map[string]any{"status": upd.Status}
	if upd.ActualDate != nil {
		fields["actual_date"] = upd.ActualDate
	}
	if upd.ActualTime != "" {
		fields["actual_time"] = upd.ActualTime
	}
	if upd.GoogleEventID != "" {
		fields["google_event_id"] = upd.GoogleEventID
	}

	res := s.db.WithContext(ctx).Model(&models.Appointment{}).Where("id = ?", id).Updates(fields)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return s.AppointmentByID(ctx, id)
}
