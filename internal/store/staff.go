package store

import (
	"context"

	"github.com/youssefchaouch/dental-practice-api/internal/models"
)

// CreateStaffUser persists a dashboard account. The password must
// already be hashed. A duplicate email surfaces as
// gorm.ErrDuplicatedKey.
func (s *Store) CreateStaffUser(ctx context.Context, user *models.StaffUser) error {
	return s.db.WithContext(ctx).Create(user).Error
}

// StaffUserByEmail returns the account for a login attempt, or
// gorm.ErrRecordNotFound.
func (s *Store) StaffUserByEmail(ctx context.Context, email string) (*models.StaffUser, error) {
	var user models.StaffUser
	if err := s.db.WithContext(ctx).Where("email = ?", email).Take(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}
