package store

import (
	"context"

	"github.com/youssefchaouch/dental-practice-api/internal/models"
)

// ActiveServices lists the bookable service catalog, name ascending.
func (s *Store) ActiveServices(ctx context.Context) ([]models.Service, error) {
	var services []models.Service
	err := s.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("name ASC").
		Find(&services).Error
	if err != nil {
		return nil, err
	}
	if services == nil {
		services = make([]models.Service, 0)
	}
	return services, nil
}

// ApprovedReviews lists publicly visible reviews, newest first.
// Unapproved reviews are never returned here.
func (s *Store) ApprovedReviews(ctx context.Context) ([]models.Review, error) {
	var reviews []models.Review
	err := s.db.WithContext(ctx).
		Where("is_approved = ?", true).
		Order("created_at DESC").
		Find(&reviews).Error
	if err != nil {
		return nil, err
	}
	if reviews == nil {
		reviews = make([]models.Review, 0)
	}
	return reviews, nil
}

// CreateReview persists a visitor review. isApproved is always false on
// creation regardless of what the caller submitted; approval is a
// separate administrative step.
func (s *Store) CreateReview(ctx context.Context, patientName string, rating int, comment string) (*models.Review, error) {
	review := models.Review{
		PatientName: patientName,
		Rating:      rating,
		Comment:     comment,
		IsApproved:  false,
	}
	if err := s.db.WithContext(ctx).Create(&review).Error; err != nil {
		return nil, err
	}
	return &review, nil
}

// ApproveReview flips a review to publicly visible.
func (s *Store) ApproveReview(ctx context.Context, id string) error {
	return s.db.WithContext(ctx).
		Model(&models.Review{}).
		Where("id = ?", id).
		Update("is_approved", true).Error
}
