package store

import (
	"context"
	"time"

	"github.com/MMoizSiddiqui/JOB-PORTAL-fullstack/internal/models"
)

// CreateReview appends a review. Reviews are immutable once created and carry
// no reference to any job or user.
func (s *Store) CreateReview(ctx context.Context, name string, rating int, comment string) (*models.Review, error) {
	if rating < 1 || rating > 5 {
		return nil, ErrInvalidRating
	}

	review := &models.Review{
		Name:    name,
		Rating:  rating,
		Comment: comment,
		Date:    time.Now(),
	}
	if err := s.db.WithContext(ctx).Create(review).Error; err != nil {
		return nil, err
	}
	return review, nil
}

func (s *Store) ListReviews(ctx context.Context) ([]models.Review, error) {
	var reviews []models.Review
	if err := s.db.WithContext(ctx).Order("date DESC").Find(&reviews).Error; err != nil {
		return nil, err
	}
	return reviews, nil
}

// DeleteReview is the only mutation reviews allow, and it is admin-only (the
// handler gates it).
func (s *Store) DeleteReview(ctx context.Context, reviewID uint) error {
	res := s.db.WithContext(ctx).Delete(&models.Review{}, reviewID)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrReviewNotFound
	}
	return nil
}
