package service

import (
	"context"
	"errors"

	"github.com/Romaissazr/travel-agency/internal/models"
	"github.com/Romaissazr/travel-agency/internal/repository"
	"github.com/Romaissazr/travel-agency/pkg/rabbitmq"
	"gorm.io/gorm"
)

type ReviewService interface {
	AddOrUpdateReview(ctx context.Context, userID, tourID uint, rating float64, comment string) error
	ListTourReviews(ctx context.Context, tourID uint) ([]models.Review, error)
}

type reviewService struct {
	reviewRepo repository.ReviewRepository
	tourRepo   repository.TourRepository
	userRepo   repository.UserRepository
	publisher  *rabbitmq.Publisher
}

func NewReviewService(
	reviewRepo repository.ReviewRepository,
	tourRepo repository.TourRepository,
	userRepo repository.UserRepository,
	publisher *rabbitmq.Publisher,
) ReviewService {
	return &reviewService{
		reviewRepo: reviewRepo,
		tourRepo:   tourRepo,
		userRepo:   userRepo,
		publisher:  publisher,
	}
}

// AddOrUpdateReview upserts the (user, tour) review and recomputes the
// tour's rating from all remaining reviews. A second submission by the same
// user overwrites the first instead of adding a record.
func (s *reviewService) AddOrUpdateReview(ctx context.Context, userID, tourID uint, rating float64, comment string) error {
	if rating < 0 || rating > 5 {
		return ErrRatingOutOfRange
	}
	if _, err := s.userRepo.FindByID(ctx, userID); err != nil {
		return ErrUserNotFound
	}

	var review *models.Review

	err := s.reviewRepo.GetDB().WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		tour, err := s.tourRepo.FindByIDForUpdate(ctx, tx, tourID)
		if err != nil {
			return ErrTourNotFound
		}

		existing, err := s.reviewRepo.FindByUserAndTour(ctx, tx, userID, tour.ID)
		switch {
		case err == nil:
			existing.Rating = rating
			existing.Comment = comment
			if err := s.reviewRepo.Save(ctx, tx, existing); err != nil {
				return err
			}
			review = existing
		case errors.Is(err, gorm.ErrRecordNotFound):
			review = &models.Review{
				UserID:  userID,
				TourID:  tour.ID,
				Rating:  rating,
				Comment: comment,
			}
			if err := s.reviewRepo.Create(ctx, tx, review); err != nil {
				return err
			}
		default:
			return err
		}

		reviews, err := s.reviewRepo.FindByTourID(ctx, tx, tour.ID)
		if err != nil {
			return err
		}
		return s.tourRepo.UpdateRating(ctx, tx, tour.ID, DeriveRating(reviews))
	})
	if err != nil {
		return err
	}

	if s.publisher != nil {
		_ = s.publisher.Publish("review.upserted", review)
	}
	return nil
}

func (s *reviewService) ListTourReviews(ctx context.Context, tourID uint) ([]models.Review, error) {
	return s.reviewRepo.FindByTourID(ctx, s.reviewRepo.GetDB(), tourID)
}
