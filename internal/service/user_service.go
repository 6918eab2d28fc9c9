package service

import (
	"context"
	"errors"
	"time"

	"github.com/Romaissazr/travel-agency/internal/models"
	"github.com/Romaissazr/travel-agency/internal/repository"
	"github.com/Romaissazr/travel-agency/pkg/rabbitmq"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const tokenTTL = 72 * time.Hour

// CascadeSummary reports what a user deletion removed.
type CascadeSummary struct {
	BookingsDeleted int64
	ReviewsDeleted  int64
}

type UserService interface {
	Register(ctx context.Context, firstName, lastName, email, password string) (*models.User, error)
	Login(ctx context.Context, email, password string) (string, *models.User, error)
	GetUser(ctx context.Context, id uint) (*models.User, error)
	DeleteUser(ctx context.Context, id uint) (*CascadeSummary, error)
}

type userService struct {
	userRepo    repository.UserRepository
	bookingRepo repository.BookingRepository
	reviewRepo  repository.ReviewRepository
	tourRepo    repository.TourRepository
	publisher   *rabbitmq.Publisher
	jwtSecret   string
}

func NewUserService(
	userRepo repository.UserRepository,
	bookingRepo repository.BookingRepository,
	reviewRepo repository.ReviewRepository,
	tourRepo repository.TourRepository,
	publisher *rabbitmq.Publisher,
	jwtSecret string,
) UserService {
	return &userService{
		userRepo:    userRepo,
		bookingRepo: bookingRepo,
		reviewRepo:  reviewRepo,
		tourRepo:    tourRepo,
		publisher:   publisher,
		jwtSecret:   jwtSecret,
	}
}

func (s *userService) Register(ctx context.Context, firstName, lastName, email, password string) (*models.User, error) {
	_, err := s.userRepo.FindByEmail(ctx, email)
	if err == nil {
		return nil, ErrEmailTaken
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		FirstName: firstName,
		LastName:  lastName,
		Email:     email,
		Password:  string(hash),
		Role:      "user",
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *userService) Login(ctx context.Context, email, password string) (string, *models.User, error) {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return "", nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", nil, ErrInvalidCredentials
	}

	claims := jwt.MapClaims{
		"user_id": user.ID,
		"role":    user.Role,
		"exp":     time.Now().Add(tokenTTL).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(s.jwtSecret))
	if err != nil {
		return "", nil, err
	}
	return token, user, nil
}

func (s *userService) GetUser(ctx context.Context, id uint) (*models.User, error) {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

// DeleteUser cascades a user deletion: confirmed bookings give their slots
// back to the ledger entry they consumed, the user's bookings and reviews
// are removed, and every affected tour has its status and rating rederived.
// A booking whose tour no longer exists is skipped, not fatal.
func (s *userService) DeleteUser(ctx context.Context, id uint) (*CascadeSummary, error) {
	if _, err := s.userRepo.FindByID(ctx, id); err != nil {
		return nil, ErrUserNotFound
	}

	summary := &CascadeSummary{}

	err := s.userRepo.GetDB().WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		bookings, err := s.bookingRepo.FindByUserID(ctx, tx, id)
		if err != nil {
			return err
		}

		for _, booking := range bookings {
			if booking.Status == models.StatusCancelled {
				continue // its slots were already restored on cancel
			}
			tour, err := s.tourRepo.FindByIDForUpdate(ctx, tx, booking.TourID)
			if err != nil {
				continue
			}
			dates, err := s.tourRepo.FindDates(ctx, tx, tour.ID)
			if err != nil {
				return err
			}
			if entry := findDate(dates, models.Day(booking.SelectedDate)); entry != nil {
				entry.AvailableSlots = restoreSlots(*entry, booking.GroupSize)
				if err := s.tourRepo.UpdateDateSlots(ctx, tx, entry.ID, entry.AvailableSlots); err != nil {
					return err
				}
			}
			if err := s.tourRepo.UpdateStatus(ctx, tx, tour.ID, DeriveStatus(dates)); err != nil {
				return err
			}
		}

		deletedBookings, err := s.bookingRepo.DeleteByUserID(ctx, tx, id)
		if err != nil {
			return err
		}
		summary.BookingsDeleted = deletedBookings

		reviews, err := s.reviewRepo.FindByUserID(ctx, tx, id)
		if err != nil {
			return err
		}
		affected := make(map[uint]bool, len(reviews))
		for _, review := range reviews {
			affected[review.TourID] = true
		}

		deletedReviews, err := s.reviewRepo.DeleteByUserID(ctx, tx, id)
		if err != nil {
			return err
		}
		summary.ReviewsDeleted = deletedReviews

		for tourID := range affected {
			if _, err := s.tourRepo.FindByIDForUpdate(ctx, tx, tourID); err != nil {
				continue
			}
			remaining, err := s.reviewRepo.FindByTourID(ctx, tx, tourID)
			if err != nil {
				return err
			}
			if err := s.tourRepo.UpdateRating(ctx, tx, tourID, DeriveRating(remaining)); err != nil {
				return err
			}
		}

		return s.userRepo.Delete(ctx, tx, id)
	})
	if err != nil {
		return nil, err
	}

	if s.publisher != nil {
		_ = s.publisher.Publish("user.deleted", map[string]any{
			"user_id":          id,
			"bookings_deleted": summary.BookingsDeleted,
			"reviews_deleted":  summary.ReviewsDeleted,
		})
	}
	return summary, nil
}
