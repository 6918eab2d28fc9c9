package service

import (
	"context"
	"time"

	"github.com/Romaissazr/travel-agency/internal/models"
	"github.com/Romaissazr/travel-agency/internal/repository"
	"github.com/Romaissazr/travel-agency/pkg/rabbitmq"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type BookingService interface {
	CreateBooking(ctx context.Context, userID, tourID uint, groupSize int, selectedDate time.Time) (*models.Booking, error)
	UpdateBooking(ctx context.Context, bookingID uint, selectedDate *time.Time, groupSize *int) (*models.Booking, error)
	CancelBooking(ctx context.Context, bookingID uint) (*models.Booking, error)
	UpdatePaymentStatus(ctx context.Context, bookingID uint, status models.PaymentStatus) (*models.Booking, error)
	GetBooking(ctx context.Context, id uint) (*models.Booking, error)
	ListBookings(ctx context.Context) ([]models.Booking, error)
	ListUserBookings(ctx context.Context, userID uint) ([]models.Booking, error)
	ListTourBookings(ctx context.Context, tourID uint) ([]models.Booking, error)
}

type bookingService struct {
	bookingRepo repository.BookingRepository
	tourRepo    repository.TourRepository
	userRepo    repository.UserRepository
	publisher   *rabbitmq.Publisher
}

func NewBookingService(
	bookingRepo repository.BookingRepository,
	tourRepo repository.TourRepository,
	userRepo repository.UserRepository,
	publisher *rabbitmq.Publisher,
) BookingService {
	return &bookingService{
		bookingRepo: bookingRepo,
		tourRepo:    tourRepo,
		userRepo:    userRepo,
		publisher:   publisher,
	}
}

func (s *bookingService) CreateBooking(ctx context.Context, userID, tourID uint, groupSize int, selectedDate time.Time) (*models.Booking, error) {
	if _, err := s.userRepo.FindByID(ctx, userID); err != nil {
		return nil, ErrUserNotFound
	}

	day := models.Day(selectedDate)
	var result *models.Booking

	err := s.bookingRepo.GetDB().WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// Lock the tour row — serializes concurrent writes to its ledger
		tour, err := s.tourRepo.FindByIDForUpdate(ctx, tx, tourID)
		if err != nil {
			return ErrTourNotFound
		}

		dates, err := s.tourRepo.FindDates(ctx, tx, tour.ID)
		if err != nil {
			return err
		}

		entry := findDate(dates, day)
		if entry == nil {
			return ErrDateNotAvailable
		}
		if groupSize > entry.AvailableSlots {
			return ErrCapacityExceeded
		}

		booking := &models.Booking{
			Reference:     uuid.NewString(),
			UserID:        userID,
			TourID:        tour.ID,
			GroupSize:     groupSize,
			SelectedDate:  day,
			TotalPrice:    float64(groupSize) * tour.Price,
			Status:        models.StatusConfirmed,
			PaymentStatus: models.PaymentPending,
		}
		if err := s.bookingRepo.Create(ctx, tx, booking); err != nil {
			return err
		}

		entry.AvailableSlots -= groupSize
		if err := s.tourRepo.UpdateDateSlots(ctx, tx, entry.ID, entry.AvailableSlots); err != nil {
			return err
		}
		if err := s.tourRepo.UpdateStatus(ctx, tx, tour.ID, DeriveStatus(dates)); err != nil {
			return err
		}

		result = booking
		return nil
	})
	if err != nil {
		return nil, err
	}

	if s.publisher != nil {
		_ = s.publisher.Publish("booking.created", result)
	}
	return result, nil
}

func (s *bookingService) UpdateBooking(ctx context.Context, bookingID uint, selectedDate *time.Time, groupSize *int) (*models.Booking, error) {
	var result *models.Booking

	err := s.bookingRepo.GetDB().WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		booking, err := s.bookingRepo.FindByID(ctx, bookingID)
		if err != nil {
			return ErrBookingNotFound
		}
		if booking.Status == models.StatusCancelled {
			return ErrBookingAlreadyCancelled
		}

		tour, err := s.tourRepo.FindByIDForUpdate(ctx, tx, booking.TourID)
		if err != nil {
			return ErrTourNotFound
		}

		dates, err := s.tourRepo.FindDates(ctx, tx, tour.ID)
		if err != nil {
			return err
		}

		// Give back the booking's current consumption before re-checking
		// capacity, so shrinking or moving within one date works.
		if orig := findDate(dates, models.Day(booking.SelectedDate)); orig != nil {
			orig.AvailableSlots = restoreSlots(*orig, booking.GroupSize)
			if err := s.tourRepo.UpdateDateSlots(ctx, tx, orig.ID, orig.AvailableSlots); err != nil {
				return err
			}
		}

		size := booking.GroupSize
		if groupSize != nil {
			size = *groupSize
		}
		targetDay := models.Day(booking.SelectedDate)
		if selectedDate != nil {
			targetDay = models.Day(*selectedDate)
		}

		entry := findDate(dates, targetDay)
		if entry == nil {
			return ErrDateNotAvailable
		}
		if size > entry.AvailableSlots {
			return ErrCapacityExceeded
		}

		entry.AvailableSlots -= size
		if err := s.tourRepo.UpdateDateSlots(ctx, tx, entry.ID, entry.AvailableSlots); err != nil {
			return err
		}

		booking.SelectedDate = targetDay
		if groupSize != nil {
			booking.GroupSize = size
			booking.TotalPrice = float64(size) * tour.Price
		}
		if err := s.bookingRepo.Save(ctx, tx, booking); err != nil {
			return err
		}
		if err := s.tourRepo.UpdateStatus(ctx, tx, tour.ID, DeriveStatus(dates)); err != nil {
			return err
		}

		result = booking
		return nil
	})
	if err != nil {
		return nil, err
	}

	if s.publisher != nil {
		_ = s.publisher.Publish("booking.updated", result)
	}
	return result, nil
}

func (s *bookingService) CancelBooking(ctx context.Context, bookingID uint) (*models.Booking, error) {
	var result *models.Booking

	err := s.bookingRepo.GetDB().WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		booking, err := s.bookingRepo.FindByID(ctx, bookingID)
		if err != nil {
			return ErrBookingNotFound
		}
		if booking.Status == models.StatusCancelled {
			return ErrBookingAlreadyCancelled
		}

		tour, err := s.tourRepo.FindByIDForUpdate(ctx, tx, booking.TourID)
		if err != nil {
			return ErrTourNotFound
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

		booking.Status = models.StatusCancelled
		if err := s.bookingRepo.Save(ctx, tx, booking); err != nil {
			return err
		}
		if err := s.tourRepo.UpdateStatus(ctx, tx, tour.ID, DeriveStatus(dates)); err != nil {
			return err
		}

		result = booking
		return nil
	})
	if err != nil {
		return nil, err
	}

	if s.publisher != nil {
		_ = s.publisher.Publish("booking.cancelled", result)
	}
	return result, nil
}

func (s *bookingService) UpdatePaymentStatus(ctx context.Context, bookingID uint, status models.PaymentStatus) (*models.Booking, error) {
	if !status.Valid() {
		return nil, ErrInvalidPaymentStatus
	}

	booking, err := s.bookingRepo.FindByID(ctx, bookingID)
	if err != nil {
		return nil, ErrBookingNotFound
	}

	if err := s.bookingRepo.UpdatePaymentStatus(ctx, bookingID, status); err != nil {
		return nil, err
	}
	booking.PaymentStatus = status
	return booking, nil
}

func (s *bookingService) GetBooking(ctx context.Context, id uint) (*models.Booking, error) {
	return s.bookingRepo.FindByID(ctx, id)
}

func (s *bookingService) ListBookings(ctx context.Context) ([]models.Booking, error) {
	return s.bookingRepo.FindAll(ctx)
}

func (s *bookingService) ListUserBookings(ctx context.Context, userID uint) ([]models.Booking, error) {
	return s.bookingRepo.FindByUserID(ctx, s.bookingRepo.GetDB(), userID)
}

func (s *bookingService) ListTourBookings(ctx context.Context, tourID uint) ([]models.Booking, error) {
	return s.bookingRepo.FindByTourID(ctx, tourID)
}
