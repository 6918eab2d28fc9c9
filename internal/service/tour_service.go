package service

import (
	"context"

	"github.com/Romaissazr/travel-agency/internal/dto"
	"github.com/Romaissazr/travel-agency/internal/models"
	"github.com/Romaissazr/travel-agency/internal/repository"
	"github.com/Romaissazr/travel-agency/pkg/rabbitmq"
	"gorm.io/gorm"
)

type TourService interface {
	CreateTour(ctx context.Context, req *dto.CreateTourRequest) (*models.Tour, error)
	UpdateTour(ctx context.Context, id uint, req *dto.UpdateTourRequest) (*models.Tour, error)
	DeleteTour(ctx context.Context, id uint) error
	GetTour(ctx context.Context, id uint) (*models.Tour, error)
	ListTours(ctx context.Context) ([]models.Tour, error)
	ListToursByCity(ctx context.Context, city string) ([]models.Tour, error)
	ListToursPage(ctx context.Context, page, limit int, sort string) ([]models.Tour, int64, error)
	GetAvailableDates(ctx context.Context, tourID uint) ([]models.TourDate, error)
}

type tourService struct {
	tourRepo    repository.TourRepository
	bookingRepo repository.BookingRepository
	reviewRepo  repository.ReviewRepository
	publisher   *rabbitmq.Publisher
}

func NewTourService(
	tourRepo repository.TourRepository,
	bookingRepo repository.BookingRepository,
	reviewRepo repository.ReviewRepository,
	publisher *rabbitmq.Publisher,
) TourService {
	return &tourService{
		tourRepo:    tourRepo,
		bookingRepo: bookingRepo,
		reviewRepo:  reviewRepo,
		publisher:   publisher,
	}
}

// buildDates normalizes requested dates to day granularity and allocates the
// ledger: slots default to maxGroupSize, capacity is pinned to the initial
// allocation. A tour may hold at most one entry per calendar day.
func buildDates(maxGroupSize int, in []dto.TourDateRequest) ([]models.TourDate, error) {
	dates := make([]models.TourDate, 0, len(in))
	seen := make(map[string]bool, len(in))

	for _, d := range in {
		t, err := dto.ParseDate(d.Date)
		if err != nil {
			return nil, ErrInvalidDate
		}
		day := models.Day(t)

		key := day.Format("2006-01-02")
		if seen[key] {
			return nil, ErrDuplicateDate
		}
		seen[key] = true

		slots := maxGroupSize
		if d.AvailableSlots != nil {
			slots = *d.AvailableSlots
		}
		dates = append(dates, models.TourDate{
			Date:           day,
			AvailableSlots: slots,
			Capacity:       slots,
		})
	}
	return dates, nil
}

func (s *tourService) CreateTour(ctx context.Context, req *dto.CreateTourRequest) (*models.Tour, error) {
	dates, err := buildDates(req.MaxGroupSize, req.AvailableDates)
	if err != nil {
		return nil, err
	}

	tour := &models.Tour{
		Title:        req.Title,
		City:         req.City,
		Address:      req.Address,
		Description:  req.Description,
		Distance:     req.Distance,
		Duration:     req.Duration,
		Price:        req.Price,
		MaxGroupSize: req.MaxGroupSize,
		Featured:     true,
		Status:       DeriveStatus(dates),
		Dates:        dates,
	}
	if req.Featured != nil {
		tour.Featured = *req.Featured
	}

	if err := s.tourRepo.Create(ctx, tour); err != nil {
		return nil, err
	}

	if s.publisher != nil {
		_ = s.publisher.Publish("tour.created", tour)
	}
	return tour, nil
}

func (s *tourService) UpdateTour(ctx context.Context, id uint, req *dto.UpdateTourRequest) (*models.Tour, error) {
	err := s.tourRepo.GetDB().WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		tour, err := s.tourRepo.FindByIDForUpdate(ctx, tx, id)
		if err != nil {
			return ErrTourNotFound
		}

		if req.Title != nil {
			tour.Title = *req.Title
		}
		if req.City != nil {
			tour.City = *req.City
		}
		if req.Address != nil {
			tour.Address = *req.Address
		}
		if req.Description != nil {
			tour.Description = *req.Description
		}
		if req.Distance != nil {
			tour.Distance = *req.Distance
		}
		if req.Duration != nil {
			tour.Duration = *req.Duration
		}
		if req.Price != nil {
			tour.Price = *req.Price
		}
		if req.MaxGroupSize != nil {
			tour.MaxGroupSize = *req.MaxGroupSize
		}
		if req.Featured != nil {
			tour.Featured = *req.Featured
		}

		if req.AvailableDates != nil {
			dates, err := buildDates(tour.MaxGroupSize, *req.AvailableDates)
			if err != nil {
				return err
			}
			if err := s.tourRepo.ReplaceDates(ctx, tx, tour.ID, dates); err != nil {
				return err
			}
			tour.Status = DeriveStatus(dates)
		}

		tour.Dates = nil // associations were written explicitly above
		return s.tourRepo.Save(ctx, tx, tour)
	})
	if err != nil {
		return nil, err
	}

	return s.tourRepo.FindByID(ctx, id)
}

// DeleteTour removes a tour together with its bookings, reviews, and ledger.
func (s *tourService) DeleteTour(ctx context.Context, id uint) error {
	err := s.tourRepo.GetDB().WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := s.tourRepo.FindByIDForUpdate(ctx, tx, id); err != nil {
			return ErrTourNotFound
		}
		if _, err := s.bookingRepo.DeleteByTourID(ctx, tx, id); err != nil {
			return err
		}
		if _, err := s.reviewRepo.DeleteByTourID(ctx, tx, id); err != nil {
			return err
		}
		if err := s.tourRepo.ReplaceDates(ctx, tx, id, nil); err != nil {
			return err
		}
		return s.tourRepo.Delete(ctx, tx, id)
	})
	if err != nil {
		return err
	}

	if s.publisher != nil {
		_ = s.publisher.Publish("tour.deleted", map[string]uint{"tour_id": id})
	}
	return nil
}

func (s *tourService) GetTour(ctx context.Context, id uint) (*models.Tour, error) {
	tour, err := s.tourRepo.FindByID(ctx, id)
	if err != nil {
		return nil, ErrTourNotFound
	}
	return tour, nil
}

func (s *tourService) ListTours(ctx context.Context) ([]models.Tour, error) {
	return s.tourRepo.FindAll(ctx)
}

func (s *tourService) ListToursByCity(ctx context.Context, city string) ([]models.Tour, error) {
	return s.tourRepo.FindByCity(ctx, city)
}

func (s *tourService) ListToursPage(ctx context.Context, page, limit int, sort string) ([]models.Tour, int64, error) {
	var order string
	switch sort {
	case "price_asc":
		order = "price ASC"
	case "price_desc":
		order = "price DESC"
	case "rating_desc":
		order = "rating DESC"
	case "duration_asc":
		order = "duration ASC"
	}
	return s.tourRepo.FindPage(ctx, (page-1)*limit, limit, order)
}

func (s *tourService) GetAvailableDates(ctx context.Context, tourID uint) ([]models.TourDate, error) {
	tour, err := s.tourRepo.FindByID(ctx, tourID)
	if err != nil {
		return nil, ErrTourNotFound
	}
	return tour.Dates, nil
}
