package repository

import (
	"context"

	"github.com/Romaissazr/travel-agency/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type TourRepository interface {
	Create(ctx context.Context, tour *models.Tour) error
	Save(ctx context.Context, tx *gorm.DB, tour *models.Tour) error
	Delete(ctx context.Context, tx *gorm.DB, id uint) error
	FindByID(ctx context.Context, id uint) (*models.Tour, error)
	FindByIDForUpdate(ctx context.Context, tx *gorm.DB, id uint) (*models.Tour, error)
	FindAll(ctx context.Context) ([]models.Tour, error)
	FindByCity(ctx context.Context, city string) ([]models.Tour, error)
	FindPage(ctx context.Context, offset, limit int, order string) ([]models.Tour, int64, error)
	FindDates(ctx context.Context, tx *gorm.DB, tourID uint) ([]models.TourDate, error)
	ReplaceDates(ctx context.Context, tx *gorm.DB, tourID uint, dates []models.TourDate) error
	UpdateDateSlots(ctx context.Context, tx *gorm.DB, dateID uint, slots int) error
	UpdateStatus(ctx context.Context, tx *gorm.DB, tourID uint, status models.TourStatus) error
	UpdateRating(ctx context.Context, tx *gorm.DB, tourID uint, rating float64) error
	GetDB() *gorm.DB
}

type tourRepository struct {
	db *gorm.DB
}

func NewTourRepository(db *gorm.DB) TourRepository {
	return &tourRepository{db: db}
}

func (r *tourRepository) GetDB() *gorm.DB {
	return r.db
}

func (r *tourRepository) Create(ctx context.Context, tour *models.Tour) error {
	return r.db.WithContext(ctx).Create(tour).Error
}

func (r *tourRepository) Save(ctx context.Context, tx *gorm.DB, tour *models.Tour) error {
	return tx.WithContext(ctx).Save(tour).Error
}

func (r *tourRepository) Delete(ctx context.Context, tx *gorm.DB, id uint) error {
	return tx.WithContext(ctx).Delete(&models.Tour{}, id).Error
}

func (r *tourRepository) FindByID(ctx context.Context, id uint) (*models.Tour, error) {
	var tour models.Tour
	err := r.db.WithContext(ctx).
		Preload("Dates", func(db *gorm.DB) *gorm.DB { return db.Order("date ASC") }).
		Preload("Reviews").
		First(&tour, id).Error
	if err != nil {
		return nil, err
	}
	return &tour, nil
}

// FindByIDForUpdate acquires a row-level lock on the tour within the given
// transaction, serializing concurrent ledger writes.
func (r *tourRepository) FindByIDForUpdate(ctx context.Context, tx *gorm.DB, id uint) (*models.Tour, error) {
	var tour models.Tour
	if err := tx.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&tour, id).Error; err != nil {
		return nil, err
	}
	return &tour, nil
}

func (r *tourRepository) FindAll(ctx context.Context) ([]models.Tour, error) {
	var tours []models.Tour
	err := r.db.WithContext(ctx).
		Preload("Dates").
		Order("id ASC").
		Find(&tours).Error
	return tours, err
}

func (r *tourRepository) FindByCity(ctx context.Context, city string) ([]models.Tour, error) {
	var tours []models.Tour
	err := r.db.WithContext(ctx).
		Preload("Dates").
		Where("city = ?", city).
		Order("id ASC").
		Find(&tours).Error
	return tours, err
}

func (r *tourRepository) FindPage(ctx context.Context, offset, limit int, order string) ([]models.Tour, int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&models.Tour{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	q := r.db.WithContext(ctx).Preload("Dates").Offset(offset).Limit(limit)
	if order != "" {
		q = q.Order(order)
	} else {
		q = q.Order("id ASC")
	}

	var tours []models.Tour
	if err := q.Find(&tours).Error; err != nil {
		return nil, 0, err
	}
	return tours, total, nil
}

func (r *tourRepository) FindDates(ctx context.Context, tx *gorm.DB, tourID uint) ([]models.TourDate, error) {
	var dates []models.TourDate
	err := tx.WithContext(ctx).
		Where("tour_id = ?", tourID).
		Order("date ASC").
		Find(&dates).Error
	return dates, err
}

func (r *tourRepository) ReplaceDates(ctx context.Context, tx *gorm.DB, tourID uint, dates []models.TourDate) error {
	if err := tx.WithContext(ctx).
		Where("tour_id = ?", tourID).
		Delete(&models.TourDate{}).Error; err != nil {
		return err
	}
	if len(dates) == 0 {
		return nil
	}
	for i := range dates {
		dates[i].ID = 0
		dates[i].TourID = tourID
	}
	return tx.WithContext(ctx).Create(&dates).Error
}

func (r *tourRepository) UpdateDateSlots(ctx context.Context, tx *gorm.DB, dateID uint, slots int) error {
	return tx.WithContext(ctx).
		Model(&models.TourDate{}).
		Where("id = ?", dateID).
		Update("available_slots", slots).Error
}

func (r *tourRepository) UpdateStatus(ctx context.Context, tx *gorm.DB, tourID uint, status models.TourStatus) error {
	return tx.WithContext(ctx).
		Model(&models.Tour{}).
		Where("id = ?", tourID).
		Update("status", status).Error
}

func (r *tourRepository) UpdateRating(ctx context.Context, tx *gorm.DB, tourID uint, rating float64) error {
	return tx.WithContext(ctx).
		Model(&models.Tour{}).
		Where("id = ?", tourID).
		Update("rating", rating).Error
}
