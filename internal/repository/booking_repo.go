package repository

import (
	"context"

	"github.com/Romaissazr/travel-agency/internal/models"
	"gorm.io/gorm"
)

type BookingRepository interface {
	Create(ctx context.Context, tx *gorm.DB, booking *models.Booking) error
	Save(ctx context.Context, tx *gorm.DB, booking *models.Booking) error
	FindByID(ctx context.Context, id uint) (*models.Booking, error)
	FindAll(ctx context.Context) ([]models.Booking, error)
	FindByUserID(ctx context.Context, tx *gorm.DB, userID uint) ([]models.Booking, error)
	FindByTourID(ctx context.Context, tourID uint) ([]models.Booking, error)
	UpdatePaymentStatus(ctx context.Context, bookingID uint, status models.PaymentStatus) error
	DeleteByUserID(ctx context.Context, tx *gorm.DB, userID uint) (int64, error)
	DeleteByTourID(ctx context.Context, tx *gorm.DB, tourID uint) (int64, error)
	GetDB() *gorm.DB
}

type bookingRepository struct {
	db *gorm.DB
}

func NewBookingRepository(db *gorm.DB) BookingRepository {
	return &bookingRepository{db: db}
}

func (r *bookingRepository) GetDB() *gorm.DB {
	return r.db
}

func (r *bookingRepository) Create(ctx context.Context, tx *gorm.DB, booking *models.Booking) error {
	return tx.WithContext(ctx).Create(booking).Error
}

func (r *bookingRepository) Save(ctx context.Context, tx *gorm.DB, booking *models.Booking) error {
	return tx.WithContext(ctx).Save(booking).Error
}

func (r *bookingRepository) FindByID(ctx context.Context, id uint) (*models.Booking, error) {
	var booking models.Booking
	if err := r.db.WithContext(ctx).First(&booking, id).Error; err != nil {
		return nil, err
	}
	return &booking, nil
}

func (r *bookingRepository) FindAll(ctx context.Context) ([]models.Booking, error) {
	var bookings []models.Booking
	err := r.db.WithContext(ctx).
		Preload("Tour").
		Order("id ASC").
		Find(&bookings).Error
	return bookings, err
}

func (r *bookingRepository) FindByUserID(ctx context.Context, tx *gorm.DB, userID uint) ([]models.Booking, error) {
	var bookings []models.Booking
	err := tx.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("id ASC").
		Find(&bookings).Error
	return bookings, err
}

func (r *bookingRepository) FindByTourID(ctx context.Context, tourID uint) ([]models.Booking, error) {
	var bookings []models.Booking
	err := r.db.WithContext(ctx).
		Where("tour_id = ?", tourID).
		Order("id ASC").
		Find(&bookings).Error
	return bookings, err
}

func (r *bookingRepository) UpdatePaymentStatus(ctx context.Context, bookingID uint, status models.PaymentStatus) error {
	return r.db.WithContext(ctx).
		Model(&models.Booking{}).
		Where("id = ?", bookingID).
		Update("payment_status", status).Error
}

func (r *bookingRepository) DeleteByUserID(ctx context.Context, tx *gorm.DB, userID uint) (int64, error) {
	res := tx.WithContext(ctx).
		Where("user_id = ?", userID).
		Delete(&models.Booking{})
	return res.RowsAffected, res.Error
}

func (r *bookingRepository) DeleteByTourID(ctx context.Context, tx *gorm.DB, tourID uint) (int64, error) {
	res := tx.WithContext(ctx).
		Where("tour_id = ?", tourID).
		Delete(&models.Booking{})
	return res.RowsAffected, res.Error
}
