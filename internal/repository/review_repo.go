package repository

import (
	"context"

	"github.com/Romaissazr/travel-agency/internal/models"
	"gorm.io/gorm"
)

type ReviewRepository interface {
	Create(ctx context.Context, tx *gorm.DB, review *models.Review) error
	Save(ctx context.Context, tx *gorm.DB, review *models.Review) error
	FindByUserAndTour(ctx context.Context, tx *gorm.DB, userID, tourID uint) (*models.Review, error)
	FindByTourID(ctx context.Context, tx *gorm.DB, tourID uint) ([]models.Review, error)
	FindByUserID(ctx context.Context, tx *gorm.DB, userID uint) ([]models.Review, error)
	DeleteByUserID(ctx context.Context, tx *gorm.DB, userID uint) (int64, error)
	DeleteByTourID(ctx context.Context, tx *gorm.DB, tourID uint) (int64, error)
	GetDB() *gorm.DB
}

type reviewRepository struct {
	db *gorm.DB
}

func NewReviewRepository(db *gorm.DB) ReviewRepository {
	return &reviewRepository{db: db}
}

func (r *reviewRepository) GetDB() *gorm.DB {
	return r.db
}

func (r *reviewRepository) Create(ctx context.Context, tx *gorm.DB, review *models.Review) error {
	return tx.WithContext(ctx).Create(review).Error
}

func (r *reviewRepository) Save(ctx context.Context, tx *gorm.DB, review *models.Review) error {
	return tx.WithContext(ctx).Save(review).Error
}

func (r *reviewRepository) FindByUserAndTour(ctx context.Context, tx *gorm.DB, userID, tourID uint) (*models.Review, error) {
	var review models.Review
	err := tx.WithContext(ctx).
		Where("user_id = ? AND tour_id = ?", userID, tourID).
		First(&review).Error
	if err != nil {
		return nil, err
	}
	return &review, nil
}

func (r *reviewRepository) FindByTourID(ctx context.Context, tx *gorm.DB, tourID uint) ([]models.Review, error) {
	var reviews []models.Review
	err := tx.WithContext(ctx).
		Where("tour_id = ?", tourID).
		Order("id ASC").
		Find(&reviews).Error
	return reviews, err
}

func (r *reviewRepository) FindByUserID(ctx context.Context, tx *gorm.DB, userID uint) ([]models.Review, error) {
	var reviews []models.Review
	err := tx.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("id ASC").
		Find(&reviews).Error
	return reviews, err
}

func (r *reviewRepository) DeleteByUserID(ctx context.Context, tx *gorm.DB, userID uint) (int64, error) {
	res := tx.WithContext(ctx).
		Where("user_id = ?", userID).
		Delete(&models.Review{})
	return res.RowsAffected, res.Error
}

func (r *reviewRepository) DeleteByTourID(ctx context.Context, tx *gorm.DB, tourID uint) (int64, error) {
	res := tx.WithContext(ctx).
		Where("tour_id = ?", tourID).
		Delete(&models.Review{})
	return res.RowsAffected, res.Error
}
