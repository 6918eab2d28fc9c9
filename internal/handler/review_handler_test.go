package handler

import (
	"context"
	"net/http"
	"testing"

	"github.com/Romaissazr/travel-agency/internal/models"
	"github.com/Romaissazr/travel-agency/internal/service"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

type mockReviewService struct {
	addFn  func(ctx context.Context, userID, tourID uint, rating float64, comment string) error
	listFn func(ctx context.Context, tourID uint) ([]models.Review, error)
}

func (m *mockReviewService) AddOrUpdateReview(ctx context.Context, userID, tourID uint, rating float64, comment string) error {
	return m.addFn(ctx, userID, tourID, rating, comment)
}
func (m *mockReviewService) ListTourReviews(ctx context.Context, tourID uint) ([]models.Review, error) {
	return m.listFn(ctx, tourID)
}

func TestAddReview_Handler_Success(t *testing.T) {
	var gotRating float64
	svc := &mockReviewService{
		addFn: func(ctx context.Context, userID, tourID uint, rating float64, comment string) error {
			gotRating = rating
			return nil
		},
	}

	body := `{"user_id":1,"tour_id":2,"rating":4,"comment":"great trip"}`
	c, rec := newTestContext(http.MethodPost, "/api/v1/reviews", body)

	h := NewReviewHandler(svc)
	err := h.AddReview(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, float64(4), gotRating)
	assert.Contains(t, rec.Body.String(), "review added/updated successfully")
}

func TestAddReview_Handler_ZeroRatingAccepted(t *testing.T) {
	called := false
	svc := &mockReviewService{
		addFn: func(ctx context.Context, userID, tourID uint, rating float64, comment string) error {
			called = true
			assert.Equal(t, float64(0), rating)
			return nil
		},
	}

	body := `{"user_id":1,"tour_id":2,"rating":0}`
	c, rec := newTestContext(http.MethodPost, "/api/v1/reviews", body)

	h := NewReviewHandler(svc)
	err := h.AddReview(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, called)
}

func TestAddReview_Handler_RatingOutOfRange(t *testing.T) {
	svc := &mockReviewService{
		addFn: func(ctx context.Context, userID, tourID uint, rating float64, comment string) error {
			return service.ErrRatingOutOfRange
		},
	}

	body := `{"user_id":1,"tour_id":2,"rating":7}`
	c, _ := newTestContext(http.MethodPost, "/api/v1/reviews", body)

	h := NewReviewHandler(svc)
	err := h.AddReview(c)

	he, ok := err.(*echo.HTTPError)
	assert.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, he.Code)
}

func TestAddReview_Handler_TourNotFound(t *testing.T) {
	svc := &mockReviewService{
		addFn: func(ctx context.Context, userID, tourID uint, rating float64, comment string) error {
			return service.ErrTourNotFound
		},
	}

	body := `{"user_id":1,"tour_id":999,"rating":3}`
	c, _ := newTestContext(http.MethodPost, "/api/v1/reviews", body)

	h := NewReviewHandler(svc)
	err := h.AddReview(c)

	he, ok := err.(*echo.HTTPError)
	assert.True(t, ok)
	assert.Equal(t, http.StatusNotFound, he.Code)
}

func TestAddReview_Handler_MissingRating(t *testing.T) {
	body := `{"user_id":1,"tour_id":2}`
	c, _ := newTestContext(http.MethodPost, "/api/v1/reviews", body)

	h := NewReviewHandler(nil)
	err := h.AddReview(c)

	he, ok := err.(*echo.HTTPError)
	assert.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, he.Code)
}

func TestListTourReviews_Handler_Success(t *testing.T) {
	svc := &mockReviewService{
		listFn: func(ctx context.Context, tourID uint) ([]models.Review, error) {
			return []models.Review{
				{ID: 1, UserID: 1, TourID: tourID, Rating: 5},
				{ID: 2, UserID: 2, TourID: tourID, Rating: 3},
			}, nil
		},
	}

	c, rec := newTestContext(http.MethodGet, "/api/v1/reviews/1", "")
	c.SetParamNames("tourId")
	c.SetParamValues("1")

	h := NewReviewHandler(svc)
	err := h.ListTourReviews(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
}
