package dto

import (
	"time"

	"github.com/Romaissazr/travel-agency/internal/models"
)

type BookingResponse struct {
	ID            uint                 `json:"id"`
	Reference     string               `json:"reference"`
	UserID        uint                 `json:"user_id"`
	TourID        uint                 `json:"tour_id"`
	GroupSize     int                  `json:"group_size"`
	SelectedDate  string               `json:"selected_date"`
	TotalPrice    float64              `json:"total_price"`
	Status        models.BookingStatus `json:"status"`
	PaymentStatus models.PaymentStatus `json:"payment_status"`
	CreatedAt     time.Time            `json:"created_at"`
}

func ToBookingResponse(b *models.Booking) BookingResponse {
	return BookingResponse{
		ID:            b.ID,
		Reference:     b.Reference,
		UserID:        b.UserID,
		TourID:        b.TourID,
		GroupSize:     b.GroupSize,
		SelectedDate:  b.SelectedDate.Format("2006-01-02"),
		TotalPrice:    b.TotalPrice,
		Status:        b.Status,
		PaymentStatus: b.PaymentStatus,
		CreatedAt:     b.CreatedAt,
	}
}

type TourDateResponse struct {
	Date           string `json:"date"`
	AvailableSlots int    `json:"available_slots"`
}

func ToTourDateResponse(d *models.TourDate) TourDateResponse {
	return TourDateResponse{
		Date:           d.Date.Format("2006-01-02"),
		AvailableSlots: d.AvailableSlots,
	}
}

type TourResponse struct {
	ID             uint               `json:"id"`
	Title          string             `json:"title"`
	City           string             `json:"city"`
	Address        string             `json:"address"`
	Description    string             `json:"description"`
	Distance       float64            `json:"distance"`
	Duration       float64            `json:"duration"`
	Price          float64            `json:"price"`
	MaxGroupSize   int                `json:"max_group_size"`
	Featured       bool               `json:"featured"`
	Status         models.TourStatus  `json:"status"`
	Rating         float64            `json:"rating"`
	AvailableDates []TourDateResponse `json:"available_dates"`
	Reviews        []ReviewResponse   `json:"reviews,omitempty"`
}

func ToTourResponse(t *models.Tour) TourResponse {
	dates := make([]TourDateResponse, len(t.Dates))
	for i := range t.Dates {
		dates[i] = ToTourDateResponse(&t.Dates[i])
	}
	reviews := make([]ReviewResponse, len(t.Reviews))
	for i := range t.Reviews {
		reviews[i] = ToReviewResponse(&t.Reviews[i])
	}
	return TourResponse{
		ID:             t.ID,
		Title:          t.Title,
		City:           t.City,
		Address:        t.Address,
		Description:    t.Description,
		Distance:       t.Distance,
		Duration:       t.Duration,
		Price:          t.Price,
		MaxGroupSize:   t.MaxGroupSize,
		Featured:       t.Featured,
		Status:         t.Status,
		Rating:         t.Rating,
		AvailableDates: dates,
		Reviews:        reviews,
	}
}

type PagedToursResponse struct {
	TotalTours  int64          `json:"total_tours"`
	TotalPages  int            `json:"total_pages"`
	CurrentPage int            `json:"current_page"`
	Data        []TourResponse `json:"data"`
}

type ReviewResponse struct {
	ID      uint    `json:"id"`
	UserID  uint    `json:"user_id"`
	TourID  uint    `json:"tour_id"`
	Rating  float64 `json:"rating"`
	Comment string  `json:"comment"`
}

func ToReviewResponse(r *models.Review) ReviewResponse {
	return ReviewResponse{
		ID:      r.ID,
		UserID:  r.UserID,
		TourID:  r.TourID,
		Rating:  r.Rating,
		Comment: r.Comment,
	}
}

type UserResponse struct {
	ID        uint   `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Role      string `json:"role"`
}

func ToUserResponse(u *models.User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Email:     u.Email,
		Role:      u.Role,
	}
}

type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

type DeleteUserResponse struct {
	Message         string `json:"message"`
	BookingsDeleted int64  `json:"bookings_deleted"`
	ReviewsDeleted  int64  `json:"reviews_deleted"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type ErrorResponse struct {
	Message string `json:"message"`
}
