package dto

import "time"

type CreateBookingRequest struct {
	UserID       uint   `json:"user_id" validate:"required"`
	TourID       uint   `json:"tour_id" validate:"required"`
	GroupSize    int    `json:"group_size" validate:"required,gt=0"`
	SelectedDate string `json:"selected_date" validate:"required"`
}

type UpdateBookingRequest struct {
	SelectedDate *string `json:"selected_date,omitempty"`
	GroupSize    *int    `json:"group_size,omitempty" validate:"omitempty,gt=0"`
}

type UpdatePaymentStatusRequest struct {
	PaymentStatus string `json:"payment_status" validate:"required"`
}

type AddReviewRequest struct {
	UserID  uint     `json:"user_id" validate:"required"`
	TourID  uint     `json:"tour_id" validate:"required"`
	Rating  *float64 `json:"rating" validate:"required"`
	Comment string   `json:"comment"`
}

type TourDateRequest struct {
	Date           string `json:"date" validate:"required"`
	AvailableSlots *int   `json:"available_slots,omitempty" validate:"omitempty,gte=0"`
}

type CreateTourRequest struct {
	Title          string            `json:"title" validate:"required"`
	City           string            `json:"city" validate:"required"`
	Address        string            `json:"address"`
	Description    string            `json:"description"`
	Distance       float64           `json:"distance" validate:"gte=0"`
	Duration       float64           `json:"duration" validate:"gte=0"`
	Price          float64           `json:"price" validate:"required,gt=0"`
	MaxGroupSize   int               `json:"max_group_size" validate:"required,gt=0"`
	Featured       *bool             `json:"featured,omitempty"`
	AvailableDates []TourDateRequest `json:"available_dates" validate:"dive"`
}

type UpdateTourRequest struct {
	Title          *string            `json:"title,omitempty"`
	City           *string            `json:"city,omitempty"`
	Address        *string            `json:"address,omitempty"`
	Description    *string            `json:"description,omitempty"`
	Distance       *float64           `json:"distance,omitempty" validate:"omitempty,gte=0"`
	Duration       *float64           `json:"duration,omitempty" validate:"omitempty,gte=0"`
	Price          *float64           `json:"price,omitempty" validate:"omitempty,gt=0"`
	MaxGroupSize   *int               `json:"max_group_size,omitempty" validate:"omitempty,gt=0"`
	Featured       *bool              `json:"featured,omitempty"`
	AvailableDates *[]TourDateRequest `json:"available_dates,omitempty" validate:"omitempty,dive"`
}

type RegisterRequest struct {
	FirstName string `json:"first_name" validate:"required"`
	LastName  string `json:"last_name" validate:"required"`
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required,min=8"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// ParseDate accepts plain calendar dates as sent by the frontend
// ("2006-01-02") as well as full RFC 3339 timestamps.
func ParseDate(s string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, s)
}
