package models

import "time"

type BookingStatus string

const (
	StatusConfirmed BookingStatus = "confirmed"
	StatusCancelled BookingStatus = "cancelled"
)

type PaymentStatus string

const (
	PaymentPending PaymentStatus = "pending"
	PaymentPaid    PaymentStatus = "paid"
	PaymentFailed  PaymentStatus = "failed"
)

func (p PaymentStatus) Valid() bool {
	switch p {
	case PaymentPending, PaymentPaid, PaymentFailed:
		return true
	}
	return false
}

type Booking struct {
	ID            uint          `gorm:"primaryKey" json:"id"`
	Reference     string        `gorm:"size:36;uniqueIndex" json:"reference"`
	UserID        uint          `gorm:"not null;index" json:"user_id"`
	TourID        uint          `gorm:"not null;index" json:"tour_id"`
	GroupSize     int           `gorm:"not null" json:"group_size"`
	SelectedDate  time.Time     `gorm:"not null" json:"selected_date"`
	TotalPrice    float64       `gorm:"not null" json:"total_price"`
	Status        BookingStatus `gorm:"type:varchar(20);not null;default:'confirmed'" json:"status"`
	PaymentStatus PaymentStatus `gorm:"type:varchar(20);not null;default:'pending'" json:"payment_status"`
	CreatedAt     time.Time     `json:"created_at"`
	UpdatedAt     time.Time     `json:"updated_at"`

	Tour *Tour `gorm:"foreignKey:TourID" json:"tour,omitempty"`
}
