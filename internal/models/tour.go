package models

import "time"

type TourStatus string

const (
	TourActive      TourStatus = "active"
	TourFullyBooked TourStatus = "fully booked"
)

type Tour struct {
	ID           uint       `gorm:"primaryKey" json:"id"`
	Title        string     `gorm:"not null" json:"title"`
	City         string     `gorm:"not null;index" json:"city"`
	Address      string     `json:"address"`
	Description  string     `json:"description"`
	Distance     float64    `json:"distance"`
	Duration     float64    `json:"duration"`
	Price        float64    `gorm:"not null" json:"price"`
	MaxGroupSize int        `gorm:"not null" json:"max_group_size"`
	Featured     bool       `gorm:"not null;default:true" json:"featured"`
	Status       TourStatus `gorm:"type:varchar(20);not null;default:'active'" json:"status"`
	Rating       float64    `gorm:"not null;default:0" json:"rating"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`

	Dates   []TourDate `gorm:"constraint:OnDelete:CASCADE" json:"available_dates,omitempty"`
	Reviews []Review   `gorm:"constraint:OnDelete:CASCADE" json:"reviews,omitempty"`
}

// TourDate is one row of a tour's availability ledger. Capacity is the slot
// count originally allocated for the day; AvailableSlots never goes below
// zero or above Capacity.
type TourDate struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	TourID         uint      `gorm:"not null;uniqueIndex:idx_tour_day" json:"tour_id"`
	Date           time.Time `gorm:"not null;uniqueIndex:idx_tour_day" json:"date"`
	AvailableSlots int       `gorm:"not null" json:"available_slots"`
	Capacity       int       `gorm:"not null" json:"capacity"`
}

// Day strips the time-of-day; ledger dates and booking dates compare at day
// granularity in UTC.
func Day(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
