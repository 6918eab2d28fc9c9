package service

import (
	"time"

	"github.com/Romaissazr/travel-agency/internal/models"
)

// DeriveStatus computes a tour's status from its availability ledger: fully
// booked only when the ledger is non-empty and every entry is exhausted. A
// tour with no dates has nothing to sell out, so an empty ledger stays active.
func DeriveStatus(dates []models.TourDate) models.TourStatus {
	if len(dates) == 0 {
		return models.TourActive
	}
	for _, d := range dates {
		if d.AvailableSlots > 0 {
			return models.TourActive
		}
	}
	return models.TourFullyBooked
}

// DeriveRating computes a tour's rating as the arithmetic mean over its
// reviews, 0 when there are none.
func DeriveRating(reviews []models.Review) float64 {
	if len(reviews) == 0 {
		return 0
	}
	var total float64
	for _, r := range reviews {
		total += r.Rating
	}
	return total / float64(len(reviews))
}

// restoreSlots returns slots + n clamped to the capacity originally
// allocated for the date, so repeated restores cannot inflate the ledger.
func restoreSlots(d models.TourDate, n int) int {
	slots := d.AvailableSlots + n
	if slots > d.Capacity {
		return d.Capacity
	}
	return slots
}

// findDate locates the ledger entry matching day (already normalized with
// models.Day). Returns nil when the tour has no entry for that day.
func findDate(dates []models.TourDate, day time.Time) *models.TourDate {
	for i := range dates {
		if models.Day(dates[i].Date).Equal(day) {
			return &dates[i]
		}
	}
	return nil
}
