package service

import "errors"

var (
	ErrTourNotFound            = errors.New("tour not found")
	ErrUserNotFound            = errors.New("user not found")
	ErrBookingNotFound         = errors.New("booking not found")
	ErrDateNotAvailable        = errors.New("the selected date is not available for booking")
	ErrCapacityExceeded        = errors.New("not enough available spots for the requested group size")
	ErrBookingAlreadyCancelled = errors.New("booking is already cancelled")
	ErrInvalidPaymentStatus    = errors.New("invalid payment status")
	ErrRatingOutOfRange        = errors.New("rating must be between 0 and 5")
	ErrDuplicateDate           = errors.New("duplicate date in available dates")
	ErrInvalidDate             = errors.New("invalid date format")
	ErrEmailTaken              = errors.New("email already registered")
	ErrInvalidCredentials      = errors.New("invalid email or password")
)
