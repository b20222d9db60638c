package services

import (
	"errors"
	"fmt"
)

var (
	// Date validation errors
	ErrInvalidDateRange     = errors.New("invalid date range")
	ErrStartDateNotInFuture = fmt.Errorf("%w: start date must be later than today", ErrInvalidDateRange)
	ErrEndBeforeStart       = fmt.Errorf("%w: end date is before start date", ErrInvalidDateRange)

	// Lookup errors
	ErrRoomNotFound     = errors.New("room not found")
	ErrBookingNotFound  = errors.New("booking not found")
	ErrCustomerNotFound = errors.New("customer not found")
)

// IsNotFoundError checks if the error is a not found error
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrRoomNotFound) ||
		errors.Is(err, ErrBookingNotFound) ||
		errors.Is(err, ErrCustomerNotFound)
}

// IsValidationError checks if the error is caused by bad caller input
func IsValidationError(err error) bool {
	return errors.Is(err, ErrInvalidDateRange)
}
