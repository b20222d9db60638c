package controllers

import (
	"time"

	"hotel-booking/utils"
)

// CreateBookingRequest is the POST /bookings payload. Room and active flag
// are chosen by the booking manager, so they are not read from the body.
type CreateBookingRequest struct {
	StartDate  string `json:"startDate" binding:"required,calendardate"`
	EndDate    string `json:"endDate" binding:"required,calendardate"`
	CustomerID uint   `json:"customerId" binding:"required"`
}

// UpdateBookingRequest only carries the fields PUT may change.
type UpdateBookingRequest struct {
	ID         *uint `json:"id" binding:"required"`
	CustomerID uint  `json:"customerId" binding:"required"`
	IsActive   *bool `json:"isActive" binding:"required"`
}

type DateRangeQuery struct {
	StartDate string `form:"startDate" binding:"required,calendardate"`
	EndDate   string `form:"endDate" binding:"required,calendardate"`
}

// Range parses both bounds; binding has already checked their format.
func (q DateRangeQuery) Range() (time.Time, time.Time, error) {
	start, err := utils.ParseDate(q.StartDate)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	end, err := utils.ParseDate(q.EndDate)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	return start, end, nil
}

type OccupiedDatesResponse struct {
	Dates []string `json:"dates"`
}

type AvailableRoomResponse struct {
	RoomID uint `json:"roomId"`
}

type CreateRoomRequest struct {
	Description string `json:"description" binding:"required,notblank"`
}

type CreateCustomerRequest struct {
	Name  string `json:"name" binding:"required,notblank"`
	Email string `json:"email" binding:"required,email"`
}
