package controllers

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/datatypes"

	"hotel-booking/models"
	"hotel-booking/services"
	"hotel-booking/utils"
)

const (
	// NoRoomsMessage is returned with 409 when every room is taken.
	NoRoomsMessage = "The booking could not be created. All rooms are occupied. Please try another period."
	// RoomTakenMessage is returned with 409 when a cancelled booking's room
	// was given away in the meantime.
	RoomTakenMessage = "The booking could not be re-activated. Its room is occupied for that period."
)

type BookingRepository interface {
	GetAll(ctx context.Context) ([]models.Booking, error)
	GetByID(ctx context.Context, id uint) (*models.Booking, error)
	Remove(ctx context.Context, id uint) error
}

// BookingManager is the availability engine as seen by the HTTP layer.
type BookingManager interface {
	CreateBooking(ctx context.Context, booking *models.Booking) (bool, error)
	UpdateBooking(ctx context.Context, id, customerID uint, isActive bool) (bool, error)
	FindAvailableRoom(ctx context.Context, start, end time.Time) (uint, error)
	GetFullyOccupiedDates(ctx context.Context, start, end time.Time) ([]time.Time, error)
}

type BookingController struct {
	Bookings BookingRepository
	Manager  BookingManager
	log      *zap.Logger
}

func NewBookingController(bookings BookingRepository, manager BookingManager, log *zap.Logger) *BookingController {
	return &BookingController{Bookings: bookings, Manager: manager, log: log}
}

// GetBookings (GET /api/bookings)
func (ctrl *BookingController) GetBookings(c *gin.Context) {
	list, err := ctrl.Bookings.GetAll(c.Request.Context())
	if err != nil {
		respondError(c, ctrl.log, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

// GetBooking (GET /api/bookings/:id)
func (ctrl *BookingController) GetBooking(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		utils.JSONError(c, http.StatusBadRequest, "invalid booking id")
		return
	}

	booking, err := ctrl.Bookings.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, ctrl.log, err)
		return
	}
	c.JSON(http.StatusOK, booking)
}

// CreateBooking (POST /api/bookings)
func (ctrl *BookingController) CreateBooking(c *gin.Context) {
	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid booking payload: "+err.Error())
		return
	}

	start, err := utils.ParseDate(req.StartDate)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}
	end, err := utils.ParseDate(req.EndDate)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}

	booking := models.Booking{
		CustomerID: req.CustomerID,
		StartDate:  datatypes.Date(start),
		EndDate:    datatypes.Date(end),
	}

	created, err := ctrl.Manager.CreateBooking(c.Request.Context(), &booking)
	if err != nil {
		respondError(c, ctrl.log, err)
		return
	}
	if !created {
		utils.JSONError(c, http.StatusConflict, NoRoomsMessage)
		return
	}

	c.Header("Location", fmt.Sprintf("/api/bookings/%d", booking.ID))
	c.JSON(http.StatusCreated, booking)
}

// UpdateBooking (PUT /api/bookings/:id) changes only the customer and the
// active flag; dates and room stay as the booking manager assigned them.
// Re-activation is checked against the room's other bookings.
func (ctrl *BookingController) UpdateBooking(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		utils.JSONError(c, http.StatusBadRequest, "invalid booking id")
		return
	}

	var req UpdateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid booking payload: "+err.Error())
		return
	}
	if *req.ID != id {
		utils.JSONError(c, http.StatusBadRequest, "booking id in body does not match path")
		return
	}

	updated, err := ctrl.Manager.UpdateBooking(c.Request.Context(), id, req.CustomerID, *req.IsActive)
	if err != nil {
		respondError(c, ctrl.log, err)
		return
	}
	if !updated {
		utils.JSONError(c, http.StatusConflict, RoomTakenMessage)
		return
	}
	c.Status(http.StatusNoContent)
}

// DeleteBooking (DELETE /api/bookings/:id)
func (ctrl *BookingController) DeleteBooking(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		utils.JSONError(c, http.StatusBadRequest, "invalid booking id")
		return
	}

	ctx := c.Request.Context()
	if _, err := ctrl.Bookings.GetByID(ctx, id); err != nil {
		respondError(c, ctrl.log, err)
		return
	}
	if err := ctrl.Bookings.Remove(ctx, id); err != nil {
		respondError(c, ctrl.log, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// GetFullyOccupiedDates (GET /api/bookings/occupied-dates?startDate=&endDate=)
func (ctrl *BookingController) GetFullyOccupiedDates(c *gin.Context) {
	var q DateRangeQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}
	start, end, err := q.Range()
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}

	dates, err := ctrl.Manager.GetFullyOccupiedDates(c.Request.Context(), start, end)
	if err != nil {
		respondError(c, ctrl.log, err)
		return
	}

	out := make([]string, 0, len(dates))
	for _, d := range dates {
		out = append(out, utils.FormatDate(d))
	}
	c.JSON(http.StatusOK, OccupiedDatesResponse{Dates: out})
}

// FindAvailableRoom (GET /api/rooms/available?startDate=&endDate=)
func (ctrl *BookingController) FindAvailableRoom(c *gin.Context) {
	var q DateRangeQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}
	start, end, err := q.Range()
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}

	roomID, err := ctrl.Manager.FindAvailableRoom(c.Request.Context(), start, end)
	if err != nil {
		respondError(c, ctrl.log, err)
		return
	}
	if roomID == services.NoRoom {
		utils.JSONError(c, http.StatusNotFound, "no room available for the requested period")
		return
	}
	c.JSON(http.StatusOK, AvailableRoomResponse{RoomID: roomID})
}
