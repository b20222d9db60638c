package controllers

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"hotel-booking/models"
	"hotel-booking/utils"
)

type RoomRepository interface {
	GetAll(ctx context.Context) ([]models.Room, error)
	GetByID(ctx context.Context, id uint) (*models.Room, error)
	Add(ctx context.Context, room *models.Room) error
	Remove(ctx context.Context, id uint) error
}

type RoomController struct {
	Rooms RoomRepository
	log   *zap.Logger
}

func NewRoomController(rooms RoomRepository, log *zap.Logger) *RoomController {
	return &RoomController{Rooms: rooms, log: log}
}

// ----------------------------------------------------
// 1. Get Rooms (GET /api/rooms)
// ----------------------------------------------------

func (ctrl *RoomController) GetRooms(c *gin.Context) {
	rooms, err := ctrl.Rooms.GetAll(c.Request.Context())
	if err != nil {
		respondError(c, ctrl.log, err)
		return
	}
	c.JSON(http.StatusOK, rooms)
}

// ----------------------------------------------------
// 2. Get Room (GET /api/rooms/:id)
// ----------------------------------------------------

func (ctrl *RoomController) GetRoom(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		utils.JSONError(c, http.StatusBadRequest, "invalid room id")
		return
	}

	room, err := ctrl.Rooms.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, ctrl.log, err)
		return
	}
	c.JSON(http.StatusOK, room)
}

// ----------------------------------------------------
// 3. Create Room (POST /api/rooms)
// ----------------------------------------------------

func (ctrl *RoomController) CreateRoom(c *gin.Context) {
	var req CreateRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid room payload: "+err.Error())
		return
	}

	room := models.Room{Description: strings.TrimSpace(req.Description)}
	if err := ctrl.Rooms.Add(c.Request.Context(), &room); err != nil {
		respondError(c, ctrl.log, err)
		return
	}

	c.Header("Location", fmt.Sprintf("/api/rooms/%d", room.ID))
	c.JSON(http.StatusCreated, room)
}

// ----------------------------------------------------
// 4. Delete Room (DELETE /api/rooms/:id)
// ----------------------------------------------------

func (ctrl *RoomController) DeleteRoom(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		utils.JSONError(c, http.StatusBadRequest, "invalid room id")
		return
	}

	if err := ctrl.Rooms.Remove(c.Request.Context(), id); err != nil {
		respondError(c, ctrl.log, err)
		return
	}

	ctrl.log.Info("room deleted", zap.Uint("room_id", id))
	c.Status(http.StatusNoContent)
}
