package services

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"hotel-booking/models"
)

// RoomService เป็น wrapper รอบ *gorm.DB สำหรับ rooms
type RoomService struct {
	DB *gorm.DB
}

func NewRoomService(db *gorm.DB) *RoomService {
	return &RoomService{DB: db}
}

// GetAll returns every room ordered by id.
func (s *RoomService) GetAll(ctx context.Context) ([]models.Room, error) {
	var rooms []models.Room
	if err := s.DB.WithContext(ctx).Order("id ASC").Find(&rooms).Error; err != nil {
		return nil, fmt.Errorf("failed to retrieve rooms: %w", err)
	}
	return rooms, nil
}

func (s *RoomService) GetByID(ctx context.Context, id uint) (*models.Room, error) {
	var room models.Room
	if err := s.DB.WithContext(ctx).First(&room, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRoomNotFound
		}
		return nil, fmt.Errorf("failed to retrieve room %d: %w", id, err)
	}
	return &room, nil
}

// Add inserts room; GORM writes the new id back into it.
func (s *RoomService) Add(ctx context.Context, room *models.Room) error {
	if err := s.DB.WithContext(ctx).Create(room).Error; err != nil {
		return fmt.Errorf("failed to create room: %w", err)
	}
	return nil
}

// Update rewrites the description; rooms have no other mutable field.
func (s *RoomService) Update(ctx context.Context, room *models.Room) error {
	if _, err := s.GetByID(ctx, room.ID); err != nil {
		return err
	}
	if err := s.DB.WithContext(ctx).Model(&models.Room{}).Where("id = ?", room.ID).
		Update("description", room.Description).Error; err != nil {
		return fmt.Errorf("failed to update room %d: %w", room.ID, err)
	}
	return nil
}

func (s *RoomService) Remove(ctx context.Context, id uint) error {
	res := s.DB.WithContext(ctx).Delete(&models.Room{}, id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete room %d: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrRoomNotFound
	}
	return nil
}
