// services/booking_service.go
package services

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"hotel-booking/models"
)

// BookingService เป็น wrapper รอบ *gorm.DB เพื่อแยก logic ของ booking
type BookingService struct {
	DB *gorm.DB
}

func NewBookingService(db *gorm.DB) *BookingService {
	return &BookingService{DB: db}
}

// GetAll returns every booking, active or not, ordered by id.
func (s *BookingService) GetAll(ctx context.Context) ([]models.Booking, error) {
	var list []models.Booking
	if err := s.DB.WithContext(ctx).Order("id ASC").Find(&list).Error; err != nil {
		return nil, fmt.Errorf("failed to retrieve bookings: %w", err)
	}
	return list, nil
}

func (s *BookingService) GetByID(ctx context.Context, id uint) (*models.Booking, error) {
	var bk models.Booking
	if err := s.DB.WithContext(ctx).First(&bk, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, fmt.Errorf("failed to retrieve booking %d: %w", id, err)
	}
	return &bk, nil
}

func (s *BookingService) Add(ctx context.Context, booking *models.Booking) error {
	if err := s.DB.WithContext(ctx).Create(booking).Error; err != nil {
		return fmt.Errorf("failed to create booking: %w", err)
	}
	return nil
}

// Update overwrites the stored booking with booking inside a transaction
// that holds the row lock.
func (s *BookingService) Update(ctx context.Context, booking *models.Booking) error {
	return s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing models.Booking
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&existing, booking.ID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrBookingNotFound
			}
			return fmt.Errorf("failed to lock booking %d: %w", booking.ID, err)
		}

		if err := tx.Model(&existing).Updates(map[string]interface{}{
			"customer_id": booking.CustomerID,
			"room_id":     booking.RoomID,
			"start_date":  booking.StartDate,
			"end_date":    booking.EndDate,
			"is_active":   booking.IsActive,
		}).Error; err != nil {
			return fmt.Errorf("failed to update booking %d: %w", booking.ID, err)
		}
		return nil
	})
}

func (s *BookingService) Remove(ctx context.Context, id uint) error {
	res := s.DB.WithContext(ctx).Delete(&models.Booking{}, id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete booking %d: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrBookingNotFound
	}
	return nil
}
