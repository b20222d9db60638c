package config

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"hotel-booking/models"
)

const (
	seedOccupiedFrom = 10
	seedOccupiedTo   = 20
)

// SeedDatabase fills an empty store with two customers, three rooms and one
// active booking per room covering today+10 .. today+20. It does nothing
// when bookings already exist, so repeated start-ups are safe.
func SeedDatabase(ctx context.Context, db *gorm.DB, today time.Time, log *zap.Logger) error {
	db = db.WithContext(ctx)

	var count int64
	if err := db.Model(&models.Booking{}).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to count bookings: %w", err)
	}
	if count > 0 {
		log.Info("bookings already seeded")
		return nil
	}

	y, m, d := today.Date()
	day := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	start := datatypes.Date(day.AddDate(0, 0, seedOccupiedFrom))
	end := datatypes.Date(day.AddDate(0, 0, seedOccupiedTo))

	return db.Transaction(func(tx *gorm.DB) error {
		customers := []models.Customer{
			{Name: "Test User 1", Email: "test1@example.com"},
			{Name: "Test User 2", Email: "test2@example.com"},
		}
		if err := tx.Create(&customers).Error; err != nil {
			return fmt.Errorf("failed to seed customers: %w", err)
		}

		rooms := []models.Room{
			{Description: "Room 1"},
			{Description: "Room 2"},
			{Description: "Room 3"},
		}
		if err := tx.Create(&rooms).Error; err != nil {
			return fmt.Errorf("failed to seed rooms: %w", err)
		}

		bookings := make([]models.Booking, 0, len(rooms))
		for i, room := range rooms {
			bookings = append(bookings, models.Booking{
				CustomerID: customers[i%len(customers)].ID,
				RoomID:     room.ID,
				StartDate:  start,
				EndDate:    end,
				IsActive:   true,
			})
		}
		if err := tx.Create(&bookings).Error; err != nil {
			return fmt.Errorf("failed to seed bookings: %w", err)
		}

		log.Info("database seeded",
			zap.Int("customers", len(customers)),
			zap.Int("rooms", len(rooms)),
			zap.Int("bookings", len(bookings)),
		)
		return nil
	})
}
