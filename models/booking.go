package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Booking reserves one room for an inclusive range of calendar dates.
// Only active bookings take part in availability decisions.
type Booking struct {
	ID uint `gorm:"primaryKey" json:"id"`

	CreatedAt time.Time      `json:"-"`
	UpdatedAt time.Time      `json:"-"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	CustomerID uint           `gorm:"index;column:customer_id" json:"customerId"`
	RoomID     uint           `gorm:"index;column:room_id" json:"roomId"`
	StartDate  datatypes.Date `gorm:"column:start_date;not null" json:"startDate"`
	EndDate    datatypes.Date `gorm:"column:end_date;not null" json:"endDate"`

	// no gorm default here: a default would replace an explicit false on insert
	IsActive bool `gorm:"column:is_active" json:"isActive"`
}

func (b Booking) Start() time.Time { return time.Time(b.StartDate) }

func (b Booking) End() time.Time { return time.Time(b.EndDate) }
