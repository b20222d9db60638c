package models

import (
	"time"

	"gorm.io/gorm"
)

type Room struct {
	ID uint `gorm:"primaryKey" json:"id"`

	CreatedAt time.Time      `json:"-"`
	UpdatedAt time.Time      `json:"-"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	Description string `gorm:"column:description;type:text;not null" json:"description"`
}
