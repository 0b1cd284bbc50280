package models

import (
	"time"

	"github.com/google/uuid"
)

type KycProfile struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID        uuid.UUID `gorm:"type:uuid;uniqueIndex;not null"`
	FullName      string    `gorm:"type:varchar(255);not null"`
	Address       string    `gorm:"type:varchar(255);not null"`
	City          string    `gorm:"type:varchar(100);not null"`
	Country       string    `gorm:"type:varchar(100);not null"`
	IDNumber      string    `gorm:"type:varchar(100);not null"`
	NICFrontImage string    `gorm:"type:text;not null"`
	NICBackImage  string    `gorm:"type:text;not null"`
	CreatedAt     time.Time
}
