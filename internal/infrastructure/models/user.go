package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type User struct {
	ID             uuid.UUID  `gorm:"type:uuid;primaryKey"`
	UID            string     `gorm:"type:varchar(128);uniqueIndex;not null"`
	Email          string     `gorm:"type:varchar(255);uniqueIndex;not null"`
	Name           string     `gorm:"type:varchar(100);not null"`
	Status         string     `gorm:"type:varchar(20);not null;default:'pending'"`
	KYCCompleted   bool       `gorm:"not null;default:false"`
	KYCStatus      string     `gorm:"type:varchar(20);not null;default:'pending'"`
	KYCReviewedAt  *time.Time `gorm:"type:timestamp"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
	DeletedAt      gorm.DeletedAt `gorm:"index"`
}

type Admin struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Email        string    `gorm:"type:varchar(255);uniqueIndex;not null"`
	Name         string    `gorm:"type:varchar(100);not null"`
	PasswordHash string    `gorm:"type:varchar(255);not null"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
