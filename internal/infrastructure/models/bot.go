package models

import (
	"time"

	"github.com/google/uuid"
)

type Bot struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name            string    `gorm:"type:varchar(255);not null"`
	Price           float64   `gorm:"not null"`
	Cost            float64   `gorm:"not null"`
	SubscriptionFee float64   `gorm:"not null"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

type BotAssignment struct {
	ID                 uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID             uuid.UUID `gorm:"type:uuid;index;not null"`
	BrokerAccountID    uuid.UUID `gorm:"type:uuid;not null"`
	BotID              uuid.UUID `gorm:"type:uuid;index;not null"`
	SignedAgreementURL string    `gorm:"type:text;not null"`
	Status             string    `gorm:"type:varchar(20);not null;default:'pending'"`
	CreatedAt          time.Time
	UpdatedAt          time.Time
}
