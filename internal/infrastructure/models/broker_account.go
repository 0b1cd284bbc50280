package models

import (
	"time"

	"github.com/google/uuid"
)

type BrokerAccount struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID        uuid.UUID `gorm:"type:uuid;index;not null"`
	Broker        string    `gorm:"type:varchar(100);not null"`
	AccountType   string    `gorm:"type:varchar(100);not null"`
	AccountNumber string    `gorm:"type:varchar(100);not null"`
	CreatedAt     time.Time
}
