package entities

import (
	"time"

	"github.com/google/uuid"
)

// Bot is a priced catalog entry managed by admins and referenced by
// bot assignments.
type Bot struct {
	ID              uuid.UUID `json:"id"`
	Name            string    `json:"name"`
	Price           float64   `json:"price"`
	Cost            float64   `json:"cost"`
	SubscriptionFee float64   `json:"subscriptionFee"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

// BotInput represents input for creating or replacing a catalog entry.
// All three money fields are required and must be non-negative.
type BotInput struct {
	Name            string   `json:"name" binding:"required,min=1,max=255"`
	Price           *float64 `json:"price" binding:"required,gte=0"`
	Cost            *float64 `json:"cost" binding:"required,gte=0"`
	SubscriptionFee *float64 `json:"subscriptionFee" binding:"required,gte=0"`
}
