package entities

import (
	"time"

	"github.com/google/uuid"
)

// BrokerAccount is a user-declared external trading account. Accounts are
// create-only; a user may register any number of them.
type BrokerAccount struct {
	ID            uuid.UUID `json:"id"`
	UserID        uuid.UUID `json:"userId"`
	Broker        string    `json:"broker"`
	AccountType   string    `json:"accountType"`
	AccountNumber string    `json:"accountNumber"`
	CreatedAt     time.Time `json:"createdAt"`
}

// CreateBrokerAccountInput represents input for declaring a broker account
type CreateBrokerAccountInput struct {
	Broker        string `json:"broker" binding:"required"`
	AccountType   string `json:"accountType" binding:"required"`
	AccountNumber string `json:"accountNumber" binding:"required"`
}
