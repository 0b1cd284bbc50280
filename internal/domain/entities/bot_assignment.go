package entities

import (
	"time"

	"github.com/google/uuid"
)

// BotAssignment is a user's request to activate a catalog bot on one of
// their broker accounts. Created pending; an admin approves or rejects it.
type BotAssignment struct {
	ID                 uuid.UUID      `json:"id"`
	UserID             uuid.UUID      `json:"userId"`
	BrokerAccountID    uuid.UUID      `json:"brokerAccountId"`
	BotID              uuid.UUID      `json:"botId"`
	SignedAgreementURL string         `json:"signedAgreementUrl"`
	Status             ApprovalStatus `json:"status"`
	CreatedAt          time.Time      `json:"createdAt"`
	UpdatedAt          time.Time      `json:"updatedAt"`
}

// CreateBotAssignmentInput represents input for requesting a bot
type CreateBotAssignmentInput struct {
	BrokerAccountID uuid.UUID `json:"brokerAccountId" binding:"required"`
	BotID           uuid.UUID `json:"botId" binding:"required"`
	SignedAgreement string    `json:"signedAgreementUrl" binding:"required"`
}

// BotAssignmentView is an assignment decorated with catalog and broker
// account display fields. Bot fields stay zero-valued when the referenced
// bot no longer exists.
type BotAssignmentView struct {
	ID                 uuid.UUID      `json:"id"`
	UserID             uuid.UUID      `json:"userId"`
	Broker             string         `json:"broker"`
	AccountNumber      string         `json:"accountNumber"`
	BotName            string         `json:"botName"`
	Price              float64        `json:"price"`
	SignedAgreementURL string         `json:"signedAgreementUrl"`
	Status             ApprovalStatus `json:"status"`
	CreatedAt          time.Time      `json:"createdAt"`

	// Populated on admin listings only.
	UserEmail string `json:"userEmail,omitempty"`
	UserName  string `json:"userName,omitempty"`
}
