package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
)

// KycProfile is the one-shot identity submission owned 1:1 by a user.
// It is immutable after creation; only the owning user's kycStatus moves.
type KycProfile struct {
	ID            uuid.UUID `json:"id"`
	UserID        uuid.UUID `json:"userId"`
	FullName      string    `json:"fullName"`
	Address       string    `json:"address"`
	City          string    `json:"city"`
	Country       string    `json:"country"`
	IDNumber      string    `json:"idNumber"`
	NICFrontImage string    `json:"nicFrontImage"`
	NICBackImage  string    `json:"nicBackImage"`
	CreatedAt     time.Time `json:"createdAt"`
}

// SubmitKycInput represents the KYC form payload. The NIC images arrive
// already encoded as data URLs; the blob store decides where they live.
type SubmitKycInput struct {
	FullName string `json:"fullName" binding:"required"`
	Address  string `json:"address" binding:"required"`
	City     string `json:"city" binding:"required"`
	Country  string `json:"country" binding:"required"`
	IDNumber string `json:"idNumber" binding:"required"`
	NICFront string `json:"nicFront" binding:"required"`
	NICBack  string `json:"nicBack" binding:"required"`
}

// KycRequest is the admin review row: the submitted profile joined with
// the owning user's identity and current review status.
type KycRequest struct {
	UserID       uuid.UUID      `json:"id"`
	Email        string         `json:"email"`
	Name         string         `json:"name"`
	KYCStatus    ApprovalStatus `json:"kycStatus"`
	FullName     string         `json:"fullName"`
	Address      string         `json:"address"`
	City         string         `json:"city"`
	Country      string         `json:"country"`
	IDNumber     string         `json:"idNumber"`
	NICFront     string         `json:"nicFrontImage"`
	NICBack      string         `json:"nicBackImage"`
	SubmittedAt  time.Time      `json:"submittedAt"`
	ReviewedAt   null.Time      `json:"reviewedAt,omitempty"`
}

// UserProfile is the user record with its KYC profile, if one exists.
type UserProfile struct {
	User  *User          `json:"user"`
	Kyc   *KycProfile    `json:"kyc,omitempty"`
	Route DashboardRoute `json:"route"`
}
