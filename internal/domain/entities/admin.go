package entities

import (
	"time"

	"github.com/google/uuid"
)

// Admin is a back-office operator account. Admins authenticate with
// email/password and act on the approval workflows.
type Admin struct {
	ID           uuid.UUID `json:"id"`
	Email        string    `json:"email"`
	Name         string    `json:"name"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"createdAt"`
}

// AdminLoginInput represents input for admin login
type AdminLoginInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// AdminAuthResponse represents a successful admin login
type AdminAuthResponse struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
	Admin        *Admin `json:"admin"`
}

// AdminStats is the admin dashboard summary
type AdminStats struct {
	TotalUsers         int64 `json:"totalUsers"`
	TotalBots          int64 `json:"totalBots"`
	PendingKyc         int64 `json:"pendingKyc"`
	PendingBotRequests int64 `json:"pendingBotRequests"`
}
