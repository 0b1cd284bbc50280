package entities

import (
	"time"

	"github.com/google/uuid"
)

// DashboardRoute tells the client which page the user belongs on.
type DashboardRoute string

const (
	RoutePendingApproval DashboardRoute = "pending-approval"
	RouteKycForm         DashboardRoute = "kyc-form"
	RouteDashboard       DashboardRoute = "dashboard"
)

// User represents a platform user. The UID comes from the external
// identity provider and is the key user-facing endpoints are addressed by.
type User struct {
	ID           uuid.UUID      `json:"id"`
	UID          string         `json:"uid"`
	Email        string         `json:"email"`
	Name         string         `json:"name"`
	Status       ApprovalStatus `json:"status"`
	KYCCompleted bool           `json:"kycCompleted"`
	KYCStatus    ApprovalStatus `json:"kycStatus"`
	CreatedAt    time.Time      `json:"createdAt"`
	UpdatedAt    time.Time      `json:"updatedAt"`
	DeletedAt    *time.Time     `json:"-"`
}

// Route computes the dashboard routing decision from the user's state:
// unapproved accounts wait, approved accounts without KYC fill the form,
// everyone else lands on the dashboard.
func (u *User) Route() DashboardRoute {
	if u == nil || u.Status != StatusApproved {
		return RoutePendingApproval
	}
	if !u.KYCCompleted {
		return RouteKycForm
	}
	return RouteDashboard
}

// CreateUserInput represents input for registering a user record
type CreateUserInput struct {
	UID   string `json:"uid" binding:"required"`
	Email string `json:"email" binding:"required,email"`
	Name  string `json:"name" binding:"required,min=2,max=100"`
}

// UserResponse is a user record plus the routing decision for the client
type UserResponse struct {
	*User
	Route DashboardRoute `json:"route"`
}
