package repositories

import (
	"context"

	"github.com/google/uuid"
	"fx-bothub.backend/internal/domain/entities"
)

// UserRepository defines user data operations
type UserRepository interface {
	Create(ctx context.Context, user *entities.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.User, error)
	GetByUID(ctx context.Context, uid string) (*entities.User, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status entities.ApprovalStatus) error
	UpdateKYCStatus(ctx context.Context, id uuid.UUID, status entities.ApprovalStatus, completed bool) error
	SoftDelete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, search string) ([]*entities.User, error)
	Count(ctx context.Context) (int64, error)
}

// AdminRepository defines admin account operations
type AdminRepository interface {
	Create(ctx context.Context, admin *entities.Admin) error
	GetByEmail(ctx context.Context, email string) (*entities.Admin, error)
}
