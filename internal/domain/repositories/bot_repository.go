package repositories

import (
	"context"

	"github.com/google/uuid"
	"fx-bothub.backend/internal/domain/entities"
)

// BotRepository defines bot catalog operations
type BotRepository interface {
	Create(ctx context.Context, bot *entities.Bot) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.Bot, error)
	Update(ctx context.Context, bot *entities.Bot) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context) ([]*entities.Bot, error)
	Count(ctx context.Context) (int64, error)
}

// BotAssignmentRepository defines bot request operations
type BotAssignmentRepository interface {
	Create(ctx context.Context, assignment *entities.BotAssignment) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.BotAssignment, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*entities.BotAssignment, error)
	List(ctx context.Context) ([]*entities.BotAssignment, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status entities.ApprovalStatus) error
	CountByBot(ctx context.Context, botID uuid.UUID) (int64, error)
	CountByStatus(ctx context.Context, status entities.ApprovalStatus) (int64, error)
}
