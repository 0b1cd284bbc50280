package usecases

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"

	"fx-bothub.backend/internal/domain/entities"
	domainerrors "fx-bothub.backend/internal/domain/errors"
	"fx-bothub.backend/internal/domain/repositories"
	"fx-bothub.backend/pkg/utils"
)

// CatalogUsecase handles admin CRUD over the bot price catalog
type CatalogUsecase struct {
	botRepo        repositories.BotRepository
	assignmentRepo repositories.BotAssignmentRepository
}

// NewCatalogUsecase creates a new catalog usecase
func NewCatalogUsecase(
	botRepo repositories.BotRepository,
	assignmentRepo repositories.BotAssignmentRepository,
) *CatalogUsecase {
	return &CatalogUsecase{
		botRepo:        botRepo,
		assignmentRepo: assignmentRepo,
	}
}

// List lists the catalog, newest first
func (u *CatalogUsecase) List(ctx context.Context) ([]*entities.Bot, error) {
	return u.botRepo.List(ctx)
}

// Create adds a catalog entry
func (u *CatalogUsecase) Create(ctx context.Context, input *entities.BotInput) (*entities.Bot, error) {
	if err := validateBotInput(input); err != nil {
		return nil, err
	}

	now := time.Now()
	bot := &entities.Bot{
		ID:              utils.GenerateUUIDv7(),
		Name:            input.Name,
		Price:           *input.Price,
		Cost:            *input.Cost,
		SubscriptionFee: *input.SubscriptionFee,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if err := u.botRepo.Create(ctx, bot); err != nil {
		return nil, err
	}
	return bot, nil
}

// Update replaces the editable fields of a catalog entry
func (u *CatalogUsecase) Update(ctx context.Context, id uuid.UUID, input *entities.BotInput) (*entities.Bot, error) {
	if err := validateBotInput(input); err != nil {
		return nil, err
	}

	bot, err := u.botRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	bot.Name = input.Name
	bot.Price = *input.Price
	bot.Cost = *input.Cost
	bot.SubscriptionFee = *input.SubscriptionFee
	if err := u.botRepo.Update(ctx, bot); err != nil {
		return nil, err
	}
	return u.botRepo.GetByID(ctx, id)
}

// Delete removes a catalog entry. The delete is restricted while any bot
// request still references the entry.
func (u *CatalogUsecase) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := u.botRepo.GetByID(ctx, id); err != nil {
		return err
	}

	refs, err := u.assignmentRepo.CountByBot(ctx, id)
	if err != nil {
		return err
	}
	if refs > 0 {
		return domainerrors.NewAppError(http.StatusConflict, "bot is referenced by existing bot requests", domainerrors.ErrReferenceConstraint)
	}
	return u.botRepo.Delete(ctx, id)
}

func validateBotInput(input *entities.BotInput) error {
	if input.Price == nil || input.Cost == nil || input.SubscriptionFee == nil {
		return domainerrors.BadRequest("price, cost and subscriptionFee are required")
	}
	if *input.Price < 0 || *input.Cost < 0 || *input.SubscriptionFee < 0 {
		return domainerrors.BadRequest("price fields must be non-negative")
	}
	return nil
}
