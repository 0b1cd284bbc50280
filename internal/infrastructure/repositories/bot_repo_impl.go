package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"fx-bothub.backend/internal/domain/entities"
	domainerrors "fx-bothub.backend/internal/domain/errors"
	"fx-bothub.backend/internal/infrastructure/models"
)

// BotRepository implements bot catalog operations
type BotRepository struct {
	db *gorm.DB
}

// NewBotRepository creates a new bot repository
func NewBotRepository(db *gorm.DB) *BotRepository {
	return &BotRepository{db: db}
}

// Create creates a catalog entry
func (r *BotRepository) Create(ctx context.Context, bot *entities.Bot) error {
	m := &models.Bot{
		ID:              bot.ID,
		Name:            bot.Name,
		Price:           bot.Price,
		Cost:            bot.Cost,
		SubscriptionFee: bot.SubscriptionFee,
		CreatedAt:       bot.CreatedAt,
		UpdatedAt:       bot.UpdatedAt,
	}
	return r.db.WithContext(ctx).Create(m).Error
}

// GetByID gets a catalog entry by ID
func (r *BotRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Bot, error) {
	var m models.Bot
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return botToEntity(&m), nil
}

// Update replaces the four editable catalog fields
func (r *BotRepository) Update(ctx context.Context, bot *entities.Bot) error {
	result := r.db.WithContext(ctx).Model(&models.Bot{}).Where("id = ?", bot.ID).Updates(map[string]interface{}{
		"name":             bot.Name,
		"price":            bot.Price,
		"cost":             bot.Cost,
		"subscription_fee": bot.SubscriptionFee,
		"updated_at":       time.Now(),
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

// Delete hard deletes a catalog entry
func (r *BotRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.Bot{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

// List lists the catalog, newest first
func (r *BotRepository) List(ctx context.Context) ([]*entities.Bot, error) {
	var botModels []models.Bot
	if err := r.db.WithContext(ctx).Order("created_at DESC").Find(&botModels).Error; err != nil {
		return nil, err
	}

	bots := make([]*entities.Bot, 0, len(botModels))
	for i := range botModels {
		bots = append(bots, botToEntity(&botModels[i]))
	}
	return bots, nil
}

// Count counts catalog entries
func (r *BotRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.Bot{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func botToEntity(m *models.Bot) *entities.Bot {
	return &entities.Bot{
		ID:              m.ID,
		Name:            m.Name,
		Price:           m.Price,
		Cost:            m.Cost,
		SubscriptionFee: m.SubscriptionFee,
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
	}
}

// BotAssignmentRepository implements bot request operations
type BotAssignmentRepository struct {
	db *gorm.DB
}

// NewBotAssignmentRepository creates a new bot assignment repository
func NewBotAssignmentRepository(db *gorm.DB) *BotAssignmentRepository {
	return &BotAssignmentRepository{db: db}
}

// Create creates a pending bot request
func (r *BotAssignmentRepository) Create(ctx context.Context, assignment *entities.BotAssignment) error {
	m := &models.BotAssignment{
		ID:                 assignment.ID,
		UserID:             assignment.UserID,
		BrokerAccountID:    assignment.BrokerAccountID,
		BotID:              assignment.BotID,
		SignedAgreementURL: assignment.SignedAgreementURL,
		Status:             string(assignment.Status),
		CreatedAt:          assignment.CreatedAt,
		UpdatedAt:          assignment.UpdatedAt,
	}
	return r.db.WithContext(ctx).Create(m).Error
}

// GetByID gets a bot request by ID
func (r *BotAssignmentRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.BotAssignment, error) {
	var m models.BotAssignment
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return assignmentToEntity(&m), nil
}

// ListByUser lists a user's bot requests in creation order
func (r *BotAssignmentRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*entities.BotAssignment, error) {
	var assignmentModels []models.BotAssignment
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at ASC").
		Find(&assignmentModels).Error
	if err != nil {
		return nil, err
	}
	return assignmentsToEntities(assignmentModels), nil
}

// List lists all bot requests in creation order
func (r *BotAssignmentRepository) List(ctx context.Context) ([]*entities.BotAssignment, error) {
	var assignmentModels []models.BotAssignment
	if err := r.db.WithContext(ctx).Order("created_at ASC").Find(&assignmentModels).Error; err != nil {
		return nil, err
	}
	return assignmentsToEntities(assignmentModels), nil
}

// UpdateStatus sets the review outcome on a bot request
func (r *BotAssignmentRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status entities.ApprovalStatus) error {
	result := r.db.WithContext(ctx).Model(&models.BotAssignment{}).Where("id = ?", id).Updates(map[string]interface{}{
		"status":     string(status),
		"updated_at": time.Now(),
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

// CountByBot counts assignments referencing a catalog entry
func (r *BotAssignmentRepository) CountByBot(ctx context.Context, botID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.BotAssignment{}).Where("bot_id = ?", botID).Count(&count).Error
	if err != nil {
		return 0, err
	}
	return count, nil
}

// CountByStatus counts assignments in a given review state
func (r *BotAssignmentRepository) CountByStatus(ctx context.Context, status entities.ApprovalStatus) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.BotAssignment{}).Where("status = ?", string(status)).Count(&count).Error
	if err != nil {
		return 0, err
	}
	return count, nil
}

func assignmentsToEntities(assignmentModels []models.BotAssignment) []*entities.BotAssignment {
	assignments := make([]*entities.BotAssignment, 0, len(assignmentModels))
	for i := range assignmentModels {
		assignments = append(assignments, assignmentToEntity(&assignmentModels[i]))
	}
	return assignments
}

func assignmentToEntity(m *models.BotAssignment) *entities.BotAssignment {
	return &entities.BotAssignment{
		ID:                 m.ID,
		UserID:             m.UserID,
		BrokerAccountID:    m.BrokerAccountID,
		BotID:              m.BotID,
		SignedAgreementURL: m.SignedAgreementURL,
		Status:             entities.ApprovalStatus(m.Status),
		CreatedAt:          m.CreatedAt,
		UpdatedAt:          m.UpdatedAt,
	}
}
