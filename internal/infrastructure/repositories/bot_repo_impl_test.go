package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"fx-bothub.backend/internal/domain/entities"
	domainerrors "fx-bothub.backend/internal/domain/errors"
)

func newBotFixture(name string, price float64) *entities.Bot {
	now := time.Now()
	return &entities.Bot{
		ID:              uuid.New(),
		Name:            name,
		Price:           price,
		Cost:            price / 2,
		SubscriptionFee: 25,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
}

func TestBotRepository_CreateGetUpdateDelete(t *testing.T) {
	db := newTestDB(t)
	createBotTable(t, db)
	repo := NewBotRepository(db)
	ctx := context.Background()

	b := newBotFixture("Scalper Pro", 499)
	require.NoError(t, repo.Create(ctx, b))

	got, err := repo.GetByID(ctx, b.ID)
	require.NoError(t, err)
	require.Equal(t, "Scalper Pro", got.Name)
	require.EqualValues(t, 499, got.Price)

	b.Name = "Scalper Pro v2"
	b.Price = 549
	require.NoError(t, repo.Update(ctx, b))

	got, err = repo.GetByID(ctx, b.ID)
	require.NoError(t, err)
	require.Equal(t, "Scalper Pro v2", got.Name)
	require.EqualValues(t, 549, got.Price)

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	require.EqualValues(t, 1, count)

	require.NoError(t, repo.Delete(ctx, b.ID))
	_, err = repo.GetByID(ctx, b.ID)
	require.ErrorIs(t, err, domainerrors.ErrNotFound)
}

func TestBotRepository_ListNewestFirst(t *testing.T) {
	db := newTestDB(t)
	createBotTable(t, db)
	repo := NewBotRepository(db)
	ctx := context.Background()

	older := newBotFixture("Older", 100)
	older.CreatedAt = time.Now().Add(-time.Hour)
	newer := newBotFixture("Newer", 200)
	require.NoError(t, repo.Create(ctx, older))
	require.NoError(t, repo.Create(ctx, newer))

	bots, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, bots, 2)
	require.Equal(t, "Newer", bots[0].Name)
}

func TestBotRepository_NotFoundBranches(t *testing.T) {
	db := newTestDB(t)
	createBotTable(t, db)
	repo := NewBotRepository(db)
	ctx := context.Background()

	err := repo.Update(ctx, newBotFixture("ghost", 1))
	require.ErrorIs(t, err, domainerrors.ErrNotFound)

	err = repo.Delete(ctx, uuid.New())
	require.ErrorIs(t, err, domainerrors.ErrNotFound)
}

func TestBotAssignmentRepository_Lifecycle(t *testing.T) {
	db := newTestDB(t)
	createBotAssignmentTable(t, db)
	repo := NewBotAssignmentRepository(db)
	ctx := context.Background()

	userID := uuid.New()
	botID := uuid.New()
	now := time.Now()
	a := &entities.BotAssignment{
		ID:                 uuid.New(),
		UserID:             userID,
		BrokerAccountID:    uuid.New(),
		BotID:              botID,
		SignedAgreementURL: "data:application/pdf;base64,sig",
		Status:             entities.StatusPending,
		CreatedAt:          now,
		UpdatedAt:          now,
	}
	require.NoError(t, repo.Create(ctx, a))

	got, err := repo.GetByID(ctx, a.ID)
	require.NoError(t, err)
	require.Equal(t, entities.StatusPending, got.Status)

	byUser, err := repo.ListByUser(ctx, userID)
	require.NoError(t, err)
	require.Len(t, byUser, 1)

	all, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)

	require.NoError(t, repo.UpdateStatus(ctx, a.ID, entities.StatusApproved))
	got, err = repo.GetByID(ctx, a.ID)
	require.NoError(t, err)
	require.Equal(t, entities.StatusApproved, got.Status)

	refs, err := repo.CountByBot(ctx, botID)
	require.NoError(t, err)
	require.EqualValues(t, 1, refs)

	none, err := repo.CountByBot(ctx, uuid.New())
	require.NoError(t, err)
	require.EqualValues(t, 0, none)

	pending, err := repo.CountByStatus(ctx, entities.StatusPending)
	require.NoError(t, err)
	require.EqualValues(t, 0, pending)

	approved, err := repo.CountByStatus(ctx, entities.StatusApproved)
	require.NoError(t, err)
	require.EqualValues(t, 1, approved)
}

func TestBotAssignmentRepository_NotFoundBranches(t *testing.T) {
	db := newTestDB(t)
	createBotAssignmentTable(t, db)
	repo := NewBotAssignmentRepository(db)
	ctx := context.Background()

	_, err := repo.GetByID(ctx, uuid.New())
	require.ErrorIs(t, err, domainerrors.ErrNotFound)

	err = repo.UpdateStatus(ctx, uuid.New(), entities.StatusRejected)
	require.ErrorIs(t, err, domainerrors.ErrNotFound)
}
