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

func TestBrokerAccountRepository_CreateGetList(t *testing.T) {
	db := newTestDB(t)
	createBrokerAccountTable(t, db)
	repo := NewBrokerAccountRepository(db)
	ctx := context.Background()

	userID := uuid.New()
	first := &entities.BrokerAccount{
		ID:            uuid.New(),
		UserID:        userID,
		Broker:        "IC Markets",
		AccountType:   "Standard",
		AccountNumber: "100200",
		CreatedAt:     time.Now().Add(-time.Hour),
	}
	second := &entities.BrokerAccount{
		ID:            uuid.New(),
		UserID:        userID,
		Broker:        "Exness",
		AccountType:   "Raw Spread",
		AccountNumber: "100201",
		CreatedAt:     time.Now(),
	}
	require.NoError(t, repo.Create(ctx, first))
	require.NoError(t, repo.Create(ctx, second))

	got, err := repo.GetByID(ctx, first.ID)
	require.NoError(t, err)
	require.Equal(t, "IC Markets", got.Broker)

	list, err := repo.ListByUser(ctx, userID)
	require.NoError(t, err)
	require.Len(t, list, 2)
	require.Equal(t, first.ID, list[0].ID, "oldest first")

	other, err := repo.ListByUser(ctx, uuid.New())
	require.NoError(t, err)
	require.Empty(t, other)

	_, err = repo.GetByID(ctx, uuid.New())
	require.ErrorIs(t, err, domainerrors.ErrNotFound)
}

func TestBrokerAccountRepository_DBErrorBranches(t *testing.T) {
	db := newTestDB(t)
	// intentionally skip table creation
	repo := NewBrokerAccountRepository(db)
	ctx := context.Background()

	_, err := repo.GetByID(ctx, uuid.New())
	require.Error(t, err)
	_, err = repo.ListByUser(ctx, uuid.New())
	require.Error(t, err)
	err = repo.Create(ctx, &entities.BrokerAccount{ID: uuid.New(), UserID: uuid.New(), Broker: "x", AccountType: "x", AccountNumber: "1"})
	require.Error(t, err)
}
