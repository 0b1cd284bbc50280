package usecases

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"fx-bothub.backend/internal/domain/entities"
	domainerrors "fx-bothub.backend/internal/domain/errors"
	"fx-bothub.backend/internal/domain/repositories"
	"fx-bothub.backend/internal/metrics"
	"fx-bothub.backend/pkg/utils"
)

// OnboardingUsecase handles user registration, lookup and the account
// approval lifecycle.
type OnboardingUsecase struct {
	userRepo repositories.UserRepository
	kycRepo  repositories.KycProfileRepository
}

// NewOnboardingUsecase creates a new onboarding usecase
func NewOnboardingUsecase(
	userRepo repositories.UserRepository,
	kycRepo repositories.KycProfileRepository,
) *OnboardingUsecase {
	return &OnboardingUsecase{
		userRepo: userRepo,
		kycRepo:  kycRepo,
	}
}

// Register creates the backend record for an identity-provider user.
// Registering an already-known uid returns the existing record unchanged.
func (u *OnboardingUsecase) Register(ctx context.Context, input *entities.CreateUserInput) (*entities.UserResponse, error) {
	existing, err := u.userRepo.GetByUID(ctx, input.UID)
	if err != nil && !errors.Is(err, domainerrors.ErrNotFound) {
		return nil, err
	}
	if existing != nil {
		return &entities.UserResponse{User: existing, Route: existing.Route()}, nil
	}

	now := time.Now()
	user := &entities.User{
		ID:           utils.GenerateUUIDv7(),
		UID:          input.UID,
		Email:        input.Email,
		Name:         input.Name,
		Status:       entities.StatusPending,
		KYCCompleted: false,
		KYCStatus:    entities.StatusPending,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := u.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	return &entities.UserResponse{User: user, Route: user.Route()}, nil
}

// GetByUID fetches a user record with its routing decision
func (u *OnboardingUsecase) GetByUID(ctx context.Context, uid string) (*entities.UserResponse, error) {
	user, err := u.userRepo.GetByUID(ctx, uid)
	if err != nil {
		return nil, err
	}
	return &entities.UserResponse{User: user, Route: user.Route()}, nil
}

// GetProfile fetches a user record with its KYC profile, if submitted
func (u *OnboardingUsecase) GetProfile(ctx context.Context, uid string) (*entities.UserProfile, error) {
	user, err := u.userRepo.GetByUID(ctx, uid)
	if err != nil {
		return nil, err
	}

	profile := &entities.UserProfile{User: user, Route: user.Route()}
	kyc, err := u.kycRepo.GetByUserID(ctx, user.ID)
	if err != nil && !errors.Is(err, domainerrors.ErrNotFound) {
		return nil, err
	}
	profile.Kyc = kyc
	return profile, nil
}

// Approve grants platform access to a pending user
func (u *OnboardingUsecase) Approve(ctx context.Context, id uuid.UUID) error {
	user, err := u.userRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	next, err := entities.Transition(user.Status, entities.StatusApproved)
	if err != nil {
		return domainerrors.InvalidTransition("user status cannot change to approved")
	}
	if next == user.Status {
		return nil
	}
	if err := u.userRepo.UpdateStatus(ctx, id, next); err != nil {
		return err
	}
	metrics.Registry().ApprovalDecisions.WithLabelValues("user", string(next)).Inc()
	return nil
}

// Delete removes a user record
func (u *OnboardingUsecase) Delete(ctx context.Context, id uuid.UUID) error {
	return u.userRepo.SoftDelete(ctx, id)
}
