package usecases

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"fx-bothub.backend/internal/domain/entities"
	domainerrors "fx-bothub.backend/internal/domain/errors"
	"fx-bothub.backend/internal/domain/repositories"
	"fx-bothub.backend/internal/infrastructure/storage"
	"fx-bothub.backend/internal/metrics"
	"fx-bothub.backend/pkg/utils"
)

// KycUsecase handles KYC submission and the admin review lifecycle
type KycUsecase struct {
	kycRepo  repositories.KycProfileRepository
	userRepo repositories.UserRepository
	blobs    storage.BlobStore
}

// NewKycUsecase creates a new KYC usecase
func NewKycUsecase(
	kycRepo repositories.KycProfileRepository,
	userRepo repositories.UserRepository,
	blobs storage.BlobStore,
) *KycUsecase {
	return &KycUsecase{
		kycRepo:  kycRepo,
		userRepo: userRepo,
		blobs:    blobs,
	}
}

// Submit stores a user's one-shot KYC profile. A second submission is
// refused; there is no resubmission flow.
func (u *KycUsecase) Submit(ctx context.Context, uid string, input *entities.SubmitKycInput) (*entities.KycProfile, error) {
	user, err := u.userRepo.GetByUID(ctx, uid)
	if err != nil {
		return nil, err
	}

	existing, err := u.kycRepo.GetByUserID(ctx, user.ID)
	if err != nil && !errors.Is(err, domainerrors.ErrNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, domainerrors.Conflict("KYC already submitted")
	}

	frontURL, err := u.blobs.Put(ctx, "nic-front", input.NICFront)
	if err != nil {
		return nil, domainerrors.BadRequest("invalid NIC front image")
	}
	backURL, err := u.blobs.Put(ctx, "nic-back", input.NICBack)
	if err != nil {
		return nil, domainerrors.BadRequest("invalid NIC back image")
	}

	profile := &entities.KycProfile{
		ID:            utils.GenerateUUIDv7(),
		UserID:        user.ID,
		FullName:      input.FullName,
		Address:       input.Address,
		City:          input.City,
		Country:       input.Country,
		IDNumber:      input.IDNumber,
		NICFrontImage: frontURL,
		NICBackImage:  backURL,
		CreatedAt:     time.Now(),
	}
	if err := u.kycRepo.Create(ctx, profile); err != nil {
		return nil, err
	}
	return profile, nil
}

// ListRequests lists all KYC submissions for admin review
func (u *KycUsecase) ListRequests(ctx context.Context) ([]*entities.KycRequest, error) {
	return u.kycRepo.ListRequests(ctx)
}

// GetRequest fetches one KYC submission for admin review
func (u *KycUsecase) GetRequest(ctx context.Context, userID uuid.UUID) (*entities.KycRequest, error) {
	return u.kycRepo.GetRequest(ctx, userID)
}

// Review applies an admin decision to a user's KYC. Approval marks KYC
// completed; repeating the same decision is a no-op.
func (u *KycUsecase) Review(ctx context.Context, userID uuid.UUID, decision entities.ApprovalStatus) error {
	user, err := u.userRepo.GetByID(ctx, userID)
	if err != nil {
		return err
	}

	if _, err := u.kycRepo.GetByUserID(ctx, user.ID); err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return domainerrors.NotFound("no KYC submission for user")
		}
		return err
	}

	next, err := entities.Transition(user.KYCStatus, decision)
	if err != nil {
		return domainerrors.InvalidTransition("KYC status is already decided")
	}
	if next == user.KYCStatus && user.KYCCompleted == (next == entities.StatusApproved) {
		return nil
	}
	if err := u.userRepo.UpdateKYCStatus(ctx, user.ID, next, next == entities.StatusApproved); err != nil {
		return err
	}
	metrics.Registry().ApprovalDecisions.WithLabelValues("kyc", string(next)).Inc()
	return nil
}
