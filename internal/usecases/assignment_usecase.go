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

// AssignmentUsecase handles bot requests: creation with the KYC gate and
// the admin review lifecycle.
type AssignmentUsecase struct {
	assignmentRepo repositories.BotAssignmentRepository
	accountRepo    repositories.BrokerAccountRepository
	botRepo        repositories.BotRepository
	userRepo       repositories.UserRepository
	blobs          storage.BlobStore
}

// NewAssignmentUsecase creates a new assignment usecase
func NewAssignmentUsecase(
	assignmentRepo repositories.BotAssignmentRepository,
	accountRepo repositories.BrokerAccountRepository,
	botRepo repositories.BotRepository,
	userRepo repositories.UserRepository,
	blobs storage.BlobStore,
) *AssignmentUsecase {
	return &AssignmentUsecase{
		assignmentRepo: assignmentRepo,
		accountRepo:    accountRepo,
		botRepo:        botRepo,
		userRepo:       userRepo,
		blobs:          blobs,
	}
}

// Create requests a bot for one of the user's broker accounts. The KYC
// gate is enforced here, not in the client: an owner whose kycStatus is
// not approved gets a 412 regardless of what the UI allowed.
func (u *AssignmentUsecase) Create(ctx context.Context, uid string, input *entities.CreateBotAssignmentInput) (*entities.BotAssignmentView, error) {
	user, err := u.userRepo.GetByUID(ctx, uid)
	if err != nil {
		return nil, err
	}

	if user.KYCStatus != entities.StatusApproved {
		return nil, domainerrors.PreconditionFailed("KYC must be approved before requesting a bot")
	}

	account, err := u.accountRepo.GetByID(ctx, input.BrokerAccountID)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, domainerrors.BadRequest("broker account not found")
		}
		return nil, err
	}
	if account.UserID != user.ID {
		return nil, domainerrors.Forbidden("broker account belongs to another user")
	}

	bot, err := u.botRepo.GetByID(ctx, input.BotID)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, domainerrors.BadRequest("bot not found")
		}
		return nil, err
	}

	agreementURL, err := u.blobs.Put(ctx, "signed-agreement", input.SignedAgreement)
	if err != nil {
		return nil, domainerrors.BadRequest("invalid signed agreement")
	}

	now := time.Now()
	assignment := &entities.BotAssignment{
		ID:                 utils.GenerateUUIDv7(),
		UserID:             user.ID,
		BrokerAccountID:    account.ID,
		BotID:              bot.ID,
		SignedAgreementURL: agreementURL,
		Status:             entities.StatusPending,
		CreatedAt:          now,
		UpdatedAt:          now,
	}
	if err := u.assignmentRepo.Create(ctx, assignment); err != nil {
		return nil, err
	}
	metrics.Registry().BotRequests.WithLabelValues("created").Inc()

	return &entities.BotAssignmentView{
		ID:                 assignment.ID,
		UserID:             assignment.UserID,
		Broker:             account.Broker,
		AccountNumber:      account.AccountNumber,
		BotName:            bot.Name,
		Price:              bot.Price,
		SignedAgreementURL: assignment.SignedAgreementURL,
		Status:             assignment.Status,
		CreatedAt:          assignment.CreatedAt,
	}, nil
}

// ListByUser lists a user's bot requests with catalog and account display
// fields attached
func (u *AssignmentUsecase) ListByUser(ctx context.Context, uid string) ([]*entities.BotAssignmentView, error) {
	user, err := u.userRepo.GetByUID(ctx, uid)
	if err != nil {
		return nil, err
	}

	assignments, err := u.assignmentRepo.ListByUser(ctx, user.ID)
	if err != nil {
		return nil, err
	}
	return u.decorate(ctx, assignments, nil)
}

// List lists all bot requests for admin review, with owner identity
func (u *AssignmentUsecase) List(ctx context.Context) ([]*entities.BotAssignmentView, error) {
	assignments, err := u.assignmentRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	owners := map[uuid.UUID]*entities.User{}
	return u.decorate(ctx, assignments, owners)
}

// Get fetches one bot request for admin review
func (u *AssignmentUsecase) Get(ctx context.Context, id uuid.UUID) (*entities.BotAssignmentView, error) {
	assignment, err := u.assignmentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	views, err := u.decorate(ctx, []*entities.BotAssignment{assignment}, map[uuid.UUID]*entities.User{})
	if err != nil {
		return nil, err
	}
	return views[0], nil
}

// Review applies an admin decision to a bot request. Repeating the same
// decision is a no-op; flipping a decided request is refused.
func (u *AssignmentUsecase) Review(ctx context.Context, id uuid.UUID, decision entities.ApprovalStatus) error {
	assignment, err := u.assignmentRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	next, err := entities.Transition(assignment.Status, decision)
	if err != nil {
		return domainerrors.InvalidTransition("bot request is already decided")
	}
	if next == assignment.Status {
		return nil
	}
	if err := u.assignmentRepo.UpdateStatus(ctx, id, next); err != nil {
		return err
	}
	metrics.Registry().ApprovalDecisions.WithLabelValues("bot_request", string(next)).Inc()
	return nil
}

// decorate joins bots and broker accounts onto assignments. A deleted bot
// or account leaves its display fields empty rather than failing the list.
// When owners is non-nil the owning user's identity is attached too.
func (u *AssignmentUsecase) decorate(ctx context.Context, assignments []*entities.BotAssignment, owners map[uuid.UUID]*entities.User) ([]*entities.BotAssignmentView, error) {
	views := make([]*entities.BotAssignmentView, 0, len(assignments))
	bots := map[uuid.UUID]*entities.Bot{}
	accounts := map[uuid.UUID]*entities.BrokerAccount{}

	for _, a := range assignments {
		view := &entities.BotAssignmentView{
			ID:                 a.ID,
			UserID:             a.UserID,
			SignedAgreementURL: a.SignedAgreementURL,
			Status:             a.Status,
			CreatedAt:          a.CreatedAt,
		}

		bot, ok := bots[a.BotID]
		if !ok {
			var err error
			bot, err = u.botRepo.GetByID(ctx, a.BotID)
			if err != nil && !errors.Is(err, domainerrors.ErrNotFound) {
				return nil, err
			}
			bots[a.BotID] = bot
		}
		if bot != nil {
			view.BotName = bot.Name
			view.Price = bot.Price
		}

		account, ok := accounts[a.BrokerAccountID]
		if !ok {
			var err error
			account, err = u.accountRepo.GetByID(ctx, a.BrokerAccountID)
			if err != nil && !errors.Is(err, domainerrors.ErrNotFound) {
				return nil, err
			}
			accounts[a.BrokerAccountID] = account
		}
		if account != nil {
			view.Broker = account.Broker
			view.AccountNumber = account.AccountNumber
		}

		if owners != nil {
			owner, ok := owners[a.UserID]
			if !ok {
				var err error
				owner, err = u.userRepo.GetByID(ctx, a.UserID)
				if err != nil && !errors.Is(err, domainerrors.ErrNotFound) {
					return nil, err
				}
				owners[a.UserID] = owner
			}
			if owner != nil {
				view.UserEmail = owner.Email
				view.UserName = owner.Name
			}
		}

		views = append(views, view)
	}
	return views, nil
}
