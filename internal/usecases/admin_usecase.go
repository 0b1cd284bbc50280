package usecases

import (
	"context"

	"fx-bothub.backend/internal/domain/entities"
	"fx-bothub.backend/internal/domain/repositories"
)

// AdminUsecase backs the admin dashboard: user listings and the
// summary counters.
type AdminUsecase struct {
	userRepo       repositories.UserRepository
	kycRepo        repositories.KycProfileRepository
	botRepo        repositories.BotRepository
	assignmentRepo repositories.BotAssignmentRepository
}

// NewAdminUsecase creates a new admin usecase
func NewAdminUsecase(
	userRepo repositories.UserRepository,
	kycRepo repositories.KycProfileRepository,
	botRepo repositories.BotRepository,
	assignmentRepo repositories.BotAssignmentRepository,
) *AdminUsecase {
	return &AdminUsecase{
		userRepo:       userRepo,
		kycRepo:        kycRepo,
		botRepo:        botRepo,
		assignmentRepo: assignmentRepo,
	}
}

// ListUsers lists registered users, oldest first, optionally filtered by a
// name or email search term.
func (u *AdminUsecase) ListUsers(ctx context.Context, search string) ([]*entities.UserResponse, error) {
	users, err := u.userRepo.List(ctx, search)
	if err != nil {
		return nil, err
	}

	responses := make([]*entities.UserResponse, 0, len(users))
	for _, user := range users {
		responses = append(responses, &entities.UserResponse{User: user, Route: user.Route()})
	}
	return responses, nil
}

// Stats computes the dashboard summary counters
func (u *AdminUsecase) Stats(ctx context.Context) (*entities.AdminStats, error) {
	totalUsers, err := u.userRepo.Count(ctx)
	if err != nil {
		return nil, err
	}

	totalBots, err := u.botRepo.Count(ctx)
	if err != nil {
		return nil, err
	}

	requests, err := u.kycRepo.ListRequests(ctx)
	if err != nil {
		return nil, err
	}
	var pendingKyc int64
	for _, r := range requests {
		if r.KYCStatus == entities.StatusPending {
			pendingKyc++
		}
	}

	pendingBotRequests, err := u.assignmentRepo.CountByStatus(ctx, entities.StatusPending)
	if err != nil {
		return nil, err
	}

	return &entities.AdminStats{
		TotalUsers:         totalUsers,
		TotalBots:          totalBots,
		PendingKyc:         pendingKyc,
		PendingBotRequests: pendingBotRequests,
	}, nil
}
