package usecases

import (
	"context"
	"errors"

	"fx-bothub.backend/internal/domain/entities"
	domainerrors "fx-bothub.backend/internal/domain/errors"
	"fx-bothub.backend/internal/domain/repositories"
	"fx-bothub.backend/pkg/crypto"
	"fx-bothub.backend/pkg/jwt"
)

// AuthUsecase handles admin authentication
type AuthUsecase struct {
	adminRepo  repositories.AdminRepository
	jwtService *jwt.JWTService
}

// NewAuthUsecase creates a new auth usecase
func NewAuthUsecase(adminRepo repositories.AdminRepository, jwtService *jwt.JWTService) *AuthUsecase {
	return &AuthUsecase{
		adminRepo:  adminRepo,
		jwtService: jwtService,
	}
}

// Login authenticates an admin and issues a token pair. Unknown emails and
// wrong passwords produce the same error.
func (u *AuthUsecase) Login(ctx context.Context, input *entities.AdminLoginInput) (*entities.AdminAuthResponse, error) {
	admin, err := u.adminRepo.GetByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, domainerrors.Unauthorized("invalid email or password")
		}
		return nil, err
	}

	if !crypto.CheckPassword(input.Password, admin.PasswordHash) {
		return nil, domainerrors.Unauthorized("invalid email or password")
	}

	pair, err := u.jwtService.GenerateTokenPair(admin.ID, admin.Email, "admin")
	if err != nil {
		return nil, err
	}

	return &entities.AdminAuthResponse{
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
		Admin:        admin,
	}, nil
}
