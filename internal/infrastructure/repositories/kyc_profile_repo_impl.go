package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
	"gorm.io/gorm"

	"fx-bothub.backend/internal/domain/entities"
	domainerrors "fx-bothub.backend/internal/domain/errors"
	"fx-bothub.backend/internal/infrastructure/models"
)

// KycProfileRepository implements KYC submission operations
type KycProfileRepository struct {
	db *gorm.DB
}

// NewKycProfileRepository creates a new KYC profile repository
func NewKycProfileRepository(db *gorm.DB) *KycProfileRepository {
	return &KycProfileRepository{db: db}
}

// Create stores a one-shot KYC submission
func (r *KycProfileRepository) Create(ctx context.Context, profile *entities.KycProfile) error {
	m := &models.KycProfile{
		ID:            profile.ID,
		UserID:        profile.UserID,
		FullName:      profile.FullName,
		Address:       profile.Address,
		City:          profile.City,
		Country:       profile.Country,
		IDNumber:      profile.IDNumber,
		NICFrontImage: profile.NICFrontImage,
		NICBackImage:  profile.NICBackImage,
		CreatedAt:     profile.CreatedAt,
	}
	return r.db.WithContext(ctx).Create(m).Error
}

// GetByUserID gets the KYC profile owned by a user
func (r *KycProfileRepository) GetByUserID(ctx context.Context, userID uuid.UUID) (*entities.KycProfile, error) {
	var m models.KycProfile
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return kycToEntity(&m), nil
}

// kycRequestRow carries the profile/user join used by the admin review list.
type kycRequestRow struct {
	UserID        uuid.UUID
	Email         string
	Name          string
	KYCStatus     string
	KYCReviewedAt *time.Time
	FullName      string
	Address       string
	City          string
	Country       string
	IDNumber      string
	NICFrontImage string
	NICBackImage  string
	CreatedAt     time.Time
}

const kycRequestSelect = `users.id as user_id, users.email, users.name,
users.kyc_status, users.kyc_reviewed_at,
kyc_profiles.full_name, kyc_profiles.address, kyc_profiles.city,
kyc_profiles.country, kyc_profiles.id_number,
kyc_profiles.nic_front_image, kyc_profiles.nic_back_image,
kyc_profiles.created_at`

// ListRequests lists every KYC submission joined with the owner, oldest first
func (r *KycProfileRepository) ListRequests(ctx context.Context) ([]*entities.KycRequest, error) {
	var rows []kycRequestRow
	err := r.db.WithContext(ctx).
		Table("kyc_profiles").
		Select(kycRequestSelect).
		Joins("JOIN users ON users.id = kyc_profiles.user_id AND users.deleted_at IS NULL").
		Order("kyc_profiles.created_at ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	requests := make([]*entities.KycRequest, 0, len(rows))
	for i := range rows {
		requests = append(requests, rowToKycRequest(&rows[i]))
	}
	return requests, nil
}

// GetRequest fetches one KYC submission joined with the owner
func (r *KycProfileRepository) GetRequest(ctx context.Context, userID uuid.UUID) (*entities.KycRequest, error) {
	var row kycRequestRow
	result := r.db.WithContext(ctx).
		Table("kyc_profiles").
		Select(kycRequestSelect).
		Joins("JOIN users ON users.id = kyc_profiles.user_id AND users.deleted_at IS NULL").
		Where("kyc_profiles.user_id = ?", userID).
		Limit(1).
		Scan(&row)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, domainerrors.ErrNotFound
	}
	return rowToKycRequest(&row), nil
}

func kycToEntity(m *models.KycProfile) *entities.KycProfile {
	return &entities.KycProfile{
		ID:            m.ID,
		UserID:        m.UserID,
		FullName:      m.FullName,
		Address:       m.Address,
		City:          m.City,
		Country:       m.Country,
		IDNumber:      m.IDNumber,
		NICFrontImage: m.NICFrontImage,
		NICBackImage:  m.NICBackImage,
		CreatedAt:     m.CreatedAt,
	}
}

func rowToKycRequest(row *kycRequestRow) *entities.KycRequest {
	return &entities.KycRequest{
		UserID:      row.UserID,
		Email:       row.Email,
		Name:        row.Name,
		KYCStatus:   entities.ApprovalStatus(row.KYCStatus),
		FullName:    row.FullName,
		Address:     row.Address,
		City:        row.City,
		Country:     row.Country,
		IDNumber:    row.IDNumber,
		NICFront:    row.NICFrontImage,
		NICBack:     row.NICBackImage,
		SubmittedAt: row.CreatedAt,
		ReviewedAt:  null.TimeFromPtr(row.KYCReviewedAt),
	}
}
