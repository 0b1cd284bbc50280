package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"fx-bothub.backend/internal/domain/entities"
	domainerrors "fx-bothub.backend/internal/domain/errors"
	"fx-bothub.backend/internal/usecases"
)

func newUserRouter(userRepo *userRepoStub, kycRepo *kycRepoStub) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewUserHandler(usecases.NewOnboardingUsecase(userRepo, kycRepo))
	r := gin.New()
	r.POST("/api/users", h.Register)
	r.GET("/api/users/:uid", h.Get)
	r.GET("/api/users/:uid/profile", h.GetProfile)
	return r
}

func TestUserHandler_Register(t *testing.T) {
	var created *entities.User
	r := newUserRouter(&userRepoStub{
		createFn: func(_ context.Context, u *entities.User) error {
			created = u
			return nil
		},
	}, &kycRepoStub{})

	body := `{"uid":"firebase-1","email":"new@mail.com","name":"New User"}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/users", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	require.NotNil(t, created)
	require.Equal(t, "firebase-1", created.UID)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Equal(t, "pending-approval", resp["route"])
}

func TestUserHandler_Register_InvalidPayload(t *testing.T) {
	r := newUserRouter(&userRepoStub{}, &kycRepoStub{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/users", strings.NewReader(`{"uid":""}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUserHandler_Get(t *testing.T) {
	user := &entities.User{
		ID:           uuid.New(),
		UID:          "firebase-2",
		Status:       entities.StatusApproved,
		KYCCompleted: true,
	}
	r := newUserRouter(&userRepoStub{
		getByUIDFn: func(_ context.Context, uid string) (*entities.User, error) {
			if uid == user.UID {
				return user, nil
			}
			return nil, domainerrors.ErrNotFound
		},
	}, &kycRepoStub{})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/users/firebase-2", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Equal(t, "dashboard", resp["route"])

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/users/ghost", nil))
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestUserHandler_GetProfile(t *testing.T) {
	user := &entities.User{ID: uuid.New(), UID: "firebase-3", Status: entities.StatusApproved}
	r := newUserRouter(&userRepoStub{
		getByUIDFn: func(context.Context, string) (*entities.User, error) { return user, nil },
	}, &kycRepoStub{
		getByUserIDFn: func(_ context.Context, userID uuid.UUID) (*entities.KycProfile, error) {
			return &entities.KycProfile{ID: uuid.New(), UserID: userID, FullName: "Full Name"}, nil
		},
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/users/firebase-3/profile", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Kyc   *entities.KycProfile `json:"kyc"`
		Route string               `json:"route"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotNil(t, resp.Kyc)
	require.Equal(t, "kyc-form", resp.Route)
}
