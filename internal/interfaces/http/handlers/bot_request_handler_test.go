package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"fx-bothub.backend/internal/domain/entities"
	"fx-bothub.backend/internal/infrastructure/storage"
	"fx-bothub.backend/internal/usecases"
)

func newBotRequestRouter(userRepo *userRepoStub, accountRepo *accountRepoStub, botRepo *botRepoStub, assignmentRepo *assignmentRepoStub) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewBotRequestHandler(usecases.NewAssignmentUsecase(assignmentRepo, accountRepo, botRepo, userRepo, storage.NewDataURLStore()))
	r := gin.New()
	r.GET("/api/admin/bot-requests", h.List)
	r.GET("/api/admin/bot-requests/:id", h.Get)
	r.PUT("/api/admin/bot-requests/:id/approve", h.Approve)
	r.PUT("/api/admin/bot-requests/:id/reject", h.Reject)
	return r
}

func TestBotRequestHandler_List_AttachesOwner(t *testing.T) {
	owner := &entities.User{ID: uuid.New(), Email: "owner@mail.com", Name: "Owner"}
	bot := &entities.Bot{ID: uuid.New(), Name: "Scalper", Price: 499}
	account := &entities.BrokerAccount{ID: uuid.New(), UserID: owner.ID, Broker: "Exness", AccountNumber: "100"}

	r := newBotRequestRouter(&userRepoStub{
		getByIDFn: func(context.Context, uuid.UUID) (*entities.User, error) { return owner, nil },
	}, &accountRepoStub{
		getByIDFn: func(context.Context, uuid.UUID) (*entities.BrokerAccount, error) { return account, nil },
	}, &botRepoStub{
		getByIDFn: func(context.Context, uuid.UUID) (*entities.Bot, error) { return bot, nil },
	}, &assignmentRepoStub{
		listFn: func(context.Context) ([]*entities.BotAssignment, error) {
			return []*entities.BotAssignment{
				{ID: uuid.New(), UserID: owner.ID, BrokerAccountID: account.ID, BotID: bot.ID, Status: entities.StatusPending},
			}, nil
		},
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/admin/bot-requests", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Requests []map[string]interface{} `json:"requests"`
		Meta     map[string]interface{}   `json:"meta"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Requests, 1)
	require.Equal(t, "owner@mail.com", resp.Requests[0]["userEmail"])
	require.Equal(t, "Scalper", resp.Requests[0]["botName"])
	require.Equal(t, "Exness", resp.Requests[0]["broker"])
	require.Equal(t, float64(1), resp.Meta["totalCount"])
}

func TestBotRequestHandler_Get_NotFound(t *testing.T) {
	r := newBotRequestRouter(&userRepoStub{}, &accountRepoStub{}, &botRepoStub{}, &assignmentRepoStub{})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, fmt.Sprintf("/api/admin/bot-requests/%s", uuid.New()), nil))
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestBotRequestHandler_Approve(t *testing.T) {
	assignment := &entities.BotAssignment{ID: uuid.New(), Status: entities.StatusPending}
	var gotStatus entities.ApprovalStatus
	r := newBotRequestRouter(&userRepoStub{}, &accountRepoStub{}, &botRepoStub{}, &assignmentRepoStub{
		getByIDFn: func(context.Context, uuid.UUID) (*entities.BotAssignment, error) { return assignment, nil },
		updateStatusFn: func(_ context.Context, _ uuid.UUID, status entities.ApprovalStatus) error {
			gotStatus = status
			return nil
		},
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPut, fmt.Sprintf("/api/admin/bot-requests/%s/approve", assignment.ID), nil))
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, entities.StatusApproved, gotStatus)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Equal(t, "approved", resp["status"])

	// invalid ID in path
	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPut, "/api/admin/bot-requests/not-a-uuid/approve", nil))
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestBotRequestHandler_Reject_FlipRefused(t *testing.T) {
	assignment := &entities.BotAssignment{ID: uuid.New(), Status: entities.StatusApproved}
	r := newBotRequestRouter(&userRepoStub{}, &accountRepoStub{}, &botRepoStub{}, &assignmentRepoStub{
		getByIDFn: func(context.Context, uuid.UUID) (*entities.BotAssignment, error) { return assignment, nil },
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPut, fmt.Sprintf("/api/admin/bot-requests/%s/reject", assignment.ID), nil))
	require.Equal(t, http.StatusConflict, w.Code)
}
