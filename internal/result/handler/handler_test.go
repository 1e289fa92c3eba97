package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/pixelpirates/leaderboard/internal/access"
	"github.com/pixelpirates/leaderboard/internal/auth/middleware"
	resultModel "github.com/pixelpirates/leaderboard/internal/result/model"
	"github.com/pixelpirates/leaderboard/internal/result/service"
	"github.com/pixelpirates/leaderboard/internal/scoring"
)

type mockService struct {
	mock.Mock
}

func (m *mockService) Apply(ctx context.Context, actor access.Actor, req *resultModel.CreateResultRequest) (*resultModel.Mutation, error) {
	args := m.Called(ctx, actor, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*resultModel.Mutation), args.Error(1)
}

func (m *mockService) Revise(ctx context.Context, actor access.Actor, id string, req *resultModel.UpdateResultRequest) (*resultModel.Mutation, error) {
	args := m.Called(ctx, actor, id, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*resultModel.Mutation), args.Error(1)
}

func (m *mockService) Retract(ctx context.Context, actor access.Actor, id string) (*resultModel.Mutation, error) {
	args := m.Called(ctx, actor, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*resultModel.Mutation), args.Error(1)
}

var _ service.Service = (*mockService)(nil)

type stubAuth struct{}

func (stubAuth) Authenticate(context.Context, string) (access.Actor, error) {
	return coordinator, nil
}

var coordinator = access.Actor{ID: "acc-c", Role: access.RoleCoordinator}

func setupRouter(svc service.Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	logger := zap.NewNop().Sugar()
	h := New(svc, logger)
	auth := middleware.RequireAuth(stubAuth{}, logger)

	r := gin.New()
	r.POST("/results", auth, h.Create)
	r.PUT("/results/:resultId", auth, h.Update)
	r.DELETE("/results/:resultId", auth, h.Delete)
	return r
}

func do(r *gin.Engine, method, path string, body any) (*httptest.ResponseRecorder, map[string]any) {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer test")
	r.ServeHTTP(w, req)

	var out map[string]any
	_ = json.Unmarshal(w.Body.Bytes(), &out)
	return w, out
}

func TestHandler_Create(t *testing.T) {
	t.Run("created", func(t *testing.T) {
		svc := new(mockService)
		svc.On("Apply", mock.Anything, coordinator, mock.MatchedBy(func(req *resultModel.CreateResultRequest) bool {
			return req.EventID == "e1" && req.TeamID == "t1" && req.Position == "1st"
		})).Return(&resultModel.Mutation{
			Result:         &resultModel.ResultView{ID: "r1", Position: "1st", PointsAwarded: 10},
			TeamTotalScore: 10,
			TeamRank:       1,
		}, nil)

		w, body := do(setupRouter(svc), http.MethodPost, "/results", map[string]any{
			"eventId": "e1", "teamId": "t1", "position": "1st",
		})
		require.Equal(t, http.StatusCreated, w.Code)
		assert.Equal(t, "Result added successfully", body["message"])
		assert.Equal(t, float64(10), body["teamTotalScore"])
		assert.Equal(t, float64(1), body["teamRank"])
		assert.Equal(t, "r1", body["result"].(map[string]any)["id"])
	})

	t.Run("missing event id", func(t *testing.T) {
		svc := new(mockService)
		w, body := do(setupRouter(svc), http.MethodPost, "/results", map[string]any{"teamId": "t1", "position": "1st"})
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, false, body["success"])
		svc.AssertNotCalled(t, "Apply")
	})

	t.Run("invalid position", func(t *testing.T) {
		svc := new(mockService)
		svc.On("Apply", mock.Anything, coordinator, mock.Anything).Return(nil, scoring.ErrInvalidPosition)

		w, body := do(setupRouter(svc), http.MethodPost, "/results", map[string]any{
			"eventId": "e1", "teamId": "t1", "position": "4th",
		})
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "Invalid position", body["message"])
	})

	t.Run("duplicate", func(t *testing.T) {
		svc := new(mockService)
		svc.On("Apply", mock.Anything, coordinator, mock.Anything).Return(nil, resultModel.ErrDuplicateResult)

		w, _ := do(setupRouter(svc), http.MethodPost, "/results", map[string]any{
			"eventId": "e1", "teamId": "t1", "position": "1st",
		})
		assert.Equal(t, http.StatusConflict, w.Code)
	})
}

func TestHandler_Update(t *testing.T) {
	svc := new(mockService)
	svc.On("Revise", mock.Anything, coordinator, "r1", mock.MatchedBy(func(req *resultModel.UpdateResultRequest) bool {
		return req.Position != nil && *req.Position == "2nd" && req.TechnocratIDs == nil
	})).Return(&resultModel.Mutation{
		Result:         &resultModel.ResultView{ID: "r1", Position: "2nd", PointsAwarded: 7},
		TeamTotalScore: 7,
		TeamRank:       1,
	}, nil)

	w, body := do(setupRouter(svc), http.MethodPut, "/results/r1", map[string]any{"position": "2nd"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Result updated successfully", body["message"])
	assert.Equal(t, float64(7), body["result"].(map[string]any)["pointsAwarded"])
}

func TestHandler_Delete(t *testing.T) {
	t.Run("deleted", func(t *testing.T) {
		svc := new(mockService)
		svc.On("Retract", mock.Anything, coordinator, "r1").Return(&resultModel.Mutation{TeamTotalScore: 0, TeamRank: 2}, nil)

		w, body := do(setupRouter(svc), http.MethodDelete, "/results/r1", nil)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "Result deleted successfully", body["message"])
		assert.NotContains(t, body, "result")
		assert.Equal(t, float64(0), body["teamTotalScore"])
	})

	t.Run("not found", func(t *testing.T) {
		svc := new(mockService)
		svc.On("Retract", mock.Anything, coordinator, "nope").Return(nil, resultModel.ErrResultNotFound)

		w, body := do(setupRouter(svc), http.MethodDelete, "/results/nope", nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, "Result not found", body["message"])
	})
}
