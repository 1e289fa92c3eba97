package middleware

import (
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
	"github.com/pixelpirates/leaderboard/internal/apperr"
)

type mockAuthenticator struct {
	mock.Mock
}

func (m *mockAuthenticator) Authenticate(ctx context.Context, bearer string) (access.Actor, error) {
	args := m.Called(ctx, bearer)
	return args.Get(0).(access.Actor), args.Error(1)
}

var _ Authenticator = (*mockAuthenticator)(nil)

var owner = access.Actor{ID: "acc-1", Role: access.RoleOwner, TeamID: "team-1"}

func setupRouter(auth Authenticator) *gin.Engine {
	gin.SetMode(gin.TestMode)
	logger := zap.NewNop().Sugar()
	r := gin.New()

	whoami := func(c *gin.Context) {
		actor, ok := ActorFrom(c)
		fromCtx, _ := access.FromContext(c.Request.Context())
		c.JSON(http.StatusOK, gin.H{"authenticated": ok, "role": actor.Role, "ctxId": fromCtx.ID})
	}

	r.GET("/private", RequireAuth(auth, logger), whoami)
	r.GET("/owner", RequireAuth(auth, logger), RequireRole(logger, access.RoleOwner), whoami)
	r.GET("/coordinator", RequireAuth(auth, logger), RequireRole(logger, access.RoleCoordinator), whoami)
	r.GET("/public", OptionalAuth(auth, logger), whoami)
	return r
}

func do(r *gin.Engine, path, header string) (*httptest.ResponseRecorder, map[string]any) {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	r.ServeHTTP(w, req)

	var body map[string]any
	_ = json.Unmarshal(w.Body.Bytes(), &body)
	return w, body
}

func TestRequireAuth(t *testing.T) {
	t.Run("valid token", func(t *testing.T) {
		auth := new(mockAuthenticator)
		auth.On("Authenticate", mock.Anything, "good").Return(owner, nil)

		w, body := do(setupRouter(auth), "/private", "Bearer good")

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, true, body["authenticated"])
		assert.Equal(t, "acc-1", body["ctxId"])
		auth.AssertExpectations(t)
	})

	headers := []string{"", "good", "Basic abc", "Bearer ", "Bearer"}
	for _, header := range headers {
		t.Run("malformed header "+header, func(t *testing.T) {
			auth := new(mockAuthenticator)

			w, body := do(setupRouter(auth), "/private", header)

			assert.Equal(t, http.StatusUnauthorized, w.Code)
			assert.Equal(t, false, body["success"])
			assert.Equal(t, "Not authorized", body["message"])
			auth.AssertNotCalled(t, "Authenticate", mock.Anything, mock.Anything)
		})
	}

	t.Run("rejected token", func(t *testing.T) {
		auth := new(mockAuthenticator)
		auth.On("Authenticate", mock.Anything, "bad").
			Return(access.Actor{}, apperr.New(apperr.KindAuthentication, "token expired"))

		w, body := do(setupRouter(auth), "/private", "bearer bad")

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Equal(t, "Not authorized", body["message"])
	})
}

func TestRequireRole(t *testing.T) {
	auth := new(mockAuthenticator)
	auth.On("Authenticate", mock.Anything, "good").Return(owner, nil)
	r := setupRouter(auth)

	w, _ := do(r, "/owner", "Bearer good")
	assert.Equal(t, http.StatusOK, w.Code)

	w, body := do(r, "/coordinator", "Bearer good")
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Equal(t, "Not authorized", body["message"])
}

func TestOptionalAuth(t *testing.T) {
	auth := new(mockAuthenticator)
	auth.On("Authenticate", mock.Anything, "good").Return(owner, nil)
	auth.On("Authenticate", mock.Anything, "bad").Return(access.Actor{}, apperr.ErrUnauthenticated)
	r := setupRouter(auth)

	w, body := do(r, "/public", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, false, body["authenticated"])

	w, body = do(r, "/public", "Bearer bad")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, false, body["authenticated"])

	w, body = do(r, "/public", "Bearer good")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, true, body["authenticated"])
	assert.Equal(t, "owner", body["role"])
}
