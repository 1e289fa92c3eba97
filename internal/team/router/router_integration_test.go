package router

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/pixelpirates/leaderboard/internal/access"
	"github.com/pixelpirates/leaderboard/internal/auth/middleware"
	"github.com/pixelpirates/leaderboard/internal/testutil"
)

func setupRouter(db *gorm.DB, actors testutil.StaticAuth) *gin.Engine {
	gin.SetMode(gin.TestMode)
	logger := zap.NewNop().Sugar()
	r := gin.New()
	RegisterRoutes(r.Group("/api"), db, middleware.NewGuards(actors, logger), logger)
	return r
}

func call(r *gin.Engine, method, path, token string, body any) (*httptest.ResponseRecorder, map[string]any) {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	r.ServeHTTP(w, req)

	var out map[string]any
	_ = json.Unmarshal(w.Body.Bytes(), &out)
	return w, out
}

func TestIntegration_TeamRoutes(t *testing.T) {
	db := testutil.NewDB(t)
	alpha := testutil.CreateTeam(t, db, "ALPHA", 12)
	testutil.CreateTeam(t, db, "BRAVO", 30)
	router := setupRouter(db, testutil.StaticAuth{
		"owner": {ID: "acc-1", Role: access.RoleOwner, TeamID: alpha.ID},
		"coord": {ID: "acc-2", Role: access.RoleCoordinator},
	})

	t.Run("public leaderboard", func(t *testing.T) {
		w, body := call(router, http.MethodGet, "/api/owner/leaderboard", "", nil)
		require.Equal(t, http.StatusOK, w.Code)

		board := body["leaderboard"].([]any)
		require.Len(t, board, 2)
		assert.Equal(t, "BRAVO", board[0].(map[string]any)["teamName"])
	})

	t.Run("coordinator leaderboard by name", func(t *testing.T) {
		w, body := call(router, http.MethodGet, "/api/coordinator/leaderboard?sortBy=name", "coord", nil)
		require.Equal(t, http.StatusOK, w.Code)

		first := body["leaderboard"].([]any)[0].(map[string]any)
		assert.Equal(t, "ALPHA", first["teamName"])
		assert.Equal(t, float64(2), first["rank"])
	})

	t.Run("owner cannot read coordinator routes", func(t *testing.T) {
		w, body := call(router, http.MethodGet, "/api/coordinator/all-teams", "owner", nil)
		assert.Equal(t, http.StatusForbidden, w.Code)
		assert.Equal(t, "Not authorized", body["message"])
	})

	t.Run("profile requires a token", func(t *testing.T) {
		w, _ := call(router, http.MethodGet, "/api/owner/team-profile", "", nil)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("owner edits own team", func(t *testing.T) {
		w, body := call(router, http.MethodPut, "/api/owner/team-profile", "owner", map[string]any{
			"teamName": "Alpha Wolves",
		})
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "Alpha Wolves", body["team"].(map[string]any)["teamName"])

		w, body = call(router, http.MethodGet, "/api/owner/team-profile", "owner", nil)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, float64(0), body["technoCratsCount"])
	})

	t.Run("recompute persists ranks", func(t *testing.T) {
		w, _ := call(router, http.MethodPost, "/api/coordinator/leaderboard/recompute", "coord", nil)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, 2, testutil.Team(t, db, alpha.ID).Rank)
	})
}
