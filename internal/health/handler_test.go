package health

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/pixelpirates/leaderboard/internal/testutil"
)

func setupRouter(handler *Handler) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/api/health", handler.Check)
	return router
}

func check(t *testing.T, db *gorm.DB) (*httptest.ResponseRecorder, Response) {
	t.Helper()
	router := setupRouter(New(db, zap.NewNop().Sugar()))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	router.ServeHTTP(w, req)

	var resp Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return w, resp
}

func TestHandler_Check(t *testing.T) {
	t.Run("database is healthy", func(t *testing.T) {
		w, resp := check(t, testutil.NewDB(t))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "application/json; charset=utf-8", w.Header().Get("Content-Type"))
		assert.True(t, resp.Success)
		assert.Equal(t, "ok", resp.Status)
		assert.Equal(t, "connected", resp.Database)
	})

	t.Run("database is unavailable", func(t *testing.T) {
		db := testutil.NewDB(t)
		sqlDB, err := db.DB()
		require.NoError(t, err)
		require.NoError(t, sqlDB.Close())

		w, resp := check(t, db)

		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
		assert.False(t, resp.Success)
		assert.Equal(t, "unhealthy", resp.Status)
	})

	t.Run("nil database", func(t *testing.T) {
		w, resp := check(t, nil)

		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
		assert.Equal(t, "unreachable", resp.Database)
	})

	t.Run("concurrent checks", func(t *testing.T) {
		router := setupRouter(New(testutil.NewDB(t), zap.NewNop().Sugar()))

		results := make(chan int, 10)
		for i := 0; i < 10; i++ {
			go func() {
				w := httptest.NewRecorder()
				router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/health", nil))
				results <- w.Code
			}()
		}
		for i := 0; i < 10; i++ {
			assert.Equal(t, http.StatusOK, <-results)
		}
	})
}
