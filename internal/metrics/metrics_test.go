package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"

	"github.com/pixelpirates/leaderboard/internal/apperr"
)

func TestObserveScoring(t *testing.T) {
	before := testutil.ToFloat64(scoringOps.WithLabelValues(OpApply, "success", ""))
	ObserveScoring(OpApply, time.Now(), nil)
	assert.Equal(t, before+1, testutil.ToFloat64(scoringOps.WithLabelValues(OpApply, "success", "")))

	conflict := apperr.New(apperr.KindConflict, "taken")
	before = testutil.ToFloat64(scoringOps.WithLabelValues(OpApply, "error", "conflict"))
	ObserveScoring(OpApply, time.Now(), conflict)
	assert.Equal(t, before+1, testutil.ToFloat64(scoringOps.WithLabelValues(OpApply, "error", "conflict")))
}

func TestSetRankedTeams(t *testing.T) {
	SetRankedTeams(4)
	assert.Equal(t, float64(4), testutil.ToFloat64(rankedTeams))
}

func TestGinMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(GinMiddleware)
	r.GET("/api/health", func(c *gin.Context) { c.Status(http.StatusOK) })
	r.GET("/metrics", Handler())

	before := testutil.ToFloat64(httpRequests.WithLabelValues("/api/health", http.MethodGet, "200"))
	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/health", nil))
	assert.Equal(t, before+1, testutil.ToFloat64(httpRequests.WithLabelValues("/api/health", http.MethodGet, "200")))

	ObserveScoring(OpRecompute, time.Now(), nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "scoring_operations_total")
}
