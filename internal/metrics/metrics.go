// Package metrics exposes Prometheus collectors for HTTP traffic and scoring.
package metrics

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/pixelpirates/leaderboard/internal/apperr"
)

// Scoring operations.
const (
	OpApply     = "apply"
	OpRevise    = "revise"
	OpRetract   = "retract"
	OpRecompute = "recompute"
)

var (
	registry = prometheus.DefaultRegisterer

	httpRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests by path/method/code.",
		},
		[]string{"path", "method", "code"},
	)

	httpDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests by path/method/code.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"path", "method", "code"},
	)

	scoringOps = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "scoring_operations_total",
			Help: "Scoring operations by op, result and error kind.",
		},
		[]string{"op", "result", "kind"},
	)

	scoringDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "scoring_operation_duration_seconds",
			Help:    "Duration of scoring operations by op and result.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"op", "result"},
	)

	rankedTeams = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "leaderboard_teams",
			Help: "Number of teams in the last rank recompute.",
		},
	)
)

// GinMiddleware records request count and latency per route.
func GinMiddleware(c *gin.Context) {
	start := time.Now()
	c.Next()

	path := c.FullPath()
	if path == "" {
		path = "unmatched"
	}
	if path == "/metrics" {
		return
	}

	code := strconv.Itoa(c.Writer.Status())
	method := c.Request.Method

	httpRequests.WithLabelValues(path, method, code).Inc()
	httpDuration.WithLabelValues(path, method, code).Observe(time.Since(start).Seconds())
}

// Handler serves the default registry.
func Handler() gin.HandlerFunc {
	h := promhttp.Handler()
	return func(c *gin.Context) {
		h.ServeHTTP(c.Writer, c.Request)
	}
}

// ObserveScoring records the outcome of a scoring operation started at start.
func ObserveScoring(op string, start time.Time, err error) {
	result := "success"
	kind := ""
	if err != nil {
		result = "error"
		kind = apperr.KindOf(err).String()
	}
	scoringOps.WithLabelValues(op, result, kind).Inc()
	scoringDuration.WithLabelValues(op, result).Observe(time.Since(start).Seconds())
}

// SetRankedTeams records how many teams the last recompute ranked.
func SetRankedTeams(n int) {
	rankedTeams.Set(float64(n))
}

func init() {
	collectors := []prometheus.Collector{
		httpRequests,
		httpDuration,
		scoringOps,
		scoringDuration,
		rankedTeams,
	}

	for _, c := range collectors {
		_ = registry.Register(c)
	}
}
