// Package handler provides HTTP handlers for statistics endpoints.
package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/pixelpirates/leaderboard/internal/auth/middleware"
	"github.com/pixelpirates/leaderboard/internal/response"
	"github.com/pixelpirates/leaderboard/internal/statistics/service"
)

// Handler handles HTTP requests for statistics endpoints.
type Handler struct {
	service service.Service
	logger  *zap.SugaredLogger
}

// New creates a new statistics handler instance.
func New(svc service.Service, logger *zap.SugaredLogger) *Handler {
	return &Handler{service: svc, logger: logger}
}

// Participation handles GET /api/coordinator/participation-details request.
// @Summary Competition totals and per-event participation
// @Tags Coordinator
// @Produce json
// @Security BearerAuth
// @Success 200 {object} model.ParticipationResponse
// @Failure 500 {object} response.ErrorResponse
// @Router /api/coordinator/participation-details [get] //nolint:godot // Swagger annotation should not end with period
func (h *Handler) Participation(c *gin.Context) {
	resp, err := h.service.Participation(c.Request.Context())
	if err != nil {
		response.Error(c, h.logger, err)
		return
	}

	response.Success(c, http.StatusOK, "", gin.H{
		"summary":              resp.Summary,
		"participationByEvent": resp.ParticipationByEvent,
	})
}

// TeamScores handles GET /api/owner/team-scores request.
// @Summary Points per event for the owner's team
// @Tags Owner
// @Produce json
// @Security BearerAuth
// @Success 200 {object} model.TeamScoresResponse
// @Failure 401 {object} response.ErrorResponse
// @Router /api/owner/team-scores [get] //nolint:godot // Swagger annotation should not end with period
func (h *Handler) TeamScores(c *gin.Context) {
	actor, err := middleware.MustActor(c)
	if err != nil {
		response.Error(c, h.logger, err)
		return
	}

	resp, err := h.service.TeamScores(c.Request.Context(), actor)
	if err != nil {
		response.Error(c, h.logger, err)
		return
	}

	response.Success(c, http.StatusOK, "", gin.H{
		"eventScores": resp.EventScores,
		"totalScore":  resp.TotalScore,
	})
}

// ResultsSummary handles GET /api/coordinator/results-summary request.
// @Summary Results grouped by event name
// @Tags Coordinator
// @Produce json
// @Security BearerAuth
// @Param eventId query string false "Event ID"
// @Success 200 {object} model.ResultsSummaryResponse
// @Failure 500 {object} response.ErrorResponse
// @Router /api/coordinator/results-summary [get] //nolint:godot // Swagger annotation should not end with period
func (h *Handler) ResultsSummary(c *gin.Context) {
	resp, err := h.service.ResultsSummary(c.Request.Context(), c.Query("eventId"))
	if err != nil {
		response.Error(c, h.logger, err)
		return
	}

	response.Success(c, http.StatusOK, "", gin.H{
		"eventResultsSummary": resp.EventResultsSummary,
		"totalResults":        resp.TotalResults,
	})
}
