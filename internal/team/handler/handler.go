// Package handler provides HTTP handlers for team endpoints.
package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/pixelpirates/leaderboard/internal/auth/middleware"
	"github.com/pixelpirates/leaderboard/internal/response"
	teamModel "github.com/pixelpirates/leaderboard/internal/team/model"
	"github.com/pixelpirates/leaderboard/internal/team/service"
)

// Handler handles HTTP requests for team endpoints.
type Handler struct {
	service service.Service
	logger  *zap.SugaredLogger
}

// New creates a new team handler instance.
func New(svc service.Service, logger *zap.SugaredLogger) *Handler {
	return &Handler{service: svc, logger: logger}
}

// Leaderboard handles GET /api/coordinator/leaderboard.
// @Summary Ranked leaderboard
// @Tags Leaderboard
// @Produce json
// @Param sortBy query string false "score (default) or name"
// @Success 200 {object} map[string]interface{} "leaderboard"
// @Failure 400 {object} response.ErrorResponse "Invalid sortBy"
// @Router /api/coordinator/leaderboard [get] //nolint:godot // Swagger annotation should not end with period
func (h *Handler) Leaderboard(c *gin.Context) {
	entries, err := h.service.Leaderboard(c.Request.Context(), c.Query("sortBy"))
	if err != nil {
		response.Error(c, h.logger, err)
		return
	}

	response.Success(c, http.StatusOK, "", gin.H{"leaderboard": entries})
}

// ScoreLeaderboard handles GET /api/owner/leaderboard. It always uses score order.
// @Summary Read-only leaderboard in score order
// @Tags Leaderboard
// @Produce json
// @Success 200 {object} map[string]interface{} "leaderboard"
// @Router /api/owner/leaderboard [get] //nolint:godot // Swagger annotation should not end with period
func (h *Handler) ScoreLeaderboard(c *gin.Context) {
	entries, err := h.service.Leaderboard(c.Request.Context(), string(teamModel.SortByScore))
	if err != nil {
		response.Error(c, h.logger, err)
		return
	}

	response.Success(c, http.StatusOK, "", gin.H{"leaderboard": entries})
}

// AllTeams handles GET /api/coordinator/all-teams.
// @Summary All teams in score order
// @Tags Coordinator
// @Produce json
// @Security BearerAuth
// @Success 200 {object} teamModel.TeamsResponse
// @Router /api/coordinator/all-teams [get] //nolint:godot // Swagger annotation should not end with period
func (h *Handler) AllTeams(c *gin.Context) {
	resp, err := h.service.AllTeams(c.Request.Context())
	if err != nil {
		response.Error(c, h.logger, err)
		return
	}

	response.Success(c, http.StatusOK, "", gin.H{
		"totalTeams": resp.TotalTeams,
		"teams":      resp.Teams,
	})
}

// Profile handles GET /api/owner/team-profile.
// @Summary The owner's team with its roster
// @Tags Owner
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{} "team, technoCratsCount, technocrats"
// @Failure 401 {object} response.ErrorResponse "Not authorized"
// @Router /api/owner/team-profile [get] //nolint:godot // Swagger annotation should not end with period
func (h *Handler) Profile(c *gin.Context) {
	actor, err := middleware.MustActor(c)
	if err != nil {
		response.Error(c, h.logger, err)
		return
	}

	profile, err := h.service.Profile(c.Request.Context(), actor)
	if err != nil {
		response.Error(c, h.logger, err)
		return
	}

	response.Success(c, http.StatusOK, "", gin.H{
		"team":             profile.Team,
		"iconPlayer":       profile.IconPlayer,
		"technoCratsCount": profile.TechnocratsCount,
		"technocrats":      profile.Technocrats,
	})
}

// UpdateProfile handles PUT /api/owner/team-profile.
// @Summary Edit team name or owner contact
// @Tags Owner
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body teamModel.UpdateTeamRequest true "Request"
// @Success 200 {object} map[string]interface{} "team"
// @Failure 400 {object} response.ErrorResponse "Validation error"
// @Router /api/owner/team-profile [put] //nolint:godot // Swagger annotation should not end with period
func (h *Handler) UpdateProfile(c *gin.Context) {
	actor, err := middleware.MustActor(c)
	if err != nil {
		response.Error(c, h.logger, err)
		return
	}

	var req teamModel.UpdateTeamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, h.logger, response.BindError(err))
		return
	}

	team, err := h.service.UpdateTeam(c.Request.Context(), actor, &req)
	if err != nil {
		response.Error(c, h.logger, err)
		return
	}

	response.Success(c, http.StatusOK, "Team details updated successfully", gin.H{"team": team})
}

// RecomputeRanks handles POST /api/coordinator/leaderboard/recompute.
// @Summary Re-derive every team's rank from its score
// @Tags Coordinator
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{} "standings"
// @Router /api/coordinator/leaderboard/recompute [post] //nolint:godot // Swagger annotation should not end with period
func (h *Handler) RecomputeRanks(c *gin.Context) {
	standings, err := h.service.RecomputeRanks(c.Request.Context())
	if err != nil {
		response.Error(c, h.logger, err)
		return
	}

	response.Success(c, http.StatusOK, "Leaderboard recomputed successfully", gin.H{"standings": standings})
}
