// Package handler provides HTTP handlers for result endpoints.
package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/pixelpirates/leaderboard/internal/auth/middleware"
	"github.com/pixelpirates/leaderboard/internal/response"
	resultModel "github.com/pixelpirates/leaderboard/internal/result/model"
	"github.com/pixelpirates/leaderboard/internal/result/service"
)

// Handler handles HTTP requests for result endpoints.
type Handler struct {
	service service.Service
	logger  *zap.SugaredLogger
}

// New creates a new result handler instance.
func New(svc service.Service, logger *zap.SugaredLogger) *Handler {
	return &Handler{service: svc, logger: logger}
}

// Create handles POST /api/coordinator/results.
// @Summary Record a placement and award its points
// @Tags Coordinator
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body resultModel.CreateResultRequest true "Request"
// @Success 201 {object} resultModel.Mutation
// @Failure 400 {object} response.ErrorResponse "Invalid position"
// @Failure 404 {object} response.ErrorResponse "Event or team not found"
// @Failure 409 {object} response.ErrorResponse "Result for this team and position already exists"
// @Router /api/coordinator/results [post] //nolint:godot // Swagger annotation should not end with period
func (h *Handler) Create(c *gin.Context) {
	actor, err := middleware.MustActor(c)
	if err != nil {
		response.Error(c, h.logger, err)
		return
	}

	var req resultModel.CreateResultRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, h.logger, response.BindError(err))
		return
	}

	mut, err := h.service.Apply(c.Request.Context(), actor, &req)
	if err != nil {
		response.Error(c, h.logger, err)
		return
	}

	response.Success(c, http.StatusCreated, "Result added successfully", mutationBody(mut))
}

// Update handles PUT /api/coordinator/results/:resultId.
// @Summary Change a result's position or technocrats
// @Tags Coordinator
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param resultId path string true "Result ID"
// @Param request body resultModel.UpdateResultRequest true "Request"
// @Success 200 {object} resultModel.Mutation
// @Failure 404 {object} response.ErrorResponse "Result not found"
// @Failure 409 {object} response.ErrorResponse "Result for this team and position already exists"
// @Router /api/coordinator/results/{resultId} [put] //nolint:godot // Swagger annotation should not end with period
func (h *Handler) Update(c *gin.Context) {
	actor, err := middleware.MustActor(c)
	if err != nil {
		response.Error(c, h.logger, err)
		return
	}

	var req resultModel.UpdateResultRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, h.logger, response.BindError(err))
		return
	}

	mut, err := h.service.Revise(c.Request.Context(), actor, c.Param("resultId"), &req)
	if err != nil {
		response.Error(c, h.logger, err)
		return
	}

	response.Success(c, http.StatusOK, "Result updated successfully", mutationBody(mut))
}

// Delete handles DELETE /api/coordinator/results/:resultId.
// @Summary Delete a result and subtract its points
// @Tags Coordinator
// @Produce json
// @Security BearerAuth
// @Param resultId path string true "Result ID"
// @Success 200 {object} resultModel.Mutation
// @Failure 404 {object} response.ErrorResponse "Result not found"
// @Router /api/coordinator/results/{resultId} [delete] //nolint:godot // Swagger annotation should not end with period
func (h *Handler) Delete(c *gin.Context) {
	actor, err := middleware.MustActor(c)
	if err != nil {
		response.Error(c, h.logger, err)
		return
	}

	mut, err := h.service.Retract(c.Request.Context(), actor, c.Param("resultId"))
	if err != nil {
		response.Error(c, h.logger, err)
		return
	}

	response.Success(c, http.StatusOK, "Result deleted successfully", mutationBody(mut))
}

func mutationBody(mut *resultModel.Mutation) gin.H {
	body := gin.H{
		"teamTotalScore": mut.TeamTotalScore,
		"teamRank":       mut.TeamRank,
	}
	if mut.Result != nil {
		body["result"] = mut.Result
	}
	return body
}
