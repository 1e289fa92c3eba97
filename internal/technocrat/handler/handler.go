// Package handler provides HTTP handlers for technocrat endpoints.
package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/pixelpirates/leaderboard/internal/auth/middleware"
	"github.com/pixelpirates/leaderboard/internal/response"
	technocratModel "github.com/pixelpirates/leaderboard/internal/technocrat/model"
	"github.com/pixelpirates/leaderboard/internal/technocrat/service"
)

// Handler handles HTTP requests for technocrat endpoints.
type Handler struct {
	service service.Service
	logger  *zap.SugaredLogger
}

// New creates a new technocrat handler instance.
func New(svc service.Service, logger *zap.SugaredLogger) *Handler {
	return &Handler{service: svc, logger: logger}
}

// Add handles POST /api/owner/technocrat.
// @Summary Add a technocrat to the owner's team
// @Tags Owner
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body technocratModel.AddTechnocratRequest true "Request"
// @Success 201 {object} map[string]interface{} "technocrat"
// @Failure 400 {object} response.ErrorResponse "Validation error"
// @Failure 409 {object} response.ErrorResponse "Enrollment number already exists"
// @Router /api/owner/technocrat [post] //nolint:godot // Swagger annotation should not end with period
func (h *Handler) Add(c *gin.Context) {
	actor, err := middleware.MustActor(c)
	if err != nil {
		response.Error(c, h.logger, err)
		return
	}

	var req technocratModel.AddTechnocratRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, h.logger, response.BindError(err))
		return
	}

	tc, err := h.service.Add(c.Request.Context(), actor, &req)
	if err != nil {
		response.Error(c, h.logger, err)
		return
	}

	response.Success(c, http.StatusCreated, "Technocrat added successfully", gin.H{"technocrat": tc})
}

// Edit handles PUT /api/owner/technocrat/:technocratId.
// @Summary Edit a technocrat
// @Tags Owner
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param technocratId path string true "Technocrat ID"
// @Param request body technocratModel.EditTechnocratRequest true "Request"
// @Success 200 {object} map[string]interface{} "technocrat"
// @Failure 403 {object} response.ErrorResponse "Not authorized"
// @Failure 404 {object} response.ErrorResponse "Technocrat not found"
// @Router /api/owner/technocrat/{technocratId} [put] //nolint:godot // Swagger annotation should not end with period
func (h *Handler) Edit(c *gin.Context) {
	actor, err := middleware.MustActor(c)
	if err != nil {
		response.Error(c, h.logger, err)
		return
	}

	var req technocratModel.EditTechnocratRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, h.logger, response.BindError(err))
		return
	}

	tc, err := h.service.Edit(c.Request.Context(), actor, c.Param("technocratId"), &req)
	if err != nil {
		response.Error(c, h.logger, err)
		return
	}

	response.Success(c, http.StatusOK, "Technocrat updated successfully", gin.H{"technocrat": tc})
}

// Delete handles DELETE /api/owner/technocrat/:technocratId.
// @Summary Delete a technocrat
// @Tags Owner
// @Produce json
// @Security BearerAuth
// @Param technocratId path string true "Technocrat ID"
// @Success 200 {object} response.ErrorResponse "Technocrat deleted successfully"
// @Failure 403 {object} response.ErrorResponse "Not authorized"
// @Router /api/owner/technocrat/{technocratId} [delete] //nolint:godot // Swagger annotation should not end with period
func (h *Handler) Delete(c *gin.Context) {
	actor, err := middleware.MustActor(c)
	if err != nil {
		response.Error(c, h.logger, err)
		return
	}

	if err := h.service.Delete(c.Request.Context(), actor, c.Param("technocratId")); err != nil {
		response.Error(c, h.logger, err)
		return
	}

	response.Success(c, http.StatusOK, "Technocrat deleted successfully", nil)
}

// AssignEvents handles POST /api/owner/assign-events.
// @Summary Replace a technocrat's assigned events (at most 3)
// @Tags Owner
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body technocratModel.AssignEventsRequest true "Request"
// @Success 200 {object} map[string]interface{} "technocrat"
// @Failure 400 {object} response.ErrorResponse "Maximum 3 events allowed per technocrat"
// @Failure 404 {object} response.ErrorResponse "Some events not found"
// @Router /api/owner/assign-events [post] //nolint:godot // Swagger annotation should not end with period
func (h *Handler) AssignEvents(c *gin.Context) {
	actor, err := middleware.MustActor(c)
	if err != nil {
		response.Error(c, h.logger, err)
		return
	}

	var req technocratModel.AssignEventsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, h.logger, response.BindError(err))
		return
	}

	view, err := h.service.AssignEvents(c.Request.Context(), actor, &req)
	if err != nil {
		response.Error(c, h.logger, err)
		return
	}

	response.Success(c, http.StatusOK, "Events assigned successfully", gin.H{"technocrat": view})
}

// RemoveEvent handles DELETE /api/owner/remove-event/:technocratId/:eventId.
// @Summary Unassign one event from a technocrat
// @Tags Owner
// @Produce json
// @Security BearerAuth
// @Param technocratId path string true "Technocrat ID"
// @Param eventId path string true "Event ID"
// @Success 200 {object} map[string]interface{} "technocrat"
// @Router /api/owner/remove-event/{technocratId}/{eventId} [delete] //nolint:godot // Swagger annotation should not end with period
func (h *Handler) RemoveEvent(c *gin.Context) {
	actor, err := middleware.MustActor(c)
	if err != nil {
		response.Error(c, h.logger, err)
		return
	}

	view, err := h.service.RemoveEventAssignment(c.Request.Context(), actor, c.Param("technocratId"), c.Param("eventId"))
	if err != nil {
		response.Error(c, h.logger, err)
		return
	}

	response.Success(c, http.StatusOK, "Event removed successfully", gin.H{"technocrat": view})
}

// SetIconPlayer handles POST /api/owner/set-icon-player.
// @Summary Make a technocrat the team's icon player
// @Tags Owner
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body technocratModel.SetIconPlayerRequest true "Request"
// @Success 200 {object} map[string]interface{} "iconPlayer"
// @Router /api/owner/set-icon-player [post] //nolint:godot // Swagger annotation should not end with period
func (h *Handler) SetIconPlayer(c *gin.Context) {
	actor, err := middleware.MustActor(c)
	if err != nil {
		response.Error(c, h.logger, err)
		return
	}

	var req technocratModel.SetIconPlayerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, h.logger, response.BindError(err))
		return
	}

	tc, err := h.service.SetIconPlayer(c.Request.Context(), actor, req.TechnocratID)
	if err != nil {
		response.Error(c, h.logger, err)
		return
	}

	response.Success(c, http.StatusOK, "Icon player set successfully", gin.H{"iconPlayer": tc})
}

// ListAll handles GET /api/coordinator/all-technocrats.
// @Summary Every technocrat with team and events
// @Tags Coordinator
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{} "totalTechnocrats, technocrats"
// @Router /api/coordinator/all-technocrats [get] //nolint:godot // Swagger annotation should not end with period
func (h *Handler) ListAll(c *gin.Context) {
	views, err := h.service.ListAll(c.Request.Context())
	if err != nil {
		response.Error(c, h.logger, err)
		return
	}

	response.Success(c, http.StatusOK, "", gin.H{
		"totalTechnocrats": len(views),
		"technocrats":      views,
	})
}
