// Package handler provides HTTP handlers for event endpoints.
package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/pixelpirates/leaderboard/internal/auth/middleware"
	eventModel "github.com/pixelpirates/leaderboard/internal/event/model"
	"github.com/pixelpirates/leaderboard/internal/event/service"
	"github.com/pixelpirates/leaderboard/internal/response"
)

// Handler handles HTTP requests for event endpoints.
type Handler struct {
	service service.Service
	logger  *zap.SugaredLogger
}

// New creates a new event handler instance.
func New(svc service.Service, logger *zap.SugaredLogger) *Handler {
	return &Handler{service: svc, logger: logger}
}

// List handles GET /api/coordinator/events.
// @Summary List events, newest first
// @Tags Coordinator
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{} "totalEvents, events"
// @Router /api/coordinator/events [get] //nolint:godot // Swagger annotation should not end with period
func (h *Handler) List(c *gin.Context) {
	events, err := h.service.List(c.Request.Context())
	if err != nil {
		response.Error(c, h.logger, err)
		return
	}

	response.Success(c, http.StatusOK, "", gin.H{
		"totalEvents": len(events),
		"events":      events,
	})
}

// Create handles POST /api/coordinator/events.
// @Summary Create an event
// @Tags Coordinator
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body eventModel.CreateEventRequest true "Request"
// @Success 201 {object} map[string]interface{} "event"
// @Failure 400 {object} response.ErrorResponse "Validation error"
// @Router /api/coordinator/events [post] //nolint:godot // Swagger annotation should not end with period
func (h *Handler) Create(c *gin.Context) {
	actor, err := middleware.MustActor(c)
	if err != nil {
		response.Error(c, h.logger, err)
		return
	}

	var req eventModel.CreateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, h.logger, response.BindError(err))
		return
	}

	event, err := h.service.Create(c.Request.Context(), actor, &req)
	if err != nil {
		response.Error(c, h.logger, err)
		return
	}

	response.Success(c, http.StatusCreated, "Event created successfully", gin.H{"event": event})
}

// Update handles PUT /api/coordinator/events/:eventId.
// @Summary Update an event
// @Tags Coordinator
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param eventId path string true "Event ID"
// @Param request body eventModel.UpdateEventRequest true "Request"
// @Success 200 {object} map[string]interface{} "event"
// @Failure 404 {object} response.ErrorResponse "Event not found"
// @Router /api/coordinator/events/{eventId} [put] //nolint:godot // Swagger annotation should not end with period
func (h *Handler) Update(c *gin.Context) {
	actor, err := middleware.MustActor(c)
	if err != nil {
		response.Error(c, h.logger, err)
		return
	}

	var req eventModel.UpdateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, h.logger, response.BindError(err))
		return
	}

	event, err := h.service.Update(c.Request.Context(), actor, c.Param("eventId"), &req)
	if err != nil {
		response.Error(c, h.logger, err)
		return
	}

	response.Success(c, http.StatusOK, "Event updated successfully", gin.H{"event": event})
}

// Delete handles DELETE /api/coordinator/events/:eventId.
// @Summary Delete an event without results
// @Tags Coordinator
// @Produce json
// @Security BearerAuth
// @Param eventId path string true "Event ID"
// @Success 200 {object} response.ErrorResponse "Event deleted successfully"
// @Failure 409 {object} response.ErrorResponse "Cannot delete event with existing results"
// @Router /api/coordinator/events/{eventId} [delete] //nolint:godot // Swagger annotation should not end with period
func (h *Handler) Delete(c *gin.Context) {
	actor, err := middleware.MustActor(c)
	if err != nil {
		response.Error(c, h.logger, err)
		return
	}

	if err := h.service.Delete(c.Request.Context(), actor, c.Param("eventId")); err != nil {
		response.Error(c, h.logger, err)
		return
	}

	response.Success(c, http.StatusOK, "Event deleted successfully", nil)
}
