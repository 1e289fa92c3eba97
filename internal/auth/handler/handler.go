// Package handler provides HTTP handlers for registration and login.
package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/pixelpirates/leaderboard/internal/access"
	authModel "github.com/pixelpirates/leaderboard/internal/auth/model"
	"github.com/pixelpirates/leaderboard/internal/auth/service"
	"github.com/pixelpirates/leaderboard/internal/response"
)

// Handler handles HTTP requests for auth endpoints.
type Handler struct {
	service service.Service
	logger  *zap.SugaredLogger
}

// New creates a new auth handler instance.
func New(svc service.Service, logger *zap.SugaredLogger) *Handler {
	return &Handler{service: svc, logger: logger}
}

// RegisterOwner handles POST /api/owner/register request.
// @Summary Register a team owner together with the team
// @Tags Owner
// @Accept json
// @Produce json
// @Param request body authModel.RegisterOwnerRequest true "Request"
// @Success 201 {object} map[string]interface{} "token, owner and team"
// @Failure 400 {object} response.ErrorResponse "Validation error"
// @Failure 409 {object} response.ErrorResponse "Email or team code taken"
// @Router /api/owner/register [post] //nolint:godot // Swagger annotation should not end with period
func (h *Handler) RegisterOwner(c *gin.Context) {
	var req authModel.RegisterOwnerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, h.logger, response.BindError(err))
		return
	}

	session, err := h.service.RegisterOwner(c.Request.Context(), &req)
	if err != nil {
		response.Error(c, h.logger, err)
		return
	}

	response.Success(c, http.StatusCreated, "Owner registered successfully", sessionBody("owner", session))
}

// LoginOwner handles POST /api/owner/login request.
// @Summary Owner login
// @Tags Owner
// @Accept json
// @Produce json
// @Param request body authModel.LoginRequest true "Request"
// @Success 200 {object} map[string]interface{} "token, owner and team"
// @Failure 401 {object} response.ErrorResponse "Invalid email or password"
// @Router /api/owner/login [post] //nolint:godot // Swagger annotation should not end with period
func (h *Handler) LoginOwner(c *gin.Context) {
	h.login(c, access.RoleOwner, "Owner logged in successfully")
}

// LoginCoordinator handles POST /api/coordinator/login request.
// @Summary Coordinator login
// @Tags Coordinator
// @Accept json
// @Produce json
// @Param request body authModel.LoginRequest true "Request"
// @Success 200 {object} map[string]interface{} "token and coordinator"
// @Failure 401 {object} response.ErrorResponse "Invalid email or password"
// @Router /api/coordinator/login [post] //nolint:godot // Swagger annotation should not end with period
func (h *Handler) LoginCoordinator(c *gin.Context) {
	h.login(c, access.RoleCoordinator, "Coordinator logged in successfully")
}

func (h *Handler) login(c *gin.Context, role access.Role, message string) {
	var req authModel.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, h.logger, response.BindError(err))
		return
	}

	session, err := h.service.Login(c.Request.Context(), role, &req)
	if err != nil {
		response.Error(c, h.logger, err)
		return
	}

	response.Success(c, http.StatusOK, message, sessionBody(string(role), session))
}

// RegisterCoordinator handles POST /api/coordinator/register request.
// @Summary Register another coordinator
// @Tags Coordinator
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body authModel.RegisterCoordinatorRequest true "Request"
// @Success 201 {object} map[string]interface{} "token and coordinator"
// @Failure 409 {object} response.ErrorResponse "Email taken"
// @Router /api/coordinator/register [post] //nolint:godot // Swagger annotation should not end with period
func (h *Handler) RegisterCoordinator(c *gin.Context) {
	var req authModel.RegisterCoordinatorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, h.logger, response.BindError(err))
		return
	}

	session, err := h.service.RegisterCoordinator(c.Request.Context(), &req)
	if err != nil {
		response.Error(c, h.logger, err)
		return
	}

	response.Success(c, http.StatusCreated, "Coordinator registered successfully", sessionBody("coordinator", session))
}

// sessionBody keys the account under its role name, as clients expect.
func sessionBody(key string, session *authModel.Session) gin.H {
	body := gin.H{
		"token": session.Token,
		key:     session.Account,
	}
	if session.Team != nil {
		body["team"] = session.Team
	}
	return body
}
