// Package router provides auth module routes registration.
package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/pixelpirates/leaderboard/internal/auth/handler"
	"github.com/pixelpirates/leaderboard/internal/auth/middleware"
	"github.com/pixelpirates/leaderboard/internal/auth/service"
)

// RegisterRoutes registers registration and login routes under api.
func RegisterRoutes(api *gin.RouterGroup, svc service.Service, guards middleware.Guards, logger *zap.SugaredLogger) {
	h := handler.New(svc, logger)

	owner := api.Group("/owner")
	owner.POST("/register", h.RegisterOwner)
	owner.POST("/login", h.LoginOwner)

	coordinator := api.Group("/coordinator")
	coordinator.POST("/login", h.LoginCoordinator)
	coordinator.POST("/register", guards.ForCoordinator(h.RegisterCoordinator)...)
}
