// Package router provides event module routes registration.
package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/pixelpirates/leaderboard/internal/auth/middleware"
	"github.com/pixelpirates/leaderboard/internal/event/handler"
	"github.com/pixelpirates/leaderboard/internal/event/repository"
	"github.com/pixelpirates/leaderboard/internal/event/service"
)

// RegisterRoutes registers event module routes under api.
func RegisterRoutes(api *gin.RouterGroup, db *gorm.DB, guards middleware.Guards, logger *zap.SugaredLogger) {
	repo := repository.New(db, logger)
	svc := service.New(repo, db, logger)
	h := handler.New(svc, logger)

	coordinator := api.Group("/coordinator")
	coordinator.GET("/events", guards.ForCoordinator(h.List)...)
	coordinator.POST("/events", guards.ForCoordinator(h.Create)...)
	coordinator.PUT("/events/:eventId", guards.ForCoordinator(h.Update)...)
	coordinator.DELETE("/events/:eventId", guards.ForCoordinator(h.Delete)...)
}
