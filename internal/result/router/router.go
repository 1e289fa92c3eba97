// Package router provides result module routes registration.
package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/pixelpirates/leaderboard/internal/auth/middleware"
	"github.com/pixelpirates/leaderboard/internal/result/handler"
	"github.com/pixelpirates/leaderboard/internal/result/repository"
	"github.com/pixelpirates/leaderboard/internal/result/service"
)

// RegisterRoutes registers result module routes under api.
func RegisterRoutes(api *gin.RouterGroup, db *gorm.DB, guards middleware.Guards, logger *zap.SugaredLogger) {
	repo := repository.New(db, logger)
	svc := service.New(repo, db, logger)
	h := handler.New(svc, logger)

	coordinator := api.Group("/coordinator")
	coordinator.POST("/results", guards.ForCoordinator(h.Create)...)
	coordinator.PUT("/results/:resultId", guards.ForCoordinator(h.Update)...)
	coordinator.DELETE("/results/:resultId", guards.ForCoordinator(h.Delete)...)
}
