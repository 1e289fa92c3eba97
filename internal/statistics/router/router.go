// Package router provides statistics module routes registration.
package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/pixelpirates/leaderboard/internal/auth/middleware"
	"github.com/pixelpirates/leaderboard/internal/statistics/handler"
	"github.com/pixelpirates/leaderboard/internal/statistics/repository"
	"github.com/pixelpirates/leaderboard/internal/statistics/service"
)

// RegisterRoutes registers statistics module routes.
func RegisterRoutes(api *gin.RouterGroup, db *gorm.DB, guards middleware.Guards, logger *zap.SugaredLogger) {
	repo := repository.New(db, logger)
	svc := service.New(repo, db, logger)
	h := handler.New(svc, logger)

	api.Group("/owner").GET("/team-scores", guards.ForOwner(h.TeamScores)...)

	coordinator := api.Group("/coordinator")
	coordinator.GET("/participation-details", guards.ForCoordinator(h.Participation)...)
	coordinator.GET("/results-summary", guards.ForCoordinator(h.ResultsSummary)...)
}
