// Package router provides team module routes registration.
package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/pixelpirates/leaderboard/internal/auth/middleware"
	"github.com/pixelpirates/leaderboard/internal/team/handler"
	"github.com/pixelpirates/leaderboard/internal/team/repository"
	"github.com/pixelpirates/leaderboard/internal/team/service"
)

// RegisterRoutes registers team module routes under api.
func RegisterRoutes(api *gin.RouterGroup, db *gorm.DB, guards middleware.Guards, logger *zap.SugaredLogger) {
	repo := repository.New(db, logger)
	svc := service.New(repo, db, logger)
	h := handler.New(svc, logger)

	owner := api.Group("/owner")
	owner.GET("/team-profile", guards.ForOwner(h.Profile)...)
	owner.PUT("/team-profile", guards.ForOwner(h.UpdateProfile)...)
	owner.GET("/leaderboard", guards.Optional, h.ScoreLeaderboard)

	coordinator := api.Group("/coordinator")
	coordinator.GET("/all-teams", guards.ForCoordinator(h.AllTeams)...)
	coordinator.GET("/leaderboard", guards.ForCoordinator(h.Leaderboard)...)
	coordinator.POST("/leaderboard/recompute", guards.ForCoordinator(h.RecomputeRanks)...)
}
