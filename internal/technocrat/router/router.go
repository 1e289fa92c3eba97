// Package router provides technocrat module routes registration.
package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/pixelpirates/leaderboard/internal/auth/middleware"
	"github.com/pixelpirates/leaderboard/internal/technocrat/handler"
	"github.com/pixelpirates/leaderboard/internal/technocrat/repository"
	"github.com/pixelpirates/leaderboard/internal/technocrat/service"
)

// RegisterRoutes registers technocrat module routes under api.
func RegisterRoutes(api *gin.RouterGroup, db *gorm.DB, guards middleware.Guards, logger *zap.SugaredLogger) {
	repo := repository.New(db, logger)
	svc := service.New(repo, db, logger)
	h := handler.New(svc, logger)

	owner := api.Group("/owner")
	owner.POST("/technocrat", guards.ForOwner(h.Add)...)
	owner.PUT("/technocrat/:technocratId", guards.ForOwner(h.Edit)...)
	owner.DELETE("/technocrat/:technocratId", guards.ForOwner(h.Delete)...)
	owner.POST("/assign-events", guards.ForOwner(h.AssignEvents)...)
	owner.DELETE("/remove-event/:technocratId/:eventId", guards.ForOwner(h.RemoveEvent)...)
	owner.POST("/set-icon-player", guards.ForOwner(h.SetIconPlayer)...)

	coordinator := api.Group("/coordinator")
	coordinator.GET("/all-technocrats", guards.ForCoordinator(h.ListAll)...)
}
