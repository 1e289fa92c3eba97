// Package api assembles the HTTP engine: global middleware, module routes
// and the fallback handlers.
package api

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/pixelpirates/leaderboard/internal/apperr"
	authMiddleware "github.com/pixelpirates/leaderboard/internal/auth/middleware"
	"github.com/pixelpirates/leaderboard/internal/auth/password"
	authRepository "github.com/pixelpirates/leaderboard/internal/auth/repository"
	authRouter "github.com/pixelpirates/leaderboard/internal/auth/router"
	authService "github.com/pixelpirates/leaderboard/internal/auth/service"
	"github.com/pixelpirates/leaderboard/internal/auth/token"
	"github.com/pixelpirates/leaderboard/internal/config"
	eventRouter "github.com/pixelpirates/leaderboard/internal/event/router"
	"github.com/pixelpirates/leaderboard/internal/health"
	"github.com/pixelpirates/leaderboard/internal/metrics"
	"github.com/pixelpirates/leaderboard/internal/middleware"
	"github.com/pixelpirates/leaderboard/internal/response"
	resultRouter "github.com/pixelpirates/leaderboard/internal/result/router"
	statisticsRouter "github.com/pixelpirates/leaderboard/internal/statistics/router"
	teamRouter "github.com/pixelpirates/leaderboard/internal/team/router"
	technocratRouter "github.com/pixelpirates/leaderboard/internal/technocrat/router"
)

// NewRouter builds the gin engine serving every /api route plus /metrics.
func NewRouter(db *gorm.DB, authCfg config.AuthConfig, logger *zap.SugaredLogger) *gin.Engine {
	r := gin.New()
	r.Use(
		middleware.RequestID(),
		middleware.Logger(logger),
		middleware.Recovery(logger),
		metrics.GinMiddleware,
	)

	r.NoRoute(func(c *gin.Context) {
		response.Error(c, logger, apperr.ErrRouteNotFound)
	})
	r.GET("/metrics", metrics.Handler())

	api := r.Group("/api")
	api.GET("/health", health.New(db, logger).Check)

	auth := authService.New(
		authRepository.New(db, logger),
		db,
		password.NewHasher(authCfg.BcryptCost),
		token.NewManager(authCfg.JWTSecret, authCfg.TokenTTL, authCfg.Issuer),
		logger,
	)
	guards := authMiddleware.NewGuards(auth, logger)

	authRouter.RegisterRoutes(api, auth, guards, logger)
	teamRouter.RegisterRoutes(api, db, guards, logger)
	technocratRouter.RegisterRoutes(api, db, guards, logger)
	eventRouter.RegisterRoutes(api, db, guards, logger)
	resultRouter.RegisterRoutes(api, db, guards, logger)
	statisticsRouter.RegisterRoutes(api, db, guards, logger)

	return r
}
