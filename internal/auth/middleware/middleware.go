// Package middleware authenticates bearer tokens and enforces roles on routes.
package middleware

import (
	"context"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/pixelpirates/leaderboard/internal/access"
	"github.com/pixelpirates/leaderboard/internal/apperr"
	"github.com/pixelpirates/leaderboard/internal/response"
)

const actorKey = "actor"

// Authenticator resolves a bearer token to an actor.
type Authenticator interface {
	Authenticate(ctx context.Context, bearer string) (access.Actor, error)
}

// RequireAuth rejects requests without a valid bearer token.
func RequireAuth(auth Authenticator, logger *zap.SugaredLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		bearer, ok := bearerToken(c)
		if !ok {
			response.Abort(c, logger, apperr.ErrUnauthenticated)
			return
		}

		actor, err := auth.Authenticate(c.Request.Context(), bearer)
		if err != nil {
			if apperr.KindOf(err) == apperr.KindAuthentication {
				logger.Debugw("authentication failed", "path", c.Request.URL.Path, "error", err)
			}
			response.Abort(c, logger, err)
			return
		}

		setActor(c, actor)
		c.Next()
	}
}

// OptionalAuth attaches the actor when a valid token is present and never rejects.
func OptionalAuth(auth Authenticator, logger *zap.SugaredLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		if bearer, ok := bearerToken(c); ok {
			if actor, err := auth.Authenticate(c.Request.Context(), bearer); err == nil {
				setActor(c, actor)
			} else {
				logger.Debugw("ignoring invalid optional token", "path", c.Request.URL.Path, "error", err)
			}
		}
		c.Next()
	}
}

// RequireRole rejects authenticated actors whose role is not listed.
// It must run after RequireAuth.
func RequireRole(logger *zap.SugaredLogger, roles ...access.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		actor, ok := ActorFrom(c)
		if !ok {
			response.Abort(c, logger, apperr.ErrUnauthenticated)
			return
		}
		if err := actor.RequireRole(roles...); err != nil {
			response.Abort(c, logger, err)
			return
		}
		c.Next()
	}
}

// ActorFrom returns the actor attached by RequireAuth or OptionalAuth.
func ActorFrom(c *gin.Context) (access.Actor, bool) {
	v, ok := c.Get(actorKey)
	if !ok {
		return access.Actor{}, false
	}
	actor, ok := v.(access.Actor)
	return actor, ok
}

// MustActor returns the attached actor or an authentication error.
func MustActor(c *gin.Context) (access.Actor, error) {
	actor, ok := ActorFrom(c)
	if !ok {
		return access.Actor{}, apperr.ErrUnauthenticated
	}
	return actor, nil
}

func setActor(c *gin.Context, actor access.Actor) {
	c.Set(actorKey, actor)
	c.Request = c.Request.WithContext(access.WithActor(c.Request.Context(), actor))
}

func bearerToken(c *gin.Context) (string, bool) {
	header := c.GetHeader("Authorization")
	scheme, token, found := strings.Cut(header, " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}

// Guards bundles the handler chains that protect owner and coordinator routes.
type Guards struct {
	Owner       gin.HandlersChain
	Coordinator gin.HandlersChain
	Optional    gin.HandlerFunc
}

// NewGuards builds the standard route guards around auth.
func NewGuards(auth Authenticator, logger *zap.SugaredLogger) Guards {
	required := RequireAuth(auth, logger)
	return Guards{
		Owner:       gin.HandlersChain{required, RequireRole(logger, access.RoleOwner)},
		Coordinator: gin.HandlersChain{required, RequireRole(logger, access.RoleCoordinator)},
		Optional:    OptionalAuth(auth, logger),
	}
}

// ForOwner returns the owner guard chain followed by handlers.
func (g Guards) ForOwner(handlers ...gin.HandlerFunc) gin.HandlersChain {
	return chain(g.Owner, handlers)
}

// ForCoordinator returns the coordinator guard chain followed by handlers.
func (g Guards) ForCoordinator(handlers ...gin.HandlerFunc) gin.HandlersChain {
	return chain(g.Coordinator, handlers)
}

func chain(guard gin.HandlersChain, handlers []gin.HandlerFunc) gin.HandlersChain {
	out := make(gin.HandlersChain, 0, len(guard)+len(handlers))
	out = append(out, guard...)
	return append(out, handlers...)
}
