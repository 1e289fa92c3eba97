// Package access models the authenticated caller and the team ownership rule.
package access

import (
	"context"

	"github.com/pixelpirates/leaderboard/internal/apperr"
)

// Role is the capability set of an actor.
type Role string

const (
	// RoleOwner manages a single team's roster.
	RoleOwner Role = "owner"
	// RoleCoordinator manages events and results for every team.
	RoleCoordinator Role = "coordinator"
)

// Valid reports whether r is a known role.
func (r Role) Valid() bool {
	return r == RoleOwner || r == RoleCoordinator
}

var (
	// ErrWrongRole indicates the actor's role may not call the operation.
	ErrWrongRole = apperr.New(apperr.KindAuthorization, "wrong role")
	// ErrForeignTeam indicates an owner touched another team's records.
	ErrForeignTeam = apperr.New(apperr.KindAuthorization, "team does not belong to actor")
	// ErrNoActor indicates an operation ran without an authenticated actor.
	ErrNoActor = apperr.New(apperr.KindAuthentication, "no authenticated actor")
)

// Actor is the authenticated caller. TeamID is set for owners only.
type Actor struct {
	ID     string
	Name   string
	Email  string
	Role   Role
	TeamID string
}

// IsCoordinator reports whether the actor manages all teams.
func (a Actor) IsCoordinator() bool {
	return a.Role == RoleCoordinator
}

// IsOwner reports whether the actor manages a single team.
func (a Actor) IsOwner() bool {
	return a.Role == RoleOwner
}

// AuthorizeTeam allows coordinators everywhere and owners on their own team only.
func (a Actor) AuthorizeTeam(teamID string) error {
	switch a.Role {
	case RoleCoordinator:
		return nil
	case RoleOwner:
		if a.TeamID != "" && a.TeamID == teamID {
			return nil
		}
		return ErrForeignTeam
	default:
		return ErrWrongRole
	}
}

// RequireRole fails unless the actor has one of the given roles.
func (a Actor) RequireRole(roles ...Role) error {
	for _, r := range roles {
		if a.Role == r {
			return nil
		}
	}
	return ErrWrongRole
}

type ctxKey struct{}

// WithActor returns a copy of ctx carrying the actor.
func WithActor(ctx context.Context, a Actor) context.Context {
	return context.WithValue(ctx, ctxKey{}, a)
}

// FromContext returns the actor stored in ctx.
func FromContext(ctx context.Context) (Actor, bool) {
	a, ok := ctx.Value(ctxKey{}).(Actor)
	return a, ok
}

// MustFromContext returns the actor stored in ctx or ErrNoActor.
func MustFromContext(ctx context.Context) (Actor, error) {
	a, ok := FromContext(ctx)
	if !ok {
		return Actor{}, ErrNoActor
	}
	return a, nil
}
