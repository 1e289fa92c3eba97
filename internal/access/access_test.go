package access

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pixelpirates/leaderboard/internal/apperr"
)

func TestActor_AuthorizeTeam(t *testing.T) {
	tests := []struct {
		name    string
		actor   Actor
		teamID  string
		wantErr error
	}{
		{"coordinator any team", Actor{ID: "c1", Role: RoleCoordinator}, "team-b", nil},
		{"owner own team", Actor{ID: "o1", Role: RoleOwner, TeamID: "team-a"}, "team-a", nil},
		{"owner foreign team", Actor{ID: "o1", Role: RoleOwner, TeamID: "team-a"}, "team-b", ErrForeignTeam},
		{"owner without team", Actor{ID: "o1", Role: RoleOwner}, "", ErrForeignTeam},
		{"unknown role", Actor{ID: "x", Role: "guest"}, "team-a", ErrWrongRole},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.actor.AuthorizeTeam(tt.teamID)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Equal(t, apperr.KindAuthorization, apperr.KindOf(err))
		})
	}
}

func TestActor_RequireRole(t *testing.T) {
	owner := Actor{Role: RoleOwner}

	assert.NoError(t, owner.RequireRole(RoleOwner))
	assert.NoError(t, owner.RequireRole(RoleCoordinator, RoleOwner))
	assert.ErrorIs(t, owner.RequireRole(RoleCoordinator), ErrWrongRole)
	assert.True(t, owner.IsOwner())
	assert.False(t, owner.IsCoordinator())
}

func TestRole_Valid(t *testing.T) {
	assert.True(t, RoleOwner.Valid())
	assert.True(t, RoleCoordinator.Valid())
	assert.False(t, Role("admin").Valid())
}

func TestContext(t *testing.T) {
	_, err := MustFromContext(context.Background())
	assert.ErrorIs(t, err, ErrNoActor)

	want := Actor{ID: "o1", Role: RoleOwner, TeamID: "t1"}
	ctx := WithActor(context.Background(), want)

	got, err := MustFromContext(ctx)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}
