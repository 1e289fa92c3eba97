package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"

	teamModel "github.com/pixelpirates/leaderboard/internal/team/model"
	"github.com/pixelpirates/leaderboard/internal/testutil"
)

func TestRepository_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("success normalizes code", func(t *testing.T) {
		db := testutil.NewDB(t)
		repo := New(db, zap.NewNop().Sugar())

		team := &teamModel.Team{TeamName: "Pixel Pirates", TeamCode: " px01 "}
		require.NoError(t, repo.Create(ctx, team))

		assert.NotEmpty(t, team.ID)
		assert.Equal(t, "PX01", team.TeamCode)
		assert.False(t, team.CreatedAt.IsZero())

		stored, err := repo.GetByID(ctx, team.ID)
		require.NoError(t, err)
		assert.Equal(t, "Pixel Pirates", stored.TeamName)
		assert.Zero(t, stored.TotalScore)
	})

	t.Run("duplicate code", func(t *testing.T) {
		db := testutil.NewDB(t)
		repo := New(db, zap.NewNop().Sugar())
		require.NoError(t, repo.Create(ctx, &teamModel.Team{TeamName: "A", TeamCode: "dup"}))

		err := repo.Create(ctx, &teamModel.Team{TeamName: "B", TeamCode: "DUP"})

		assert.ErrorIs(t, err, teamModel.ErrTeamCodeExists)
	})
}

func TestRepository_GetByID_NotFound(t *testing.T) {
	repo := New(testutil.NewDB(t), zap.NewNop().Sugar())

	team, err := repo.GetByID(context.Background(), "missing")

	assert.Nil(t, team)
	assert.ErrorIs(t, err, teamModel.ErrTeamNotFound)
}

func TestRepository_Update(t *testing.T) {
	ctx := context.Background()
	db := testutil.NewDB(t)
	repo := New(db, zap.NewNop().Sugar())
	team := testutil.CreateTeam(t, db, "alpha", 0)

	updated, err := repo.Update(ctx, team.ID, map[string]any{"team_name": "Alpha Prime", "owner_contact": "9999999999"})
	require.NoError(t, err)
	assert.Equal(t, "Alpha Prime", updated.TeamName)
	assert.Equal(t, "9999999999", updated.OwnerContact)

	_, err = repo.Update(ctx, "missing", map[string]any{"team_name": "x"})
	assert.ErrorIs(t, err, teamModel.ErrTeamNotFound)
}

func TestRepository_AdjustScore(t *testing.T) {
	ctx := context.Background()
	db := testutil.NewDB(t)
	repo := New(db, zap.NewNop().Sugar())
	team := testutil.CreateTeam(t, db, "alpha", 5)

	require.NoError(t, repo.AdjustScore(ctx, team.ID, 10))
	assert.Equal(t, 15, testutil.Team(t, db, team.ID).TotalScore)

	require.NoError(t, repo.AdjustScore(ctx, team.ID, -3))
	assert.Equal(t, 12, testutil.Team(t, db, team.ID).TotalScore)

	require.NoError(t, repo.AdjustScore(ctx, team.ID, -100))
	assert.Equal(t, 0, testutil.Team(t, db, team.ID).TotalScore, "score is floored at zero")

	assert.ErrorIs(t, repo.AdjustScore(ctx, "missing", 1), teamModel.ErrTeamNotFound)
}

func TestRepository_ListOrders(t *testing.T) {
	ctx := context.Background()
	db := testutil.NewDB(t)
	repo := New(db, zap.NewNop().Sugar())
	charlie := testutil.CreateTeam(t, db, "charlie", 10)
	alpha := testutil.CreateTeam(t, db, "alpha", 20)
	bravo := testutil.CreateTeam(t, db, "bravo", 10)

	byScore, err := repo.ListByScore(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{alpha.ID, charlie.ID, bravo.ID}, teamIDs(byScore))

	byName, err := repo.ListByName(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{alpha.ID, bravo.ID, charlie.ID}, teamIDs(byName))
}

func TestRepository_ListByScore_Empty(t *testing.T) {
	teams, err := New(testutil.NewDB(t), zap.NewNop().Sugar()).ListByScore(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, teams)
	assert.Empty(t, teams)
}

func TestRepository_RecomputeRanks(t *testing.T) {
	ctx := context.Background()
	db := testutil.NewDB(t)
	repo := New(db, zap.NewNop().Sugar())
	a := testutil.CreateTeam(t, db, "a", 0)
	b := testutil.CreateTeam(t, db, "b", 30)
	c := testutil.CreateTeam(t, db, "c", 0)

	first, err := repo.RecomputeRanks(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, testutil.Team(t, db, b.ID).Rank)
	assert.Equal(t, 2, testutil.Team(t, db, a.ID).Rank)
	assert.Equal(t, 3, testutil.Team(t, db, c.ID).Rank)

	second, err := repo.RecomputeRanks(ctx)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestRepository_IconPlayer(t *testing.T) {
	ctx := context.Background()
	db := testutil.NewDB(t)
	repo := New(db, zap.NewNop().Sugar())
	team := testutil.CreateTeam(t, db, "alpha", 0)
	tc := testutil.CreateTechnocrat(t, db, team.ID, "Asha", "en001")

	require.NoError(t, repo.SetIconPlayer(ctx, team.ID, &tc.ID))
	stored := testutil.Team(t, db, team.ID)
	require.NotNil(t, stored.IconPlayerID)
	assert.Equal(t, tc.ID, *stored.IconPlayerID)

	players, err := repo.IconPlayers(ctx, []string{tc.ID})
	require.NoError(t, err)
	assert.Equal(t, "Asha", players[tc.ID].Name)
	assert.Equal(t, "EN001", players[tc.ID].EnrollmentNumber)

	require.NoError(t, repo.ClearIconPlayerRef(ctx, tc.ID))
	assert.Nil(t, testutil.Team(t, db, team.ID).IconPlayerID)

	assert.ErrorIs(t, repo.SetIconPlayer(ctx, "missing", nil), teamModel.ErrTeamNotFound)
}

func TestRepository_SetOwner(t *testing.T) {
	ctx := context.Background()
	db := testutil.NewDB(t)
	repo := New(db, zap.NewNop().Sugar())
	team := testutil.CreateTeam(t, db, "alpha", 0)

	require.NoError(t, repo.SetOwner(ctx, team.ID, "owner-1"))
	stored := testutil.Team(t, db, team.ID)
	require.NotNil(t, stored.OwnerID)
	assert.Equal(t, "owner-1", *stored.OwnerID)
}

func TestRepository_LockStandings_NoopOnSQLite(t *testing.T) {
	db := testutil.NewDB(t)
	repo := New(db, zap.NewNop().Sugar())

	err := db.Transaction(func(tx *gorm.DB) error {
		return New(tx, zap.NewNop().Sugar()).LockStandings(context.Background())
	})
	require.NoError(t, err)
	assert.NoError(t, repo.LockStandings(context.Background()))
}

func teamIDs(teams []teamModel.Team) []string {
	ids := make([]string, len(teams))
	for i, t := range teams {
		ids[i] = t.ID
	}
	return ids
}
