// Package testutil provides an in-memory database and fixtures for tests.
package testutil

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/pixelpirates/leaderboard/internal/access"
	"github.com/pixelpirates/leaderboard/internal/apperr"
	authModel "github.com/pixelpirates/leaderboard/internal/auth/model"
	eventModel "github.com/pixelpirates/leaderboard/internal/event/model"
	resultModel "github.com/pixelpirates/leaderboard/internal/result/model"
	"github.com/pixelpirates/leaderboard/internal/scoring"
	teamModel "github.com/pixelpirates/leaderboard/internal/team/model"
	technocratModel "github.com/pixelpirates/leaderboard/internal/technocrat/model"
)

// NewDB opens a fresh in-memory SQLite database with the full schema.
//
// The pool is limited to one connection so every query sees the same
// in-memory database. Code running inside a transaction must therefore use
// the transaction handle only.
func NewDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(
		&teamModel.Team{},
		&authModel.Account{},
		&eventModel.Event{},
		&technocratModel.Technocrat{},
		&technocratModel.TechnocratEvent{},
		&resultModel.Result{},
		&resultModel.ResultTechnocrat{},
	))
	require.NoError(t, db.Exec(
		"CREATE UNIQUE INDEX idx_technocrats_team_icon ON technocrats (team_id) WHERE is_icon_player",
	).Error)

	return db
}

// seq orders fixtures deterministically by creation time.
var seq = time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

func next() time.Time {
	seq = seq.Add(time.Second)
	return seq
}

// CreateTeam inserts a team with the given name and score.
func CreateTeam(t *testing.T, db *gorm.DB, name string, score int) *teamModel.Team {
	t.Helper()
	now := next()
	team := &teamModel.Team{
		TeamName:   name,
		TeamCode:   name,
		OwnerName:  name + " owner",
		TotalScore: score,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	require.NoError(t, db.Create(team).Error)
	return team
}

// CreateEvent inserts an event with the given points table.
func CreateEvent(t *testing.T, db *gorm.DB, name string, points scoring.PointsTable) *eventModel.Event {
	t.Helper()
	now := next()
	event := &eventModel.Event{
		EventName: name,
		EventType: eventModel.TypeSolo,
		Points:    points,
		CreatedAt: now,
		UpdatedAt: now,
	}
	require.NoError(t, db.Create(event).Error)
	return event
}

// CreateTechnocrat inserts a technocrat on teamID.
func CreateTechnocrat(t *testing.T, db *gorm.DB, teamID, name, enrollment string) *technocratModel.Technocrat {
	t.Helper()
	now := next()
	tc := &technocratModel.Technocrat{
		Name:             name,
		EnrollmentNumber: enrollment,
		Semester:         3,
		MobileNumber:     "9876543210",
		TeamID:           teamID,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	require.NoError(t, db.Create(tc).Error)
	return tc
}

// CreateResult inserts a result without touching team scores.
func CreateResult(t *testing.T, db *gorm.DB, eventID, teamID string, pos scoring.Position, points int) *resultModel.Result {
	t.Helper()
	now := next()
	r := &resultModel.Result{
		EventID:       eventID,
		TeamID:        teamID,
		Position:      pos,
		PointsAwarded: points,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	require.NoError(t, db.Create(r).Error)
	return r
}

// Team reloads a team by id.
func Team(t *testing.T, db *gorm.DB, id string) *teamModel.Team {
	t.Helper()
	var team teamModel.Team
	require.NoError(t, db.First(&team, "id = ?", id).Error)
	return &team
}

// StaticAuth authenticates bearer tokens from a fixed table.
type StaticAuth map[string]access.Actor

// Authenticate returns the actor registered for bearer.
func (a StaticAuth) Authenticate(_ context.Context, bearer string) (access.Actor, error) {
	actor, ok := a[bearer]
	if !ok {
		return access.Actor{}, apperr.ErrUnauthenticated
	}
	return actor, nil
}
