// Package repository provides data access layer for statistics module.
package repository

import (
	"context"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/pixelpirates/leaderboard/internal/statistics/model"
)

// Repository defines the interface for statistics data access operations.
type Repository interface {
	// Summary counts teams, technocrats, events and results.
	Summary(ctx context.Context) (*model.Summary, error)

	// ParticipationByEvent counts results and distinct teams per event.
	ParticipationByEvent(ctx context.Context) ([]model.EventParticipation, error)

	// TeamEventScores sums a team's awarded points per event name.
	TeamEventScores(ctx context.Context, teamID string) ([]model.EventScore, error)
}

type repository struct {
	db     *gorm.DB
	logger *zap.SugaredLogger
}

// New creates a new statistics repository instance.
func New(db *gorm.DB, logger *zap.SugaredLogger) Repository {
	return &repository{
		db:     db,
		logger: logger,
	}
}

// Summary counts teams, technocrats, events and results.
func (r *repository) Summary(ctx context.Context) (*model.Summary, error) {
	var summary model.Summary

	err := r.db.WithContext(ctx).Raw(`
		SELECT
			(SELECT COUNT(*) FROM teams) AS total_teams,
			(SELECT COUNT(*) FROM technocrats) AS total_technocrats,
			(SELECT COUNT(*) FROM events) AS total_events,
			(SELECT COUNT(*) FROM results) AS total_results
	`).Scan(&summary).Error
	if err != nil {
		r.logger.Errorw("Summary database error", "error", err)
		return nil, err
	}

	return &summary, nil
}

// ParticipationByEvent counts results and distinct teams per event.
func (r *repository) ParticipationByEvent(ctx context.Context) ([]model.EventParticipation, error) {
	var rows []model.EventParticipation

	err := r.db.WithContext(ctx).
		Table("results").
		Select(`
			events.id AS event_id,
			events.event_name,
			events.event_type,
			COUNT(DISTINCT results.team_id) AS participating_teams,
			COUNT(results.id) AS results
		`).
		Joins("JOIN events ON events.id = results.event_id").
		Group("events.id, events.event_name, events.event_type").
		Order("participating_teams DESC, events.event_name ASC").
		Scan(&rows).Error
	if err != nil {
		r.logger.Errorw("ParticipationByEvent database error", "error", err)
		return nil, err
	}

	if rows == nil {
		rows = []model.EventParticipation{}
	}

	r.logger.Debugw("ParticipationByEvent completed", "events", len(rows))
	return rows, nil
}

// TeamEventScores sums a team's awarded points per event name.
func (r *repository) TeamEventScores(ctx context.Context, teamID string) ([]model.EventScore, error) {
	var rows []model.EventScore

	err := r.db.WithContext(ctx).
		Table("results").
		Select("events.event_name, COALESCE(SUM(results.points_awarded), 0) AS points").
		Joins("JOIN events ON events.id = results.event_id").
		Where("results.team_id = ?", teamID).
		Group("events.event_name").
		Order("events.event_name ASC").
		Scan(&rows).Error
	if err != nil {
		r.logger.Errorw("TeamEventScores database error", "error", err, "team_id", teamID)
		return nil, err
	}

	return rows, nil
}
