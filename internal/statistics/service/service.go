// Package service provides business logic layer for statistics module.
package service

import (
	"context"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/pixelpirates/leaderboard/internal/access"
	resultModel "github.com/pixelpirates/leaderboard/internal/result/model"
	resultRepository "github.com/pixelpirates/leaderboard/internal/result/repository"
	"github.com/pixelpirates/leaderboard/internal/statistics/model"
	"github.com/pixelpirates/leaderboard/internal/statistics/repository"
)

// Service defines the interface for reporting operations.
type Service interface {
	// Participation returns competition totals and per-event participation.
	Participation(ctx context.Context) (*model.ParticipationResponse, error)

	// TeamScores returns the actor's team points per event.
	TeamScores(ctx context.Context, actor access.Actor) (*model.TeamScoresResponse, error)

	// ResultsSummary groups results by event name, newest first.
	// An empty eventID selects every event.
	ResultsSummary(ctx context.Context, eventID string) (*model.ResultsSummaryResponse, error)
}

type service struct {
	repo    repository.Repository
	results resultRepository.Repository
	logger  *zap.SugaredLogger
}

// New creates a new statistics service instance.
func New(repo repository.Repository, db *gorm.DB, logger *zap.SugaredLogger) Service {
	return &service{
		repo:    repo,
		results: resultRepository.New(db, logger),
		logger:  logger,
	}
}

// Participation returns competition totals and per-event participation.
func (s *service) Participation(ctx context.Context) (*model.ParticipationResponse, error) {
	summary, err := s.repo.Summary(ctx)
	if err != nil {
		return nil, err
	}

	byEvent, err := s.repo.ParticipationByEvent(ctx)
	if err != nil {
		return nil, err
	}

	s.logger.Debugw("Participation completed", "teams", summary.TotalTeams, "events", len(byEvent))
	return &model.ParticipationResponse{
		Summary:              *summary,
		ParticipationByEvent: byEvent,
	}, nil
}

// TeamScores returns the actor's team points per event.
func (s *service) TeamScores(ctx context.Context, actor access.Actor) (*model.TeamScoresResponse, error) {
	if err := actor.RequireRole(access.RoleOwner); err != nil {
		return nil, err
	}

	rows, err := s.repo.TeamEventScores(ctx, actor.TeamID)
	if err != nil {
		return nil, err
	}

	resp := &model.TeamScoresResponse{EventScores: make(map[string]int, len(rows))}
	for _, row := range rows {
		resp.EventScores[row.EventName] += row.Points
		resp.TotalScore += row.Points
	}
	return resp, nil
}

// ResultsSummary groups results by event name, newest first.
func (s *service) ResultsSummary(ctx context.Context, eventID string) (*model.ResultsSummaryResponse, error) {
	views, err := s.results.Views(ctx, resultRepository.Filter{EventID: eventID})
	if err != nil {
		return nil, err
	}

	grouped := make(map[string][]resultModel.ResultView)
	for _, v := range views {
		grouped[v.EventName] = append(grouped[v.EventName], v)
	}

	return &model.ResultsSummaryResponse{
		EventResultsSummary: grouped,
		TotalResults:        len(views),
	}, nil
}
