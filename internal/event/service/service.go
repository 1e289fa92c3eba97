// Package service provides business logic layer for event module.
package service

import (
	"context"
	"strings"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/pixelpirates/leaderboard/internal/access"
	eventModel "github.com/pixelpirates/leaderboard/internal/event/model"
	"github.com/pixelpirates/leaderboard/internal/event/repository"
	resultRepository "github.com/pixelpirates/leaderboard/internal/result/repository"
	"github.com/pixelpirates/leaderboard/internal/scoring"
	technocratRepository "github.com/pixelpirates/leaderboard/internal/technocrat/repository"
	"github.com/pixelpirates/leaderboard/internal/validation"
)

// Service defines the interface for event management.
type Service interface {
	// Create adds an event with a complete points table.
	Create(ctx context.Context, actor access.Actor, req *eventModel.CreateEventRequest) (*eventModel.Event, error)

	// Update partially updates an event. Results already recorded keep their points.
	Update(ctx context.Context, actor access.Actor, id string, req *eventModel.UpdateEventRequest) (*eventModel.Event, error)

	// Delete removes an event that has no results, along with its assignments.
	Delete(ctx context.Context, actor access.Actor, id string) error

	// List returns every event, newest first.
	List(ctx context.Context) ([]eventModel.Event, error)
}

type service struct {
	repo   repository.Repository
	db     *gorm.DB
	logger *zap.SugaredLogger
}

// New creates a new event service instance.
func New(repo repository.Repository, db *gorm.DB, logger *zap.SugaredLogger) Service {
	return &service{repo: repo, db: db, logger: logger}
}

// Create adds an event with a complete points table.
func (s *service) Create(ctx context.Context, actor access.Actor, req *eventModel.CreateEventRequest) (*eventModel.Event, error) {
	if err := actor.RequireRole(access.RoleCoordinator); err != nil {
		return nil, err
	}
	if err := validation.Struct(req); err != nil {
		return nil, err
	}

	name := strings.TrimSpace(req.EventName)
	if name == "" {
		return nil, eventModel.ErrInvalidEventName
	}
	if !req.EventType.Valid() {
		return nil, eventModel.ErrInvalidEventType
	}
	if !req.Points.Complete() {
		return nil, eventModel.ErrMissingPoints
	}
	points := scoring.PointsTable{
		First:  *req.Points.First,
		Second: *req.Points.Second,
		Third:  *req.Points.Third,
	}
	if err := points.Validate(); err != nil {
		return nil, err
	}

	event := &eventModel.Event{
		EventName: name,
		EventType: req.EventType,
		Points:    points,
	}
	if err := s.repo.Create(ctx, event); err != nil {
		s.logger.Errorw("failed to create event", "error", err, "event_name", name)
		return nil, err
	}

	s.logger.Infow("event created", "event_id", event.ID, "event_name", event.EventName)
	return event, nil
}

// Update partially updates an event.
func (s *service) Update(ctx context.Context, actor access.Actor, id string, req *eventModel.UpdateEventRequest) (*eventModel.Event, error) {
	if err := actor.RequireRole(access.RoleCoordinator); err != nil {
		return nil, err
	}
	if err := validation.Struct(req); err != nil {
		return nil, err
	}

	event, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.EventName != nil {
		name := strings.TrimSpace(*req.EventName)
		if name == "" {
			return nil, eventModel.ErrInvalidEventName
		}
		event.EventName = name
	}
	if req.EventType != nil {
		if !req.EventType.Valid() {
			return nil, eventModel.ErrInvalidEventType
		}
		event.EventType = *req.EventType
	}
	if p := req.Points; p != nil {
		if p.First != nil {
			event.Points.First = *p.First
		}
		if p.Second != nil {
			event.Points.Second = *p.Second
		}
		if p.Third != nil {
			event.Points.Third = *p.Third
		}
	}
	if err := event.Points.Validate(); err != nil {
		return nil, err
	}

	if err := s.repo.Save(ctx, event); err != nil {
		return nil, err
	}

	s.logger.Infow("event updated", "event_id", event.ID)
	return event, nil
}

// Delete removes an event that has no results.
func (s *service) Delete(ctx context.Context, actor access.Actor, id string) error {
	if err := actor.RequireRole(access.RoleCoordinator); err != nil {
		return err
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		events := repository.New(tx, s.logger)
		if _, err := events.GetByID(ctx, id); err != nil {
			return err
		}

		results, err := resultRepository.New(tx, s.logger).CountByEvent(ctx, id)
		if err != nil {
			return err
		}
		if results > 0 {
			return eventModel.ErrEventHasResults
		}

		if err := technocratRepository.New(tx, s.logger).DeleteAssignmentsForEvent(ctx, id); err != nil {
			return err
		}
		return events.Delete(ctx, id)
	})
	if err != nil {
		return err
	}

	s.logger.Infow("event deleted", "event_id", id)
	return nil
}

// List returns every event, newest first.
func (s *service) List(ctx context.Context) ([]eventModel.Event, error) {
	return s.repo.List(ctx)
}
