// Package repository provides data access layer for event module.
package repository

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	eventModel "github.com/pixelpirates/leaderboard/internal/event/model"
)

// Repository defines the interface for event data access operations.
type Repository interface {
	// Create inserts a new event.
	Create(ctx context.Context, event *eventModel.Event) error

	// GetByID finds an event by id.
	GetByID(ctx context.Context, id string) (*eventModel.Event, error)

	// Save writes every column of an existing event.
	Save(ctx context.Context, event *eventModel.Event) error

	// Delete removes an event.
	Delete(ctx context.Context, id string) error

	// List returns all events, newest first.
	List(ctx context.Context) ([]eventModel.Event, error)

	// CountExisting counts how many of ids are known events.
	CountExisting(ctx context.Context, ids []string) (int64, error)
}

type repository struct {
	db     *gorm.DB
	logger *zap.SugaredLogger
}

// New creates a new event repository instance.
func New(db *gorm.DB, logger *zap.SugaredLogger) Repository {
	return &repository{db: db, logger: logger}
}

// Create inserts a new event.
func (r *repository) Create(ctx context.Context, event *eventModel.Event) error {
	now := time.Now()
	event.CreatedAt = now
	event.UpdatedAt = now
	if err := r.db.WithContext(ctx).Create(event).Error; err != nil {
		return err
	}
	r.logger.Debugw("event created", "event_id", event.ID, "event_name", event.EventName)
	return nil
}

// GetByID finds an event by id.
func (r *repository) GetByID(ctx context.Context, id string) (*eventModel.Event, error) {
	var event eventModel.Event
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&event).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, eventModel.ErrEventNotFound
		}
		return nil, err
	}
	return &event, nil
}

// Save writes every column of an existing event.
func (r *repository) Save(ctx context.Context, event *eventModel.Event) error {
	res := r.db.WithContext(ctx).
		Model(event).
		Select("event_name", "event_type", "points_first", "points_second", "points_third", "updated_at").
		Updates(event)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return eventModel.ErrEventNotFound
	}
	return nil
}

// Delete removes an event.
func (r *repository) Delete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&eventModel.Event{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return eventModel.ErrEventNotFound
	}
	r.logger.Debugw("event deleted", "event_id", id)
	return nil
}

// List returns all events, newest first.
func (r *repository) List(ctx context.Context) ([]eventModel.Event, error) {
	var events []eventModel.Event
	if err := r.db.WithContext(ctx).Order("created_at DESC, id ASC").Find(&events).Error; err != nil {
		return nil, err
	}
	if events == nil {
		return []eventModel.Event{}, nil
	}
	return events, nil
}

// CountExisting counts how many of ids are known events.
func (r *repository) CountExisting(ctx context.Context, ids []string) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	var count int64
	err := r.db.WithContext(ctx).
		Model(&eventModel.Event{}).
		Where("id IN ?", ids).
		Count(&count).Error
	return count, err
}
