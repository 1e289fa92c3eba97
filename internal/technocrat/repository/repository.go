// Package repository provides data access layer for technocrat module.
package repository

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/pixelpirates/leaderboard/internal/database/dberr"
	technocratModel "github.com/pixelpirates/leaderboard/internal/technocrat/model"
)

// Repository defines the interface for technocrat data access operations.
type Repository interface {
	// Create inserts a new technocrat.
	Create(ctx context.Context, tc *technocratModel.Technocrat) error

	// GetByID finds a technocrat by id.
	GetByID(ctx context.Context, id string) (*technocratModel.Technocrat, error)

	// EnrollmentTaken reports whether another technocrat uses the enrollment number.
	EnrollmentTaken(ctx context.Context, enrollment, exceptID string) (bool, error)

	// Update applies column updates and returns the stored row.
	Update(ctx context.Context, id string, fields map[string]any) (*technocratModel.Technocrat, error)

	// Delete removes a technocrat and its event assignments.
	Delete(ctx context.Context, id string) error

	// ListByTeam returns a team's technocrats in creation order.
	ListByTeam(ctx context.Context, teamID string) ([]technocratModel.Technocrat, error)

	// ListAll returns every technocrat in creation order.
	ListAll(ctx context.Context) ([]technocratModel.Technocrat, error)

	// CountInTeam counts how many of ids are technocrats on teamID.
	CountInTeam(ctx context.Context, teamID string, ids []string) (int64, error)

	// Assignments returns assigned events keyed by technocrat id.
	Assignments(ctx context.Context, technocratIDs []string) (map[string][]technocratModel.AssignedEvent, error)

	// ReplaceAssignments sets the technocrat's assigned events to exactly eventIDs.
	ReplaceAssignments(ctx context.Context, technocratID string, eventIDs []string) error

	// RemoveAssignment deletes one assignment; a missing one is not an error.
	RemoveAssignment(ctx context.Context, technocratID, eventID string) error

	// DeleteAssignmentsForEvent removes every assignment to an event.
	DeleteAssignmentsForEvent(ctx context.Context, eventID string) error

	// SetIconFlag clears the icon flag across the team, then sets it on technocratID.
	SetIconFlag(ctx context.Context, teamID, technocratID string) error
}

type repository struct {
	db     *gorm.DB
	logger *zap.SugaredLogger
}

// New creates a new technocrat repository instance.
func New(db *gorm.DB, logger *zap.SugaredLogger) Repository {
	return &repository{db: db, logger: logger}
}

// Create inserts a new technocrat.
func (r *repository) Create(ctx context.Context, tc *technocratModel.Technocrat) error {
	now := time.Now()
	tc.CreatedAt = now
	tc.UpdatedAt = now

	if err := r.db.WithContext(ctx).Create(tc).Error; err != nil {
		if dberr.IsDuplicateKey(err) {
			return technocratModel.ErrEnrollmentExists
		}
		return err
	}

	r.logger.Debugw("technocrat created", "technocrat_id", tc.ID, "team_id", tc.TeamID)
	return nil
}

// GetByID finds a technocrat by id.
func (r *repository) GetByID(ctx context.Context, id string) (*technocratModel.Technocrat, error) {
	var tc technocratModel.Technocrat
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&tc).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, technocratModel.ErrTechnocratNotFound
		}
		return nil, err
	}
	return &tc, nil
}

// EnrollmentTaken reports whether another technocrat uses the enrollment number.
func (r *repository) EnrollmentTaken(ctx context.Context, enrollment, exceptID string) (bool, error) {
	var count int64
	q := r.db.WithContext(ctx).
		Model(&technocratModel.Technocrat{}).
		Where("enrollment_number = ?", technocratModel.NormalizeEnrollment(enrollment))
	if exceptID != "" {
		q = q.Where("id <> ?", exceptID)
	}
	if err := q.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// Update applies column updates and returns the stored row.
func (r *repository) Update(ctx context.Context, id string, fields map[string]any) (*technocratModel.Technocrat, error) {
	fields["updated_at"] = time.Now()
	res := r.db.WithContext(ctx).
		Model(&technocratModel.Technocrat{}).
		Where("id = ?", id).
		UpdateColumns(fields)
	if res.Error != nil {
		if dberr.IsDuplicateKey(res.Error) {
			return nil, technocratModel.ErrEnrollmentExists
		}
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, technocratModel.ErrTechnocratNotFound
	}
	return r.GetByID(ctx, id)
}

// Delete removes a technocrat and its event assignments.
func (r *repository) Delete(ctx context.Context, id string) error {
	if err := r.db.WithContext(ctx).
		Where("technocrat_id = ?", id).
		Delete(&technocratModel.TechnocratEvent{}).Error; err != nil {
		return err
	}

	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&technocratModel.Technocrat{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return technocratModel.ErrTechnocratNotFound
	}
	return nil
}

// ListByTeam returns a team's technocrats in creation order.
func (r *repository) ListByTeam(ctx context.Context, teamID string) ([]technocratModel.Technocrat, error) {
	return r.list(r.db.WithContext(ctx).Where("team_id = ?", teamID))
}

// ListAll returns every technocrat in creation order.
func (r *repository) ListAll(ctx context.Context) ([]technocratModel.Technocrat, error) {
	return r.list(r.db.WithContext(ctx))
}

func (r *repository) list(q *gorm.DB) ([]technocratModel.Technocrat, error) {
	var out []technocratModel.Technocrat
	if err := q.Order("created_at ASC, id ASC").Find(&out).Error; err != nil {
		return nil, err
	}
	if out == nil {
		return []technocratModel.Technocrat{}, nil
	}
	return out, nil
}

// CountInTeam counts how many of ids are technocrats on teamID.
func (r *repository) CountInTeam(ctx context.Context, teamID string, ids []string) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	var count int64
	err := r.db.WithContext(ctx).
		Model(&technocratModel.Technocrat{}).
		Where("team_id = ? AND id IN ?", teamID, ids).
		Count(&count).Error
	return count, err
}

// Assignments returns assigned events keyed by technocrat id.
func (r *repository) Assignments(ctx context.Context, technocratIDs []string) (map[string][]technocratModel.AssignedEvent, error) {
	out := make(map[string][]technocratModel.AssignedEvent, len(technocratIDs))
	if len(technocratIDs) == 0 {
		return out, nil
	}

	var rows []technocratModel.Assignment
	err := r.db.WithContext(ctx).
		Table("technocrat_events AS te").
		Select("te.technocrat_id, e.id AS event_id, e.event_name, e.event_type").
		Joins("JOIN events e ON e.id = te.event_id").
		Where("te.technocrat_id IN ?", technocratIDs).
		Order("te.created_at ASC, e.event_name ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	for _, row := range rows {
		out[row.TechnocratID] = append(out[row.TechnocratID], technocratModel.AssignedEvent{
			ID:        row.EventID,
			EventName: row.EventName,
			EventType: row.EventType,
		})
	}
	return out, nil
}

// ReplaceAssignments sets the technocrat's assigned events to exactly eventIDs.
// Callers run it inside a transaction.
func (r *repository) ReplaceAssignments(ctx context.Context, technocratID string, eventIDs []string) error {
	if err := r.db.WithContext(ctx).
		Where("technocrat_id = ?", technocratID).
		Delete(&technocratModel.TechnocratEvent{}).Error; err != nil {
		return err
	}
	if len(eventIDs) == 0 {
		return nil
	}

	now := time.Now()
	rows := make([]technocratModel.TechnocratEvent, 0, len(eventIDs))
	for i, id := range eventIDs {
		rows = append(rows, technocratModel.TechnocratEvent{
			TechnocratID: technocratID,
			EventID:      id,
			CreatedAt:    now.Add(time.Duration(i) * time.Microsecond),
		})
	}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&rows).Error
}

// RemoveAssignment deletes one assignment; a missing one is not an error.
func (r *repository) RemoveAssignment(ctx context.Context, technocratID, eventID string) error {
	return r.db.WithContext(ctx).
		Where("technocrat_id = ? AND event_id = ?", technocratID, eventID).
		Delete(&technocratModel.TechnocratEvent{}).Error
}

// DeleteAssignmentsForEvent removes every assignment to an event.
func (r *repository) DeleteAssignmentsForEvent(ctx context.Context, eventID string) error {
	return r.db.WithContext(ctx).
		Where("event_id = ?", eventID).
		Delete(&technocratModel.TechnocratEvent{}).Error
}

// SetIconFlag clears the icon flag across the team, then sets it on technocratID.
// The clear must precede the set: the schema allows one flagged row per team.
func (r *repository) SetIconFlag(ctx context.Context, teamID, technocratID string) error {
	now := time.Now()
	if err := r.db.WithContext(ctx).
		Model(&technocratModel.Technocrat{}).
		Where("team_id = ? AND is_icon_player = ?", teamID, true).
		UpdateColumns(map[string]any{"is_icon_player": false, "updated_at": now}).Error; err != nil {
		return err
	}

	res := r.db.WithContext(ctx).
		Model(&technocratModel.Technocrat{}).
		Where("id = ? AND team_id = ?", technocratID, teamID).
		UpdateColumns(map[string]any{"is_icon_player": true, "updated_at": now})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return technocratModel.ErrTechnocratNotFound
	}
	return nil
}
