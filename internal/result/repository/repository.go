// Package repository provides data access layer for result module.
package repository

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/pixelpirates/leaderboard/internal/database/dberr"
	resultModel "github.com/pixelpirates/leaderboard/internal/result/model"
	"github.com/pixelpirates/leaderboard/internal/scoring"
)

// Filter narrows View queries. Empty fields match everything.
type Filter struct {
	ResultID string
	EventID  string
	TeamID   string
}

// Repository defines the interface for result data access operations.
type Repository interface {
	// Create inserts a new result.
	Create(ctx context.Context, result *resultModel.Result) error

	// GetByID finds a result by id.
	GetByID(ctx context.Context, id string) (*resultModel.Result, error)

	// UpdatePlacement writes a result's position and awarded points.
	UpdatePlacement(ctx context.Context, id string, position scoring.Position, points int) error

	// Delete removes a result and its technocrat links.
	Delete(ctx context.Context, id string) error

	// Exists reports whether a result other than exceptID holds the triple.
	Exists(ctx context.Context, eventID, teamID string, position scoring.Position, exceptID string) (bool, error)

	// CountByEvent counts results referencing an event.
	CountByEvent(ctx context.Context, eventID string) (int64, error)

	// SumByTeam returns the total awarded points of a team's results.
	SumByTeam(ctx context.Context, teamID string) (int, error)

	// ReplaceTechnocrats sets the result's technocrat links to exactly ids.
	ReplaceTechnocrats(ctx context.Context, resultID string, ids []string) error

	// DeleteTechnocratLinks removes a technocrat from every result.
	DeleteTechnocratLinks(ctx context.Context, technocratID string) error

	// Views returns matching results with names resolved, newest first.
	Views(ctx context.Context, filter Filter) ([]resultModel.ResultView, error)
}

type repository struct {
	db     *gorm.DB
	logger *zap.SugaredLogger
}

// New creates a new result repository instance.
func New(db *gorm.DB, logger *zap.SugaredLogger) Repository {
	return &repository{db: db, logger: logger}
}

// Create inserts a new result.
func (r *repository) Create(ctx context.Context, result *resultModel.Result) error {
	now := time.Now()
	result.CreatedAt = now
	result.UpdatedAt = now

	if err := r.db.WithContext(ctx).Create(result).Error; err != nil {
		if dberr.IsDuplicateKey(err) {
			return resultModel.ErrDuplicateResult
		}
		return err
	}
	r.logger.Debugw("result created", "result_id", result.ID, "event_id", result.EventID, "team_id", result.TeamID)
	return nil
}

// GetByID finds a result by id.
func (r *repository) GetByID(ctx context.Context, id string) (*resultModel.Result, error) {
	var result resultModel.Result
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&result).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, resultModel.ErrResultNotFound
		}
		return nil, err
	}
	return &result, nil
}

// UpdatePlacement writes a result's position and awarded points.
func (r *repository) UpdatePlacement(ctx context.Context, id string, position scoring.Position, points int) error {
	res := r.db.WithContext(ctx).
		Model(&resultModel.Result{}).
		Where("id = ?", id).
		UpdateColumns(map[string]any{
			"position":       position,
			"points_awarded": points,
			"updated_at":     time.Now(),
		})
	if res.Error != nil {
		if dberr.IsDuplicateKey(res.Error) {
			return resultModel.ErrDuplicateResult
		}
		return res.Error
	}
	if res.RowsAffected == 0 {
		return resultModel.ErrResultNotFound
	}
	return nil
}

// Delete removes a result and its technocrat links.
func (r *repository) Delete(ctx context.Context, id string) error {
	if err := r.db.WithContext(ctx).
		Where("result_id = ?", id).
		Delete(&resultModel.ResultTechnocrat{}).Error; err != nil {
		return err
	}

	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&resultModel.Result{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return resultModel.ErrResultNotFound
	}
	return nil
}

// Exists reports whether a result other than exceptID holds the triple.
func (r *repository) Exists(ctx context.Context, eventID, teamID string, position scoring.Position, exceptID string) (bool, error) {
	var count int64
	q := r.db.WithContext(ctx).
		Model(&resultModel.Result{}).
		Where("event_id = ? AND team_id = ? AND position = ?", eventID, teamID, position)
	if exceptID != "" {
		q = q.Where("id <> ?", exceptID)
	}
	if err := q.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// CountByEvent counts results referencing an event.
func (r *repository) CountByEvent(ctx context.Context, eventID string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&resultModel.Result{}).
		Where("event_id = ?", eventID).
		Count(&count).Error
	return count, err
}

// SumByTeam returns the total awarded points of a team's results.
func (r *repository) SumByTeam(ctx context.Context, teamID string) (int, error) {
	var sum int
	err := r.db.WithContext(ctx).
		Model(&resultModel.Result{}).
		Select("COALESCE(SUM(points_awarded), 0)").
		Where("team_id = ?", teamID).
		Scan(&sum).Error
	return sum, err
}

// ReplaceTechnocrats sets the result's technocrat links to exactly ids.
func (r *repository) ReplaceTechnocrats(ctx context.Context, resultID string, ids []string) error {
	if err := r.db.WithContext(ctx).
		Where("result_id = ?", resultID).
		Delete(&resultModel.ResultTechnocrat{}).Error; err != nil {
		return err
	}
	if len(ids) == 0 {
		return nil
	}

	links := make([]resultModel.ResultTechnocrat, len(ids))
	for i, id := range ids {
		links[i] = resultModel.ResultTechnocrat{ResultID: resultID, TechnocratID: id}
	}
	return r.db.WithContext(ctx).Create(&links).Error
}

// DeleteTechnocratLinks removes a technocrat from every result.
func (r *repository) DeleteTechnocratLinks(ctx context.Context, technocratID string) error {
	return r.db.WithContext(ctx).
		Where("technocrat_id = ?", technocratID).
		Delete(&resultModel.ResultTechnocrat{}).Error
}

type viewRow struct {
	ID            string
	EventID       string
	EventName     string
	EventType     string
	TeamID        string
	TeamName      string
	TeamCode      string
	Position      string
	PointsAwarded int
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

type linkRow struct {
	ResultID         string
	ID               string
	Name             string
	EnrollmentNumber string
}

// Views returns matching results with names resolved, newest first.
func (r *repository) Views(ctx context.Context, filter Filter) ([]resultModel.ResultView, error) {
	q := r.db.WithContext(ctx).
		Table("results AS r").
		Select(`r.id, r.event_id, e.event_name, e.event_type, r.team_id, t.team_name, t.team_code,
			r.position, r.points_awarded, r.created_at, r.updated_at`).
		Joins("JOIN events e ON e.id = r.event_id").
		Joins("JOIN teams t ON t.id = r.team_id")
	if filter.ResultID != "" {
		q = q.Where("r.id = ?", filter.ResultID)
	}
	if filter.EventID != "" {
		q = q.Where("r.event_id = ?", filter.EventID)
	}
	if filter.TeamID != "" {
		q = q.Where("r.team_id = ?", filter.TeamID)
	}

	var rows []viewRow
	if err := q.Order("r.created_at DESC, r.id ASC").Scan(&rows).Error; err != nil {
		return nil, err
	}

	views := make([]resultModel.ResultView, len(rows))
	ids := make([]string, len(rows))
	index := make(map[string]int, len(rows))
	for i, row := range rows {
		views[i] = resultModel.ResultView{
			ID:            row.ID,
			EventID:       row.EventID,
			EventName:     row.EventName,
			EventType:     row.EventType,
			TeamID:        row.TeamID,
			TeamName:      row.TeamName,
			TeamCode:      row.TeamCode,
			Position:      row.Position,
			PointsAwarded: row.PointsAwarded,
			Technocrats:   []resultModel.TechnocratSummary{},
			CreatedAt:     row.CreatedAt,
			UpdatedAt:     row.UpdatedAt,
		}
		ids[i] = row.ID
		index[row.ID] = i
	}
	if len(ids) == 0 {
		return views, nil
	}

	var links []linkRow
	err := r.db.WithContext(ctx).
		Table("result_technocrats AS rt").
		Select("rt.result_id, tc.id, tc.name, tc.enrollment_number").
		Joins("JOIN technocrats tc ON tc.id = rt.technocrat_id").
		Where("rt.result_id IN ?", ids).
		Order("tc.name ASC").
		Scan(&links).Error
	if err != nil {
		return nil, err
	}
	for _, l := range links {
		i := index[l.ResultID]
		views[i].Technocrats = append(views[i].Technocrats, resultModel.TechnocratSummary{
			ID:               l.ID,
			Name:             l.Name,
			EnrollmentNumber: l.EnrollmentNumber,
		})
	}
	return views, nil
}
