// Package model provides domain models and DTOs for the result module.
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/pixelpirates/leaderboard/internal/scoring"
)

// Result records a team's placement in an event. PointsAwarded is fixed from
// the event's points table when the result is created or its position changes.
type Result struct {
	ID            string           `gorm:"primaryKey;column:id;type:varchar(36)" json:"id"`
	EventID       string           `gorm:"column:event_id;type:varchar(36);not null;uniqueIndex:idx_results_event_team_position,priority:1" json:"eventId"`
	TeamID        string           `gorm:"column:team_id;type:varchar(36);not null;uniqueIndex:idx_results_event_team_position,priority:2;index:idx_results_team_id" json:"teamId"`
	Position      scoring.Position `gorm:"column:position;type:varchar(8);not null;uniqueIndex:idx_results_event_team_position,priority:3" json:"position"`
	PointsAwarded int              `gorm:"column:points_awarded;not null" json:"pointsAwarded"`
	CreatedAt     time.Time        `gorm:"column:created_at;not null" json:"createdAt"`
	UpdatedAt     time.Time        `gorm:"column:updated_at;not null" json:"updatedAt"`
}

// TableName specifies the table name for GORM.
func (Result) TableName() string {
	return "results"
}

// BeforeCreate assigns an id.
func (r *Result) BeforeCreate(tx *gorm.DB) error {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	return nil
}

// BeforeUpdate updates the UpdatedAt timestamp before saving.
func (r *Result) BeforeUpdate(tx *gorm.DB) error {
	r.UpdatedAt = time.Now()
	return nil
}

// ResultTechnocrat links a result to a technocrat who earned it.
type ResultTechnocrat struct {
	ResultID     string `gorm:"primaryKey;column:result_id;type:varchar(36)"`
	TechnocratID string `gorm:"primaryKey;column:technocrat_id;type:varchar(36)"`
}

// TableName specifies the table name for GORM.
func (ResultTechnocrat) TableName() string {
	return "result_technocrats"
}
