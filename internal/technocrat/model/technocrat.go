// Package model provides domain models and DTOs for the technocrat module.
package model

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MaxAssignedEvents is the most events one technocrat may be assigned.
const MaxAssignedEvents = 3

// Technocrat is a participant belonging to exactly one team.
type Technocrat struct {
	ID               string    `gorm:"primaryKey;column:id;type:varchar(36)" json:"id"`
	Name             string    `gorm:"column:name;type:varchar(255);not null" json:"name"`
	EnrollmentNumber string    `gorm:"column:enrollment_number;type:varchar(64);not null;uniqueIndex:idx_technocrats_enrollment_number" json:"enrollmentNumber"`
	Semester         int       `gorm:"column:semester;not null" json:"semester"`
	MobileNumber     string    `gorm:"column:mobile_number;type:varchar(10);not null" json:"mobileNumber"`
	TeamID           string    `gorm:"column:team_id;type:varchar(36);not null;index:idx_technocrats_team_id" json:"teamId"`
	IsIconPlayer     bool      `gorm:"column:is_icon_player;not null;default:false" json:"isIconPlayer"`
	CreatedAt        time.Time `gorm:"column:created_at;not null" json:"createdAt"`
	UpdatedAt        time.Time `gorm:"column:updated_at;not null" json:"updatedAt"`
}

// TableName specifies the table name for GORM.
func (Technocrat) TableName() string {
	return "technocrats"
}

// BeforeCreate assigns an id and normalizes the enrollment number.
func (t *Technocrat) BeforeCreate(tx *gorm.DB) error {
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	t.EnrollmentNumber = NormalizeEnrollment(t.EnrollmentNumber)
	return nil
}

// BeforeUpdate updates the UpdatedAt timestamp before saving.
func (t *Technocrat) BeforeUpdate(tx *gorm.DB) error {
	t.UpdatedAt = time.Now()
	return nil
}

// NormalizeEnrollment returns the stored form of an enrollment number.
func NormalizeEnrollment(s string) string {
	return strings.ToUpper(strings.TrimSpace(s))
}

// TechnocratEvent assigns a technocrat to an event.
type TechnocratEvent struct {
	TechnocratID string    `gorm:"primaryKey;column:technocrat_id;type:varchar(36)"`
	EventID      string    `gorm:"primaryKey;column:event_id;type:varchar(36);index:idx_technocrat_events_event_id"`
	CreatedAt    time.Time `gorm:"column:created_at;not null"`
}

// TableName specifies the table name for GORM.
func (TechnocratEvent) TableName() string {
	return "technocrat_events"
}
