// Package model provides domain models and DTOs for the event module.
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/pixelpirates/leaderboard/internal/scoring"
)

// Type is the participation format of an event.
type Type string

// Event types.
const (
	TypeSolo  Type = "Solo"
	TypeDuet  Type = "Duet"
	TypeGroup Type = "Group"
)

// Valid reports whether t is a known event type.
func (t Type) Valid() bool {
	switch t {
	case TypeSolo, TypeDuet, TypeGroup:
		return true
	default:
		return false
	}
}

// Event is a competition event with its points table.
type Event struct {
	ID        string              `gorm:"primaryKey;column:id;type:varchar(36)" json:"id"`
	EventName string              `gorm:"column:event_name;type:varchar(255);not null" json:"eventName"`
	EventType Type                `gorm:"column:event_type;type:varchar(16);not null" json:"eventType"`
	Points    scoring.PointsTable `gorm:"embedded;embeddedPrefix:points_" json:"points"`
	CreatedAt time.Time           `gorm:"column:created_at;not null" json:"createdAt"`
	UpdatedAt time.Time           `gorm:"column:updated_at;not null" json:"updatedAt"`
}

// TableName specifies the table name for GORM.
func (Event) TableName() string {
	return "events"
}

// BeforeCreate assigns an id.
func (e *Event) BeforeCreate(tx *gorm.DB) error {
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	return nil
}

// BeforeUpdate updates the UpdatedAt timestamp before saving.
func (e *Event) BeforeUpdate(tx *gorm.DB) error {
	e.UpdatedAt = time.Now()
	return nil
}
