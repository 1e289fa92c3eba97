// Package model provides domain models and DTOs for the auth module.
package model

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/pixelpirates/leaderboard/internal/access"
)

// Account is a login identity. Owners reference their team; coordinators do not.
// Role never changes after creation.
type Account struct {
	ID           string      `gorm:"primaryKey;column:id;type:varchar(36)" json:"id"`
	Name         string      `gorm:"column:name;type:varchar(255);not null" json:"name"`
	Email        string      `gorm:"column:email;type:varchar(255);not null;uniqueIndex:idx_accounts_email" json:"email"`
	PasswordHash string      `gorm:"column:password_hash;type:varchar(255);not null" json:"-"`
	Role         access.Role `gorm:"column:role;type:varchar(16);not null;<-:create" json:"role"`
	TeamID       *string     `gorm:"column:team_id;type:varchar(36)" json:"teamId,omitempty"`
	CreatedAt    time.Time   `gorm:"column:created_at;not null" json:"createdAt"`
	UpdatedAt    time.Time   `gorm:"column:updated_at;not null" json:"-"`
}

// TableName specifies the table name for GORM.
func (Account) TableName() string {
	return "accounts"
}

// BeforeCreate assigns an id and normalizes the email.
func (a *Account) BeforeCreate(tx *gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	a.Email = NormalizeEmail(a.Email)
	return nil
}

// Actor converts the account into the authenticated caller.
func (a *Account) Actor() access.Actor {
	actor := access.Actor{
		ID:    a.ID,
		Name:  a.Name,
		Email: a.Email,
		Role:  a.Role,
	}
	if a.TeamID != nil {
		actor.TeamID = *a.TeamID
	}
	return actor
}

// NormalizeEmail returns the stored form of an email address.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
