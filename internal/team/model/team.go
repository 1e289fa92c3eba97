package model

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Team is a competing team. TotalScore is the running sum of its results'
// awarded points; Rank is derived from TotalScore by the ranking pass.
type Team struct {
	ID           string    `gorm:"primaryKey;column:id;type:varchar(36)" json:"id"`
	TeamName     string    `gorm:"column:team_name;type:varchar(255);not null" json:"teamName"`
	TeamCode     string    `gorm:"column:team_code;type:varchar(64);not null;uniqueIndex:idx_teams_team_code" json:"teamCode"`
	OwnerID      *string   `gorm:"column:owner_id;type:varchar(36)" json:"ownerId,omitempty"`
	OwnerName    string    `gorm:"column:owner_name;type:varchar(255);not null;default:''" json:"ownerName"`
	OwnerEmail   string    `gorm:"column:owner_email;type:varchar(255);not null;default:''" json:"ownerEmail"`
	OwnerContact string    `gorm:"column:owner_contact;type:varchar(32);not null;default:''" json:"ownerContact"`
	IconPlayerID *string   `gorm:"column:icon_player_id;type:varchar(36)" json:"iconPlayerId,omitempty"`
	TotalScore   int       `gorm:"column:total_score;not null;default:0" json:"totalScore"`
	Rank         int       `gorm:"column:rank;not null;default:0" json:"rank"`
	CreatedAt    time.Time `gorm:"column:created_at;not null" json:"createdAt"`
	UpdatedAt    time.Time `gorm:"column:updated_at;not null" json:"updatedAt"`
}

// TableName specifies the table name for GORM.
func (Team) TableName() string {
	return "teams"
}

// BeforeCreate assigns an id and normalizes the team code.
func (t *Team) BeforeCreate(tx *gorm.DB) error {
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	t.TeamCode = NormalizeCode(t.TeamCode)
	return nil
}

// BeforeUpdate updates the UpdatedAt timestamp before saving.
func (t *Team) BeforeUpdate(tx *gorm.DB) error {
	t.UpdatedAt = time.Now()
	return nil
}

// NormalizeCode returns the stored form of a team code.
func NormalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}
