// Package model provides domain models and DTOs for the team module.
package model

import (
	"strings"

	technocratModel "github.com/pixelpirates/leaderboard/internal/technocrat/model"
)

// SortBy selects the display order of the leaderboard.
type SortBy string

// Leaderboard orderings.
const (
	SortByScore SortBy = "score"
	SortByName  SortBy = "name"
)

// ParseSortBy validates a sortBy query value. Empty means score.
func ParseSortBy(s string) (SortBy, error) {
	switch SortBy(strings.ToLower(strings.TrimSpace(s))) {
	case "", SortByScore:
		return SortByScore, nil
	case SortByName:
		return SortByName, nil
	default:
		return "", ErrInvalidSortBy
	}
}

// IconPlayer is the summary of a team's icon player shown on the leaderboard.
type IconPlayer struct {
	ID               string `json:"id"`
	Name             string `json:"name"`
	EnrollmentNumber string `json:"enrollmentNumber"`
	Semester         int    `json:"semester"`
}

// LeaderboardEntry is one row of the leaderboard.
type LeaderboardEntry struct {
	Rank         int         `json:"rank"`
	TeamID       string      `json:"teamId"`
	TeamName     string      `json:"teamName"`
	TeamCode     string      `json:"teamCode"`
	OwnerName    string      `json:"ownerName"`
	OwnerContact string      `json:"ownerContact,omitempty"`
	TotalScore   int         `json:"totalScore"`
	IconPlayer   *IconPlayer `json:"iconPlayer"`
}

// UpdateTeamRequest is the body of PUT /api/owner/team-profile.
type UpdateTeamRequest struct {
	TeamName     *string `json:"teamName" binding:"omitempty,max=255"`
	OwnerContact *string `json:"ownerContact" binding:"omitempty,len=10,numeric"`
}

// TeamProfile is a team with its roster.
type TeamProfile struct {
	Team             *Team                            `json:"team"`
	IconPlayer       *IconPlayer                      `json:"iconPlayer"`
	Technocrats      []technocratModel.TechnocratView `json:"technocrats"`
	TechnocratsCount int                              `json:"technocratsCount"`
}

// TeamsResponse is the coordinator's view of every team.
type TeamsResponse struct {
	TotalTeams int                `json:"totalTeams"`
	Teams      []LeaderboardEntry `json:"teams"`
}
