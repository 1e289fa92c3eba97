// Package model provides data transfer objects for statistics module.
package model

import resultModel "github.com/pixelpirates/leaderboard/internal/result/model"

// Summary holds the row counts of the competition.
type Summary struct {
	TotalTeams       int64 `json:"totalTeams" gorm:"column:total_teams"`
	TotalTechnocrats int64 `json:"totalTechnocrats" gorm:"column:total_technocrats"`
	TotalEvents      int64 `json:"totalEvents" gorm:"column:total_events"`
	TotalResults     int64 `json:"totalResults" gorm:"column:total_results"`
}

// EventParticipation counts the results recorded for one event.
type EventParticipation struct {
	EventID            string `json:"eventId" gorm:"column:event_id"`
	EventName          string `json:"eventName" gorm:"column:event_name"`
	EventType          string `json:"eventType" gorm:"column:event_type"`
	ParticipatingTeams int    `json:"participatingTeams" gorm:"column:participating_teams"`
	Results            int    `json:"results" gorm:"column:results"`
}

// ParticipationResponse is the body of GET /api/coordinator/participation-details.
type ParticipationResponse struct {
	Summary              Summary              `json:"summary"`
	ParticipationByEvent []EventParticipation `json:"participationByEvent"`
}

// EventScore is a team's awarded points in one event.
type EventScore struct {
	EventName string `gorm:"column:event_name"`
	Points    int    `gorm:"column:points"`
}

// TeamScoresResponse is the body of GET /api/owner/team-scores.
type TeamScoresResponse struct {
	EventScores map[string]int `json:"eventScores"`
	TotalScore  int            `json:"totalScore"`
}

// ResultsSummaryResponse is the body of GET /api/coordinator/results-summary.
type ResultsSummaryResponse struct {
	EventResultsSummary map[string][]resultModel.ResultView `json:"eventResultsSummary"`
	TotalResults        int                                 `json:"totalResults"`
}
