package model

import "time"

// CreateResultRequest is the body of POST /api/coordinator/results.
type CreateResultRequest struct {
	EventID       string   `json:"eventId" binding:"required"`
	TeamID        string   `json:"teamId" binding:"required"`
	Position      string   `json:"position" binding:"required"`
	TechnocratIDs []string `json:"technocratIds"`
}

// UpdateResultRequest is the body of PUT /api/coordinator/results/:resultId.
// A nil TechnocratIDs leaves the links unchanged; an empty slice clears them.
type UpdateResultRequest struct {
	Position      *string  `json:"position"`
	TechnocratIDs []string `json:"technocratIds"`
}

// TechnocratSummary identifies a technocrat linked to a result.
type TechnocratSummary struct {
	ID               string `json:"id"`
	Name             string `json:"name"`
	EnrollmentNumber string `json:"enrollmentNumber"`
}

// ResultView is a result with its event, team and technocrats resolved.
type ResultView struct {
	ID            string              `json:"id"`
	EventID       string              `json:"eventId"`
	EventName     string              `json:"eventName"`
	EventType     string              `json:"eventType"`
	TeamID        string              `json:"teamId"`
	TeamName      string              `json:"teamName"`
	TeamCode      string              `json:"teamCode"`
	Position      string              `json:"position"`
	PointsAwarded int                 `json:"pointsAwarded"`
	Technocrats   []TechnocratSummary `json:"technocrats"`
	CreatedAt     time.Time           `json:"createdAt"`
	UpdatedAt     time.Time           `json:"updatedAt"`
}

// Mutation reports the effect of a scoring operation on the team.
type Mutation struct {
	Result         *ResultView `json:"result,omitempty"`
	TeamTotalScore int         `json:"teamTotalScore"`
	TeamRank       int         `json:"teamRank"`
}
