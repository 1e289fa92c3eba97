package model

import "github.com/pixelpirates/leaderboard/internal/apperr"

var (
	// ErrTeamNotFound indicates that the requested team does not exist.
	ErrTeamNotFound = apperr.New(apperr.KindNotFound, "Team not found")
	// ErrTeamCodeExists indicates that another team already uses the code.
	ErrTeamCodeExists = apperr.New(apperr.KindConflict, "Team code already exists")
	// ErrInvalidTeamName indicates an empty team name.
	ErrInvalidTeamName = apperr.Validation("teamName cannot be empty")
	// ErrInvalidTeamCode indicates an empty team code.
	ErrInvalidTeamCode = apperr.Validation("teamCode cannot be empty")
	// ErrInvalidSortBy indicates an unknown leaderboard ordering.
	ErrInvalidSortBy = apperr.Validation("sortBy must be one of: score, name")
	// ErrNothingToUpdate indicates an edit request without any field set.
	ErrNothingToUpdate = apperr.Validation("Provide teamName or ownerContact to update")
)
