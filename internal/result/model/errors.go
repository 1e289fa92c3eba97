package model

import "github.com/pixelpirates/leaderboard/internal/apperr"

var (
	// ErrResultNotFound indicates that the requested result does not exist.
	ErrResultNotFound = apperr.New(apperr.KindNotFound, "Result not found")
	// ErrDuplicateResult indicates the (event, team, position) triple is taken.
	ErrDuplicateResult = apperr.New(apperr.KindConflict, "Result for this team and position already exists")
	// ErrTechnocratNotInTeam indicates a linked technocrat that is unknown or on another team.
	ErrTechnocratNotInTeam = apperr.Validation("All technocrats must belong to the result's team")
	// ErrNothingToUpdate indicates an edit request without any field set.
	ErrNothingToUpdate = apperr.Validation("Provide position or technocratIds to update")
)
