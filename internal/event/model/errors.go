package model

import "github.com/pixelpirates/leaderboard/internal/apperr"

var (
	// ErrEventNotFound indicates that the requested event does not exist.
	ErrEventNotFound = apperr.New(apperr.KindNotFound, "Event not found")
	// ErrEventHasResults guards deletion of an event that results reference.
	ErrEventHasResults = apperr.New(apperr.KindConflict, "Cannot delete event with existing results")
	// ErrInvalidEventType indicates a type other than Solo, Duet or Group.
	ErrInvalidEventType = apperr.Validation("eventType must be one of: Solo, Duet, Group")
	// ErrMissingPoints indicates a points table without every position.
	ErrMissingPoints = apperr.Validation("Please provide points for all positions")
	// ErrInvalidEventName indicates an empty event name.
	ErrInvalidEventName = apperr.Validation("eventName cannot be empty")
)
