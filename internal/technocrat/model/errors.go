package model

import "github.com/pixelpirates/leaderboard/internal/apperr"

var (
	// ErrTechnocratNotFound indicates that the requested technocrat does not exist.
	ErrTechnocratNotFound = apperr.New(apperr.KindNotFound, "Technocrat not found")
	// ErrEnrollmentExists indicates a duplicate enrollment number.
	ErrEnrollmentExists = apperr.New(apperr.KindConflict, "Enrollment number already exists")
	// ErrNotTeamMember indicates the technocrat belongs to another team.
	ErrNotTeamMember = apperr.New(apperr.KindAuthorization, "technocrat belongs to another team")
	// ErrNoEvents indicates an assignment request without events.
	ErrNoEvents = apperr.Validation("Please provide at least one event")
	// ErrTooManyEvents indicates more than MaxAssignedEvents events.
	ErrTooManyEvents = apperr.Validation("Maximum 3 events allowed per technocrat")
	// ErrEventNotFound indicates an assignment referencing an unknown event.
	ErrEventNotFound = apperr.New(apperr.KindNotFound, "Some events not found")
	// ErrInvalidEnrollment indicates a blank enrollment number.
	ErrInvalidEnrollment = apperr.Validation("enrollmentNumber cannot be empty")
	// ErrInvalidName indicates a blank technocrat name.
	ErrInvalidName = apperr.Validation("name cannot be empty")
	// ErrNothingToUpdate indicates an edit request without any field set.
	ErrNothingToUpdate = apperr.Validation("Provide at least one field to update")
)
