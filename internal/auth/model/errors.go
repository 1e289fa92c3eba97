package model

import "github.com/pixelpirates/leaderboard/internal/apperr"

var (
	// ErrAccountNotFound indicates that no account has the given id or email.
	ErrAccountNotFound = apperr.New(apperr.KindNotFound, "Account not found")
	// ErrEmailExists indicates a duplicate account email.
	ErrEmailExists = apperr.New(apperr.KindConflict, "Account with this email already exists")
	// ErrInvalidName indicates a blank account name.
	ErrInvalidName = apperr.Validation("name cannot be empty")
	// ErrInvalidCredentials is returned for an unknown email and for a wrong password alike.
	ErrInvalidCredentials = apperr.Public(apperr.KindAuthentication, "Invalid email or password")
	// ErrAccountGone indicates a valid token whose account no longer exists.
	ErrAccountGone = apperr.New(apperr.KindAuthentication, "account no longer exists")
)
