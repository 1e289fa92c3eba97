// Package scoring holds the pure scoring rules: position lookup, score
// arithmetic and rank derivation. It performs no I/O.
package scoring

import (
	"strings"

	"github.com/pixelpirates/leaderboard/internal/apperr"
)

// Position is a placement outcome in an event.
type Position string

// Recognised positions.
const (
	First  Position = "1st"
	Second Position = "2nd"
	Third  Position = "3rd"
)

// Positions lists the recognised positions in placement order.
var Positions = []Position{First, Second, Third}

var (
	// ErrInvalidPosition indicates a position other than 1st, 2nd or 3rd.
	ErrInvalidPosition = apperr.Validation("Invalid position")
	// ErrNegativePoints indicates a point value below zero.
	ErrNegativePoints = apperr.Validation("Points must be non-negative")
)

// ParsePosition validates s as a position. Surrounding space is ignored.
func ParsePosition(s string) (Position, error) {
	p := Position(strings.TrimSpace(s))
	switch p {
	case First, Second, Third:
		return p, nil
	default:
		return "", ErrInvalidPosition
	}
}

// PointsTable is an event's points by position.
type PointsTable struct {
	First  int `json:"first"`
	Second int `json:"second"`
	Third  int `json:"third"`
}

// Validate checks that every point value is non-negative.
func (t PointsTable) Validate() error {
	if t.First < 0 || t.Second < 0 || t.Third < 0 {
		return ErrNegativePoints
	}
	return nil
}

// PointsFor returns the points configured for p.
func (t PointsTable) PointsFor(p Position) (int, error) {
	switch p {
	case First:
		return t.First, nil
	case Second:
		return t.Second, nil
	case Third:
		return t.Third, nil
	default:
		return 0, ErrInvalidPosition
	}
}

// Delta is the change applied to a running total when a result moves from
// oldPoints to newPoints.
func Delta(oldPoints, newPoints int) int {
	return newPoints - oldPoints
}

// Floor subtracts minus from total without going below zero.
func Floor(total, minus int) int {
	return max(0, total-minus)
}
