package model

// PointsInput carries optional point values so that an omitted position can
// be told apart from an explicit zero.
type PointsInput struct {
	First  *int `json:"first" binding:"omitempty,min=0"`
	Second *int `json:"second" binding:"omitempty,min=0"`
	Third  *int `json:"third" binding:"omitempty,min=0"`
}

// Complete reports whether every position has a value.
func (p *PointsInput) Complete() bool {
	return p != nil && p.First != nil && p.Second != nil && p.Third != nil
}

// CreateEventRequest is the body of POST /api/coordinator/events.
type CreateEventRequest struct {
	EventName string       `json:"eventName" binding:"required,max=255"`
	EventType Type         `json:"eventType" binding:"required"`
	Points    *PointsInput `json:"points"`
}

// UpdateEventRequest is the body of PUT /api/coordinator/events/:eventId.
// Nil fields are left unchanged; point values may be changed individually.
type UpdateEventRequest struct {
	EventName *string      `json:"eventName" binding:"omitempty,max=255"`
	EventType *Type        `json:"eventType"`
	Points    *PointsInput `json:"points"`
}
