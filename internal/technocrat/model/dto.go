package model

// AssignedEvent is an event a technocrat is registered for.
type AssignedEvent struct {
	ID        string `json:"id"`
	EventName string `json:"eventName"`
	EventType string `json:"eventType"`
}

// TechnocratView is a technocrat with its assigned events.
type TechnocratView struct {
	Technocrat
	TeamName       string          `json:"teamName,omitempty"`
	AssignedEvents []AssignedEvent `json:"assignedEvents"`
}

// AddTechnocratRequest is the body of POST /api/owner/technocrat.
type AddTechnocratRequest struct {
	Name             string `json:"name" binding:"required,max=255"`
	EnrollmentNumber string `json:"enrollmentNumber" binding:"required,max=64"`
	Semester         int    `json:"semester" binding:"required,min=1,max=8"`
	MobileNumber     string `json:"mobileNumber" binding:"required,len=10,numeric"`
}

// EditTechnocratRequest is the body of PUT /api/owner/technocrat/:technocratId.
// Nil fields are left unchanged.
type EditTechnocratRequest struct {
	Name             *string `json:"name" binding:"omitempty,max=255"`
	EnrollmentNumber *string `json:"enrollmentNumber" binding:"omitempty,max=64"`
	Semester         *int    `json:"semester" binding:"omitempty,min=1,max=8"`
	MobileNumber     *string `json:"mobileNumber" binding:"omitempty,len=10,numeric"`
}

// IsEmpty reports whether no field is set.
func (r EditTechnocratRequest) IsEmpty() bool {
	return r.Name == nil && r.EnrollmentNumber == nil && r.Semester == nil && r.MobileNumber == nil
}

// AssignEventsRequest is the body of POST /api/owner/assign-events.
type AssignEventsRequest struct {
	TechnocratID string   `json:"technocratId" binding:"required"`
	EventIDs     []string `json:"eventIds"`
}

// SetIconPlayerRequest is the body of POST /api/owner/set-icon-player.
type SetIconPlayerRequest struct {
	TechnocratID string `json:"technocratId" binding:"required"`
}

// Assignment is one technocrat-event row joined with its event.
type Assignment struct {
	TechnocratID string
	EventID      string
	EventName    string
	EventType    string
}
