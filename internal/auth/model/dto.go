package model

// RegisterOwnerRequest is the body of POST /api/owner/register.
type RegisterOwnerRequest struct {
	Name         string `json:"name" binding:"required,max=255"`
	Email        string `json:"email" binding:"required,email,max=255"`
	Password     string `json:"password" binding:"required,min=6,max=72"`
	TeamName     string `json:"teamName" binding:"required,max=255"`
	TeamCode     string `json:"teamCode" binding:"required,max=64"`
	OwnerContact string `json:"ownerContact" binding:"required,len=10,numeric"`
}

// RegisterCoordinatorRequest is the body of POST /api/coordinator/register.
type RegisterCoordinatorRequest struct {
	Name     string `json:"name" binding:"required,max=255"`
	Email    string `json:"email" binding:"required,email,max=255"`
	Password string `json:"password" binding:"required,min=6,max=72"`
}

// LoginRequest is the body of both login endpoints.
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// AccountView is the public part of an account.
type AccountView struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// TeamSummary identifies the team an owner manages.
type TeamSummary struct {
	ID         string `json:"id"`
	TeamName   string `json:"teamName"`
	TeamCode   string `json:"teamCode"`
	TotalScore int    `json:"totalScore"`
	Rank       int    `json:"rank"`
}

// Session is the result of registration or login.
type Session struct {
	Token   string       `json:"token"`
	Account AccountView  `json:"-"`
	Team    *TeamSummary `json:"team,omitempty"`
}

// View returns the public part of a.
func (a *Account) View() AccountView {
	return AccountView{ID: a.ID, Name: a.Name, Email: a.Email, Role: string(a.Role)}
}
