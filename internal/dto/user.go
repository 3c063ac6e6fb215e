package dto

import (
	"time"

	"github.com/SscSPs/sales_crm_app/internal/core/domain"
)

// CreateUserRequest defines the data needed to add an employee to the organization.
// When Password is empty a temporary password is generated and returned once.
type CreateUserRequest struct {
	FullName string          `json:"fullName" binding:"required"`
	Email    string          `json:"email" binding:"required,email"`
	Password string          `json:"password" binding:"omitempty,min=8"`
	Role     domain.UserRole `json:"role" binding:"required,oneof=ADMIN VERIFIER SALES"`
	TeamID   *string         `json:"teamID"`
}

// UpdateUserRequest changes a user's profile. Omitted fields are kept.
type UpdateUserRequest struct {
	FullName *string          `json:"fullName" binding:"omitempty,min=1"`
	Role     *domain.UserRole `json:"role" binding:"omitempty,oneof=ADMIN VERIFIER SALES"`
}

// SwitchUserTeamRequest moves a user to another team, or out of any team when TeamID is null.
type SwitchUserTeamRequest struct {
	TeamID *string `json:"teamID"`
}

// ListUsersParams defines query parameters for listing users.
type ListUsersParams struct {
	Limit  int `form:"limit,default=20" binding:"min=1,max=100"`
	Offset int `form:"offset,default=0" binding:"min=0"`
}

// UserResponse is the public view of a user.
type UserResponse struct {
	UserID         string          `json:"userID"`
	OrganizationID string          `json:"organizationID"`
	TeamID         *string         `json:"teamID,omitempty"`
	FullName       string          `json:"fullName"`
	Email          string          `json:"email"`
	Role           domain.UserRole `json:"role"`
	CreatedAt      time.Time       `json:"createdAt"`
}

// CreateUserResponse carries the generated password, if any.
type CreateUserResponse struct {
	UserResponse
	TemporaryPassword string `json:"temporaryPassword,omitempty"`
}

// ListUsersResponse wraps the list of users.
type ListUsersResponse struct {
	Users []UserResponse `json:"users"`
}

// ToUserResponse converts a domain.User to UserResponse DTO
func ToUserResponse(u domain.User) UserResponse {
	return UserResponse{
		UserID:         u.UserID,
		OrganizationID: u.OrganizationID,
		TeamID:         u.TeamID,
		FullName:       u.FullName,
		Email:          u.Email,
		Role:           u.Role,
		CreatedAt:      u.CreatedAt,
	}
}

// ToListUsersResponse converts a slice of domain.User to ListUsersResponse DTO
func ToListUsersResponse(users []domain.User) ListUsersResponse {
	resp := ListUsersResponse{Users: make([]UserResponse, len(users))}
	for i, u := range users {
		resp.Users[i] = ToUserResponse(u)
	}
	return resp
}
