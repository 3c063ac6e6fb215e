package domain

// UserRole defines the role a user holds within their organization.
type UserRole string

const (
	RoleAdmin    UserRole = "ADMIN"
	RoleVerifier UserRole = "VERIFIER"
	RoleSales    UserRole = "SALES"
)

// Valid reports whether r is a known role.
func (r UserRole) Valid() bool {
	switch r {
	case RoleAdmin, RoleVerifier, RoleSales:
		return true
	}
	return false
}

// CanVerifyPayments reports whether the role may move a payment out of PENDING.
func (r UserRole) CanVerifyPayments() bool {
	return r == RoleAdmin || r == RoleVerifier
}

// User is an employee of an organization.
type User struct {
	UserID         string   `json:"userID"`
	OrganizationID string   `json:"organizationID"`
	TeamID         *string  `json:"teamID,omitempty"`
	FullName       string   `json:"fullName"`
	Email          string   `json:"email"`
	PasswordHash   string   `json:"-"`
	Role           UserRole `json:"role"`
	AuditFields
}
