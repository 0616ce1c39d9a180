package entity

import "time"

// Membership roles.
const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// Permissions are the per-member feature flags, stored as JSONB on
// company_users. They are derived from the role on every write path;
// see permission.ForRole.
type Permissions struct {
	CanCreateQuotes  bool `json:"can_create_quotes"`
	CanEditOwnQuotes bool `json:"can_edit_own_quotes"`
	CanEditAllQuotes bool `json:"can_edit_all_quotes"`
	CanEditCompany   bool `json:"can_edit_company"`
}

// CompanyUser binds one user to one company with a role and permission flags.
// At most one membership per (company_id, user_id) pair.
type CompanyUser struct {
	ID          string
	CompanyID   string
	UserID      string
	Role        string // admin, user
	Permissions Permissions
	CreatedAt   time.Time
}

// IsAdmin reports whether the membership carries the admin role.
func (cu *CompanyUser) IsAdmin() bool {
	return cu != nil && cu.Role == RoleAdmin
}
