package dto

// PermissionsResponse mirrors the membership permission flags.
type PermissionsResponse struct {
	CanCreateQuotes  bool `json:"can_create_quotes"`
	CanEditOwnQuotes bool `json:"can_edit_own_quotes"`
	CanEditAllQuotes bool `json:"can_edit_all_quotes"`
	CanEditCompany   bool `json:"can_edit_company"`
}

// MembershipResponse is the caller's membership within the session company.
type MembershipResponse struct {
	ID          string              `json:"id"`
	CompanyID   string              `json:"company_id"`
	UserID      string              `json:"user_id"`
	Role        string              `json:"role"`
	Permissions PermissionsResponse `json:"permissions"`
}

// SessionResponse is the resolved session returned by /api/me: identity,
// company and membership (both null while the user has no company), and the
// two authority flags the UI gates on.
type SessionResponse struct {
	User         UserResponse        `json:"user"`
	Company      *CompanyResponse    `json:"company"`
	Membership   *MembershipResponse `json:"membership"`
	IsAdmin      bool                `json:"is_admin"`
	IsSuperAdmin bool                `json:"is_super_admin"`
}
