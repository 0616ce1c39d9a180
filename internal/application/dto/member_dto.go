package dto

import "time"

// InviteMemberRequest input for inviting a user into the session company.
type InviteMemberRequest struct {
	Email string `json:"email"`
	Role  string `json:"role"`
}

// UpdateMemberRoleRequest input for changing a member's role.
type UpdateMemberRoleRequest struct {
	Role string `json:"role"`
}

// MemberResponse one row of the user management screen: membership plus the
// resolved email.
type MemberResponse struct {
	ID          string              `json:"id"`
	UserID      string              `json:"user_id"`
	Email       string              `json:"email"`
	Role        string              `json:"role"`
	Permissions PermissionsResponse `json:"permissions"`
	JoinedAt    time.Time           `json:"joined_at"`
}

// MemberListResponse members of the session company.
type MemberListResponse struct {
	Items []MemberResponse `json:"items"`
}
