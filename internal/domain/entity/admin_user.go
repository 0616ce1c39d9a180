package entity

import "time"

// AdminUser marks a user as a platform super-admin. Independent of any
// company membership; presence of a row grants cross-tenant access.
type AdminUser struct {
	ID        string
	UserID    string
	Role      string // super_admin, admin
	CreatedAt time.Time
}
