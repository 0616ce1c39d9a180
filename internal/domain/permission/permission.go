// Package permission holds the pure predicates that gate every mutating
// operation. They operate on already-resolved session state and never touch
// the database.
package permission

import "github.com/quotehub/quote-api/internal/domain/entity"

// ForRole derives the permission flags from a role. The role is the single
// source of truth: every write path (setup, invite, role change) goes through
// here, so flags cannot drift from the role.
func ForRole(role string) entity.Permissions {
	admin := role == entity.RoleAdmin
	return entity.Permissions{
		CanCreateQuotes:  true,
		CanEditOwnQuotes: true,
		CanEditAllQuotes: admin,
		CanEditCompany:   admin,
	}
}

// CanCreateQuote reports whether the membership may create quotes.
func CanCreateQuote(m *entity.CompanyUser) bool {
	return m != nil && m.Permissions.CanCreateQuotes
}

// CanEditQuote reports whether the membership may edit the given quote:
// either it may edit all quotes, or it may edit its own and the quote was
// created by userID.
func CanEditQuote(m *entity.CompanyUser, userID string, q *entity.Quote) bool {
	if m == nil || q == nil {
		return false
	}
	if m.Permissions.CanEditAllQuotes {
		return true
	}
	return m.Permissions.CanEditOwnQuotes && q.CreatedBy == userID
}

// CanDeleteQuote mirrors edit authority.
func CanDeleteQuote(m *entity.CompanyUser, userID string, q *entity.Quote) bool {
	return CanEditQuote(m, userID, q)
}

// CanEditCompany gates the company settings form on the admin role.
func CanEditCompany(m *entity.CompanyUser) bool {
	return m.IsAdmin()
}
