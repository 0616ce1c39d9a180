// Package session resolves an authenticated identity into the state every
// tenant-scoped operation needs: the company, the membership with its
// permission flags, and the super-admin flag. The session is re-derived on
// each request from the user id in the token; nothing is cached between
// requests, so a role change or sign-out takes effect immediately.
package session

import (
	"context"

	"github.com/quotehub/quote-api/internal/domain"
	"github.com/quotehub/quote-api/internal/domain/entity"
	"github.com/quotehub/quote-api/internal/domain/repository"
	"github.com/quotehub/quote-api/pkg/logger"
)

// Session is the resolved per-request state. Company and Membership are nil
// until the user completes the company setup flow.
type Session struct {
	User         *entity.User
	Company      *entity.Company
	Membership   *entity.CompanyUser
	IsSuperAdmin bool
}

// HasCompany reports whether the user belongs to a company.
func (s *Session) HasCompany() bool {
	return s != nil && s.Company != nil && s.Membership != nil
}

// IsAdmin reports whether the membership carries the admin role.
func (s *Session) IsAdmin() bool {
	return s != nil && s.Membership.IsAdmin()
}

// Resolver loads sessions from the persistence ports.
type Resolver struct {
	users       repository.UserRepository
	memberships repository.CompanyUserRepository
	admins      repository.AdminUserRepository
	log         *logger.Logger
}

// NewResolver builds the resolver.
func NewResolver(
	users repository.UserRepository,
	memberships repository.CompanyUserRepository,
	admins repository.AdminUserRepository,
	log *logger.Logger,
) *Resolver {
	return &Resolver{users: users, memberships: memberships, admins: admins, log: log}
}

// Resolve maps a user id to its session. The identity must exist
// (ErrUserNotFound otherwise). The membership and super-admin lookups fail
// open: a lookup error is logged and leaves the corresponding state unset,
// which denies access to company-scoped destinations without blocking the
// request itself.
func (r *Resolver) Resolve(ctx context.Context, userID string) (*Session, error) {
	user, err := r.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}

	s := &Session{User: user}

	membership, company, err := r.memberships.GetByUserWithCompany(ctx, userID)
	if err != nil {
		r.log.Warn().Err(err).Str("user_id", userID).Msg("membership lookup failed, resolving without company")
	} else if membership != nil {
		s.Membership = membership
		s.Company = company
	}

	admin, err := r.admins.GetByUser(ctx, userID)
	if err != nil {
		r.log.Warn().Err(err).Str("user_id", userID).Msg("admin lookup failed, resolving without super-admin")
	} else if admin != nil {
		s.IsSuperAdmin = true
	}

	return s, nil
}
