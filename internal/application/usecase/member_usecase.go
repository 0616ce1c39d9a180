package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/quotehub/quote-api/internal/application/dto"
	"github.com/quotehub/quote-api/internal/application/session"
	"github.com/quotehub/quote-api/internal/domain"
	"github.com/quotehub/quote-api/internal/domain/entity"
	"github.com/quotehub/quote-api/internal/domain/permission"
	"github.com/quotehub/quote-api/internal/domain/repository"
)

// MemberUseCase user management of the session company: list members,
// invite by email, change roles, remove. Every operation requires the
// admin role.
type MemberUseCase struct {
	memberships repository.CompanyUserRepository
	users       repository.UserRepository
}

// NewMemberUseCase builds the use case.
func NewMemberUseCase(memberships repository.CompanyUserRepository, users repository.UserRepository) *MemberUseCase {
	return &MemberUseCase{memberships: memberships, users: users}
}

// List returns the company's members with their emails resolved.
func (uc *MemberUseCase) List(ctx context.Context, sess *session.Session) (*dto.MemberListResponse, error) {
	if !sess.IsAdmin() {
		return nil, domain.ErrForbidden
	}
	memberships, err := uc.memberships.ListByCompany(ctx, sess.Company.ID)
	if err != nil {
		return nil, err
	}

	ids := make([]string, 0, len(memberships))
	for _, m := range memberships {
		ids = append(ids, m.UserID)
	}
	users, err := uc.users.GetByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	items := make([]dto.MemberResponse, 0, len(memberships))
	for _, m := range memberships {
		email := ""
		if u := users[m.UserID]; u != nil {
			email = u.Email
		}
		items = append(items, dto.MemberResponse{
			ID:          m.ID,
			UserID:      m.UserID,
			Email:       email,
			Role:        m.Role,
			Permissions: ToPermissionsResponse(m.Permissions),
			JoinedAt:    m.CreatedAt,
		})
	}
	return &dto.MemberListResponse{Items: items}, nil
}

// Invite adds a user to the company by email. An unknown email gets a fresh
// identity with a random one-time credential (the invite mail with the reset
// link is delivered out of band). Role defaults to "user"; permission flags
// are derived from the role. Inviting an existing member is ErrDuplicate.
func (uc *MemberUseCase) Invite(ctx context.Context, sess *session.Session, in dto.InviteMemberRequest) (*dto.MemberResponse, error) {
	if !sess.IsAdmin() {
		return nil, domain.ErrForbidden
	}
	if in.Email == "" {
		return nil, domain.ErrInvalidInput
	}
	role := in.Role
	if role == "" {
		role = entity.RoleUser
	}
	if !validRole(role) {
		return nil, domain.ErrInvalidInput
	}

	user, err := uc.users.GetByEmail(ctx, in.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		user, err = uc.provisionIdentity(ctx, in.Email)
		if err != nil {
			return nil, err
		}
	} else {
		existing, err := uc.memberships.GetByCompanyAndUser(ctx, sess.Company.ID, user.ID)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return nil, domain.ErrDuplicate
		}
	}

	membership := &entity.CompanyUser{
		ID:          uuid.New().String(),
		CompanyID:   sess.Company.ID,
		UserID:      user.ID,
		Role:        role,
		Permissions: permission.ForRole(role),
		CreatedAt:   time.Now(),
	}
	if err := uc.memberships.Create(ctx, membership); err != nil {
		return nil, err
	}

	return &dto.MemberResponse{
		ID:          membership.ID,
		UserID:      user.ID,
		Email:       user.Email,
		Role:        membership.Role,
		Permissions: ToPermissionsResponse(membership.Permissions),
		JoinedAt:    membership.CreatedAt,
	}, nil
}

// UpdateRole changes a member's role and rewrites the permission flags from
// it, so no other flag combination is reachable through this path.
func (uc *MemberUseCase) UpdateRole(ctx context.Context, sess *session.Session, userID string, in dto.UpdateMemberRoleRequest) (*dto.MemberResponse, error) {
	if !sess.IsAdmin() {
		return nil, domain.ErrForbidden
	}
	if !validRole(in.Role) {
		return nil, domain.ErrInvalidInput
	}
	membership, err := uc.memberships.GetByCompanyAndUser(ctx, sess.Company.ID, userID)
	if err != nil {
		return nil, err
	}
	if membership == nil {
		return nil, domain.ErrNotFound
	}

	perms := permission.ForRole(in.Role)
	if err := uc.memberships.UpdateRole(ctx, sess.Company.ID, userID, in.Role, perms); err != nil {
		return nil, err
	}
	membership.Role = in.Role
	membership.Permissions = perms

	return &dto.MemberResponse{
		ID:          membership.ID,
		UserID:      membership.UserID,
		Role:        membership.Role,
		Permissions: ToPermissionsResponse(membership.Permissions),
		JoinedAt:    membership.CreatedAt,
	}, nil
}

// Remove drops a member from the company.
func (uc *MemberUseCase) Remove(ctx context.Context, sess *session.Session, userID string) error {
	if !sess.IsAdmin() {
		return domain.ErrForbidden
	}
	membership, err := uc.memberships.GetByCompanyAndUser(ctx, sess.Company.ID, userID)
	if err != nil {
		return err
	}
	if membership == nil {
		return domain.ErrNotFound
	}
	return uc.memberships.Delete(ctx, sess.Company.ID, userID)
}

// provisionIdentity creates a user for an invited email. The credential is
// random and unusable until the user resets it.
func (uc *MemberUseCase) provisionIdentity(ctx context.Context, email string) (*entity.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(uuid.New().String()), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	user := &entity.User{
		ID:           uuid.New().String(),
		Email:        email,
		PasswordHash: string(hash),
		Status:       "active",
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.users.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func validRole(role string) bool {
	return role == entity.RoleAdmin || role == entity.RoleUser
}
