package postgres

import (
	"context"
	"fmt"

	"github.com/quotehub/quote-api/internal/domain"
	"github.com/quotehub/quote-api/internal/domain/entity"
	"github.com/quotehub/quote-api/internal/domain/repository"
)

var _ repository.CompanyUserRepository = (*CompanyUserRepo)(nil)

// CompanyUserRepo CompanyUserRepository adapter over PostgreSQL (usable with
// pool or tx). The permissions column is JSONB and scans straight into
// entity.Permissions.
type CompanyUserRepo struct {
	q Querier
}

// NewCompanyUserRepository builds the adapter. Pass pool or tx (Querier).
func NewCompanyUserRepository(q Querier) *CompanyUserRepo {
	return &CompanyUserRepo{q: q}
}

// Create persists a new membership.
func (r *CompanyUserRepo) Create(ctx context.Context, m *entity.CompanyUser) error {
	query := `
		INSERT INTO company_users (id, company_id, user_id, role, permissions, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(ctx, query,
		m.ID, m.CompanyID, m.UserID, m.Role, m.Permissions, m.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert company_user: %w", err)
	}
	return nil
}

// GetByUserWithCompany returns the user's membership joined with its
// company. Oldest membership wins when data holds more than one.
func (r *CompanyUserRepo) GetByUserWithCompany(ctx context.Context, userID string) (*entity.CompanyUser, *entity.Company, error) {
	query := `
		SELECT cu.id, cu.company_id, cu.user_id, cu.role, cu.permissions, cu.created_at,
		       c.id, c.name, c.email, c.phone, c.address, c.tax_number, c.logo_url, c.admin_user_id, c.created_at, c.updated_at
		FROM company_users cu
		JOIN companies c ON c.id = cu.company_id
		WHERE cu.user_id = $1
		ORDER BY cu.created_at
		LIMIT 1`
	var m entity.CompanyUser
	var c entity.Company
	err := r.q.QueryRow(ctx, query, userID).Scan(
		&m.ID, &m.CompanyID, &m.UserID, &m.Role, &m.Permissions, &m.CreatedAt,
		&c.ID, &c.Name, &c.Email, &c.Phone, &c.Address, &c.TaxNumber, &c.LogoURL, &c.AdminUserID, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil, nil
		}
		return nil, nil, fmt.Errorf("get membership: %w", err)
	}
	return &m, &c, nil
}

// GetByCompanyAndUser returns the membership for (company, user), nil when
// absent.
func (r *CompanyUserRepo) GetByCompanyAndUser(ctx context.Context, companyID, userID string) (*entity.CompanyUser, error) {
	query := `
		SELECT id, company_id, user_id, role, permissions, created_at
		FROM company_users WHERE company_id = $1 AND user_id = $2`
	var m entity.CompanyUser
	err := r.q.QueryRow(ctx, query, companyID, userID).Scan(
		&m.ID, &m.CompanyID, &m.UserID, &m.Role, &m.Permissions, &m.CreatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get membership by company and user: %w", err)
	}
	return &m, nil
}

// ListByCompany returns the company's memberships, oldest first.
func (r *CompanyUserRepo) ListByCompany(ctx context.Context, companyID string) ([]*entity.CompanyUser, error) {
	query := `
		SELECT id, company_id, user_id, role, permissions, created_at
		FROM company_users WHERE company_id = $1 ORDER BY created_at`
	rows, err := r.q.Query(ctx, query, companyID)
	if err != nil {
		return nil, fmt.Errorf("list memberships: %w", err)
	}
	defer rows.Close()

	var list []*entity.CompanyUser
	for rows.Next() {
		var m entity.CompanyUser
		if err := rows.Scan(&m.ID, &m.CompanyID, &m.UserID, &m.Role, &m.Permissions, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan membership: %w", err)
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}

// UpdateRole rewrites role and permission flags for (company, user).
func (r *CompanyUserRepo) UpdateRole(ctx context.Context, companyID, userID, role string, perms entity.Permissions) error {
	query := `
		UPDATE company_users SET role = $3, permissions = $4
		WHERE company_id = $1 AND user_id = $2`
	cmd, err := r.q.Exec(ctx, query, companyID, userID, role, perms)
	if err != nil {
		return fmt.Errorf("update membership role: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete removes the membership for (company, user).
func (r *CompanyUserRepo) Delete(ctx context.Context, companyID, userID string) error {
	_, err := r.q.Exec(ctx, `DELETE FROM company_users WHERE company_id = $1 AND user_id = $2`, companyID, userID)
	if err != nil {
		return fmt.Errorf("delete membership: %w", err)
	}
	return nil
}
