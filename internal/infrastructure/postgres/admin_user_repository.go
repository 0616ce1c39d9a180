package postgres

import (
	"context"
	"fmt"

	"github.com/quotehub/quote-api/internal/domain/entity"
	"github.com/quotehub/quote-api/internal/domain/repository"
)

var _ repository.AdminUserRepository = (*AdminUserRepo)(nil)

// AdminUserRepo AdminUserRepository adapter over PostgreSQL.
type AdminUserRepo struct {
	q Querier
}

// NewAdminUserRepository builds the adapter.
func NewAdminUserRepository(q Querier) *AdminUserRepo {
	return &AdminUserRepo{q: q}
}

// GetByUser returns the super-admin marker for the user, nil when absent.
func (r *AdminUserRepo) GetByUser(ctx context.Context, userID string) (*entity.AdminUser, error) {
	query := `
		SELECT id, user_id, role, created_at
		FROM admin_users WHERE user_id = $1`
	var a entity.AdminUser
	err := r.q.QueryRow(ctx, query, userID).Scan(&a.ID, &a.UserID, &a.Role, &a.CreatedAt)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get admin user: %w", err)
	}
	return &a, nil
}
