package repository

import (
	"context"

	"github.com/quotehub/quote-api/internal/domain/entity"
)

// AdminUserRepository is the persistence port for super-admin markers.
type AdminUserRepository interface {
	// GetByUser returns the admin marker for the user, nil when absent.
	GetByUser(ctx context.Context, userID string) (*entity.AdminUser, error)
}
