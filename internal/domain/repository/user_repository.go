package repository

import (
	"context"

	"github.com/quotehub/quote-api/internal/domain/entity"
)

// UserRepository is the persistence port for identities.
type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	GetByID(ctx context.Context, id string) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	// GetByIDs resolves several user ids at once, keyed by id. Missing ids
	// are simply absent from the map.
	GetByIDs(ctx context.Context, ids []string) (map[string]*entity.User, error)
}
