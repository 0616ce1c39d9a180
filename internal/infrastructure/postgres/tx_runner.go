package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/quotehub/quote-api/internal/application/usecase"
	"github.com/quotehub/quote-api/internal/domain/repository"
)

// Ensure TxRunner implements the setup transaction port.
var _ usecase.SetupTxRunner = (*TxRunner)(nil)

// TxRunner executes callbacks inside a PostgreSQL transaction.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner builds the runner with the pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// RunSetup begins a transaction, runs fn with tx-bound repositories and
// commits, or rolls everything back on error. Used by the company bootstrap
// so its three inserts land together.
func (r *TxRunner) RunSetup(ctx context.Context, fn func(
	companies repository.CompanyRepository,
	memberships repository.CompanyUserRepository,
	subscriptions repository.SubscriptionRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(
		NewCompanyRepository(tx),
		NewCompanyUserRepository(tx),
		NewSubscriptionRepository(tx),
	); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
