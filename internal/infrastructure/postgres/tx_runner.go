package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/SarahAbdulmajeed/Stocker/internal/application/ledger"
	"github.com/SarahAbdulmajeed/Stocker/internal/domain/repository"
)

// Ensure TxRunner implements ledger.TxRunner.
var _ ledger.TxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// Run inicia una transacción, ejecuta fn con repos atados a la tx y hace
// Commit o Rollback. Cualquier error de fn aborta la transacción completa:
// un retiro rechazado no deja efecto parcial.
func (r *TxRunner) Run(ctx context.Context, fn func(
	entryRepo repository.StockEntryRepository,
	withdrawalRepo repository.StockWithdrawalRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	entryRepo := NewStockEntryRepository(tx)
	withdrawalRepo := NewStockWithdrawalRepository(tx)

	if err := fn(entryRepo, withdrawalRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
