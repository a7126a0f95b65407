package ledger

import (
	"context"

	"github.com/SarahAbdulmajeed/Stocker/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza que el check-then-decrement de un
// retiro sea atómico frente a retiros concurrentes contra el mismo lote.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		entryRepo repository.StockEntryRepository,
		withdrawalRepo repository.StockWithdrawalRepository,
	) error) error
}
