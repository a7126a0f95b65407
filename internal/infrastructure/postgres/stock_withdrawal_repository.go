package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/SarahAbdulmajeed/Stocker/internal/domain/entity"
	"github.com/SarahAbdulmajeed/Stocker/internal/domain/repository"
)

var _ repository.StockWithdrawalRepository = (*StockWithdrawalRepo)(nil)

// StockWithdrawalRepo implementación sobre PostgreSQL (usable con pool o tx).
type StockWithdrawalRepo struct {
	q Querier
}

// NewStockWithdrawalRepository construye el adaptador. Pasar pool o tx (Querier).
func NewStockWithdrawalRepository(q Querier) *StockWithdrawalRepo {
	return &StockWithdrawalRepo{q: q}
}

const withdrawalColumns = `id, stock_entry_id, product_id, quantity, reason, notes, created_at, created_by`

// Create persiste un retiro.
func (r *StockWithdrawalRepo) Create(withdrawal *entity.StockWithdrawal) error {
	query := `
		INSERT INTO stock_withdrawals (id, stock_entry_id, product_id, quantity, reason, notes, created_at, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	createdBy := (*string)(nil)
	if withdrawal.CreatedBy != "" {
		createdBy = &withdrawal.CreatedBy
	}
	_, err := r.q.Exec(context.Background(), query,
		withdrawal.ID, withdrawal.StockEntryID, withdrawal.ProductID,
		withdrawal.Quantity, withdrawal.Reason, withdrawal.Notes,
		withdrawal.CreatedAt, createdBy,
	)
	if err != nil {
		return fmt.Errorf("insert withdrawal: %w", err)
	}
	return nil
}

// GetByID obtiene un retiro por ID.
func (r *StockWithdrawalRepo) GetByID(id string) (*entity.StockWithdrawal, error) {
	var w entity.StockWithdrawal
	var createdBy *string
	err := r.q.QueryRow(context.Background(),
		`SELECT `+withdrawalColumns+` FROM stock_withdrawals WHERE id = $1`, id,
	).Scan(&w.ID, &w.StockEntryID, &w.ProductID, &w.Quantity, &w.Reason, &w.Notes, &w.CreatedAt, &createdBy)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get withdrawal: %w", err)
	}
	if createdBy != nil {
		w.CreatedBy = *createdBy
	}
	return &w, nil
}

// List lista retiros con paginación, los más recientes primero.
func (r *StockWithdrawalRepo) List(limit, offset int) ([]*entity.StockWithdrawal, error) {
	query := `
		SELECT ` + withdrawalColumns + `
		FROM stock_withdrawals ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list withdrawals: %w", err)
	}
	defer rows.Close()
	return scanWithdrawals(rows)
}

// ListByEntry lista los retiros de un lote.
func (r *StockWithdrawalRepo) ListByEntry(entryID string) ([]*entity.StockWithdrawal, error) {
	query := `
		SELECT ` + withdrawalColumns + `
		FROM stock_withdrawals WHERE stock_entry_id = $1 ORDER BY created_at DESC`
	rows, err := r.q.Query(context.Background(), query, entryID)
	if err != nil {
		return nil, fmt.Errorf("list withdrawals by entry: %w", err)
	}
	defer rows.Close()
	return scanWithdrawals(rows)
}

func scanWithdrawals(rows pgx.Rows) ([]*entity.StockWithdrawal, error) {
	var list []*entity.StockWithdrawal
	for rows.Next() {
		var w entity.StockWithdrawal
		var createdBy *string
		if err := rows.Scan(&w.ID, &w.StockEntryID, &w.ProductID, &w.Quantity,
			&w.Reason, &w.Notes, &w.CreatedAt, &createdBy); err != nil {
			return nil, fmt.Errorf("scan withdrawal: %w", err)
		}
		if createdBy != nil {
			w.CreatedBy = *createdBy
		}
		list = append(list, &w)
	}
	return list, rows.Err()
}

// SumQuantityByEntry suma los retiros contra un lote. Junto al CHECK de la
// tabla respalda que nunca excedan initial_quantity.
func (r *StockWithdrawalRepo) SumQuantityByEntry(entryID string) (int64, error) {
	var total int64
	err := r.q.QueryRow(context.Background(),
		`SELECT COALESCE(SUM(quantity), 0) FROM stock_withdrawals WHERE stock_entry_id = $1`,
		entryID,
	).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("sum withdrawals by entry: %w", err)
	}
	return total, nil
}

// Delete elimina un retiro (administrativo; no restaura el saldo del lote).
func (r *StockWithdrawalRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM stock_withdrawals WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete withdrawal: %w", err)
	}
	return nil
}
