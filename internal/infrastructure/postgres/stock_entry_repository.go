package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/SarahAbdulmajeed/Stocker/internal/domain"
	"github.com/SarahAbdulmajeed/Stocker/internal/domain/entity"
	"github.com/SarahAbdulmajeed/Stocker/internal/domain/repository"
)

var _ repository.StockEntryRepository = (*StockEntryRepo)(nil)

// StockEntryRepo implementación de StockEntryRepository sobre PostgreSQL
// (usable con pool o tx).
type StockEntryRepo struct {
	q Querier
}

// NewStockEntryRepository construye el adaptador. Pasar pool o tx (Querier).
func NewStockEntryRepository(q Querier) *StockEntryRepo {
	return &StockEntryRepo{q: q}
}

const entryColumns = `id, product_id, supplier_id, initial_quantity, quantity, unit_cost, expiry_date, received_date, expiry_notified, created_at, updated_at`

// Create persiste un lote nuevo (initial_quantity queda congelado aquí).
func (r *StockEntryRepo) Create(entry *entity.StockEntry) error {
	query := `
		INSERT INTO stock_entries (id, product_id, supplier_id, initial_quantity, quantity, unit_cost, expiry_date, received_date, expiry_notified, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.q.Exec(context.Background(), query,
		entry.ID, entry.ProductID, entry.SupplierID, entry.InitialQuantity, entry.Quantity,
		entry.UnitCost, entry.ExpiryDate, entry.ReceivedDate, entry.ExpiryNotified,
		entry.CreatedAt, entry.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert stock entry: %w", err)
	}
	return nil
}

// GetByID obtiene un lote por ID.
func (r *StockEntryRepo) GetByID(id string) (*entity.StockEntry, error) {
	return r.get(`SELECT `+entryColumns+` FROM stock_entries WHERE id = $1`, id)
}

// GetForUpdate obtiene el lote y bloquea la fila (SELECT FOR UPDATE).
// Dentro de una tx serializa los retiros concurrentes contra el mismo lote:
// el segundo retiro espera el commit del primero y ve el saldo ya decrementado.
func (r *StockEntryRepo) GetForUpdate(id string) (*entity.StockEntry, error) {
	return r.get(`SELECT `+entryColumns+` FROM stock_entries WHERE id = $1 FOR UPDATE`, id)
}

func (r *StockEntryRepo) get(query string, arg any) (*entity.StockEntry, error) {
	var e entity.StockEntry
	err := r.q.QueryRow(context.Background(), query, arg).Scan(
		&e.ID, &e.ProductID, &e.SupplierID, &e.InitialQuantity, &e.Quantity,
		&e.UnitCost, &e.ExpiryDate, &e.ReceivedDate, &e.ExpiryNotified,
		&e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get stock entry: %w", err)
	}
	return &e, nil
}

// UpdateQuantity actualiza solo el saldo restante del lote. El CHECK de la
// tabla (0 <= quantity <= initial_quantity) respalda el invariante.
func (r *StockEntryRepo) UpdateQuantity(id string, quantity int64) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE stock_entries SET quantity = $2, updated_at = now() WHERE id = $1`,
		id, quantity,
	)
	if err != nil {
		return fmt.Errorf("update stock entry quantity: %w", err)
	}
	return nil
}

// Update actualiza los campos editables del lote. initial_quantity y
// quantity no aparecen en el SET: no son editables por esta vía.
func (r *StockEntryRepo) Update(entry *entity.StockEntry) error {
	query := `
		UPDATE stock_entries SET supplier_id = $2, unit_cost = $3, expiry_date = $4, received_date = $5, updated_at = $6
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		entry.ID, entry.SupplierID, entry.UnitCost, entry.ExpiryDate,
		entry.ReceivedDate, entry.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update stock entry: %w", err)
	}
	return nil
}

// SetExpiryNotified actualiza solo el latch de vencimiento del lote.
func (r *StockEntryRepo) SetExpiryNotified(id string, notified bool) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE stock_entries SET expiry_notified = $2, updated_at = now() WHERE id = $1`,
		id, notified,
	)
	if err != nil {
		return fmt.Errorf("update expiry latch: %w", err)
	}
	return nil
}

// List lista lotes con paginación, los más recientes primero.
func (r *StockEntryRepo) List(limit, offset int) ([]*entity.StockEntry, error) {
	query := `
		SELECT ` + entryColumns + `
		FROM stock_entries ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list stock entries: %w", err)
	}
	defer rows.Close()
	return scanEntries(rows)
}

// ListByProduct lista los lotes de un producto.
func (r *StockEntryRepo) ListByProduct(productID string) ([]*entity.StockEntry, error) {
	query := `
		SELECT ` + entryColumns + `
		FROM stock_entries WHERE product_id = $1 ORDER BY created_at DESC`
	rows, err := r.q.Query(context.Background(), query, productID)
	if err != nil {
		return nil, fmt.Errorf("list stock entries by product: %w", err)
	}
	defer rows.Close()
	return scanEntries(rows)
}

func scanEntries(rows pgx.Rows) ([]*entity.StockEntry, error) {
	var list []*entity.StockEntry
	for rows.Next() {
		var e entity.StockEntry
		if err := rows.Scan(&e.ID, &e.ProductID, &e.SupplierID, &e.InitialQuantity, &e.Quantity,
			&e.UnitCost, &e.ExpiryDate, &e.ReceivedDate, &e.ExpiryNotified,
			&e.CreatedAt, &e.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan stock entry: %w", err)
		}
		list = append(list, &e)
	}
	return list, rows.Err()
}

// SumQuantityByProduct devuelve el stock disponible del producto: suma de
// quantity sobre sus lotes, 0 si no tiene. Vista derivada, nunca almacenada.
func (r *StockEntryRepo) SumQuantityByProduct(productID string) (int64, error) {
	var total int64
	err := r.q.QueryRow(context.Background(),
		`SELECT COALESCE(SUM(quantity), 0) FROM stock_entries WHERE product_id = $1`,
		productID,
	).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("sum quantity by product: %w", err)
	}
	return total, nil
}

// SumQuantityBySupplier devuelve el stock disponible originado en el proveedor.
func (r *StockEntryRepo) SumQuantityBySupplier(supplierID string) (int64, error) {
	var total int64
	err := r.q.QueryRow(context.Background(),
		`SELECT COALESCE(SUM(quantity), 0) FROM stock_entries WHERE supplier_id = $1`,
		supplierID,
	).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("sum quantity by supplier: %w", err)
	}
	return total, nil
}

// Delete elimina un lote (administrativo). ON DELETE RESTRICT: con retiros
// registrados devuelve domain.ErrInUse.
func (r *StockEntryRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM stock_entries WHERE id = $1`, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrInUse
		}
		return fmt.Errorf("delete stock entry: %w", err)
	}
	return nil
}
