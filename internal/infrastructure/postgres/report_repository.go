package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/SarahAbdulmajeed/Stocker/internal/domain/repository"
)

var _ repository.ReportRepository = (*ReportRepo)(nil)

// ReportRepo consultas de agregación de solo lectura para el motor de
// reportes. Las sumas se recomputan en cada lectura desde el libro; no hay
// contadores materializados que puedan divergir.
type ReportRepo struct {
	pool *pgxpool.Pool
}

// NewReportRepository construye el adaptador de reportes.
func NewReportRepository(pool *pgxpool.Pool) *ReportRepo {
	return &ReportRepo{pool: pool}
}

// windowClause genera el par de predicados de la ventana de reportes sobre
// alias.created_at: inclusiva en ambos extremos ($1 = inicio, $2 = fin),
// cada extremo NULL significa sin límite y la comparación trunca el
// timestamp a fecha, sin hora. Todas las subconsultas ventaneadas comparten
// este fragmento; su espejo en Go es report.WindowContains.
func windowClause(alias string) string {
	return fmt.Sprintf(
		"($1::date IS NULL OR %[1]s.created_at::date >= $1::date) AND ($2::date IS NULL OR %[1]s.created_at::date <= $2::date)",
		alias,
	)
}

// InventoryRows devuelve una fila por producto (incluyendo los sin
// actividad, con ceros). La ventana [start, end] es inclusiva en ambos
// extremos y se compara contra la fecha de creación (solo fecha, sin hora);
// nil = sin límite. current_stock siempre se calcula sin ventana.
func (r *ReportRepo) InventoryRows(ctx context.Context, start, end *time.Time) ([]repository.InventoryReportRow, error) {
	query := fmt.Sprintf(`
	SELECT
	    p.id                                                             AS product_id,
	    p.sku,
	    p.name                                                           AS product_name,
	    COALESCE((SELECT SUM(e.quantity)::BIGINT
	              FROM stock_entries e
	              WHERE e.product_id = p.id), 0)                         AS current_stock,
	    COALESCE((SELECT SUM(e.initial_quantity)::BIGINT
	              FROM stock_entries e
	              WHERE e.product_id = p.id
	                AND %[1]s), 0)                                       AS in_qty,
	    COALESCE((SELECT SUM(w.quantity)::BIGINT
	              FROM stock_withdrawals w
	              WHERE w.product_id = p.id
	                AND %[2]s), 0)                                       AS out_qty,
	    COALESCE((SELECT SUM(e.initial_quantity * e.unit_cost)
	              FROM stock_entries e
	              WHERE e.product_id = p.id
	                AND %[1]s), 0)                                       AS in_value
	FROM products p
	ORDER BY p.name ASC`, windowClause("e"), windowClause("w"))

	rows, err := r.pool.Query(ctx, query, start, end)
	if err != nil {
		return nil, fmt.Errorf("report.InventoryRows: %w", err)
	}
	defer rows.Close()

	var results []repository.InventoryReportRow
	for rows.Next() {
		var row repository.InventoryReportRow
		if err := rows.Scan(
			&row.ProductID,
			&row.SKU,
			&row.ProductName,
			&row.CurrentStock,
			&row.InQty,
			&row.OutQty,
			&row.InValue,
		); err != nil {
			return nil, fmt.Errorf("report.InventoryRows scan: %w", err)
		}
		results = append(results, row)
	}
	return results, rows.Err()
}

// SupplierRows es el espejo a granularidad de proveedor. Las salidas se
// atribuyen al proveedor del lote contra el que se hizo cada retiro.
func (r *ReportRepo) SupplierRows(ctx context.Context, start, end *time.Time) ([]repository.SupplierReportRow, error) {
	query := fmt.Sprintf(`
	SELECT
	    s.id                                                             AS supplier_id,
	    s.name                                                           AS supplier_name,
	    COALESCE((SELECT SUM(e.quantity)::BIGINT
	              FROM stock_entries e
	              WHERE e.supplier_id = s.id), 0)                        AS current_stock,
	    COALESCE((SELECT SUM(e.initial_quantity)::BIGINT
	              FROM stock_entries e
	              WHERE e.supplier_id = s.id
	                AND %[1]s), 0)                                       AS in_qty,
	    COALESCE((SELECT SUM(w.quantity)::BIGINT
	              FROM stock_withdrawals w
	              JOIN stock_entries e ON e.id = w.stock_entry_id
	              WHERE e.supplier_id = s.id
	                AND %[2]s), 0)                                       AS out_qty,
	    COALESCE((SELECT SUM(e.initial_quantity * e.unit_cost)
	              FROM stock_entries e
	              WHERE e.supplier_id = s.id
	                AND %[1]s), 0)                                       AS in_value
	FROM suppliers s
	ORDER BY s.name ASC`, windowClause("e"), windowClause("w"))

	rows, err := r.pool.Query(ctx, query, start, end)
	if err != nil {
		return nil, fmt.Errorf("report.SupplierRows: %w", err)
	}
	defer rows.Close()

	var results []repository.SupplierReportRow
	for rows.Next() {
		var row repository.SupplierReportRow
		if err := rows.Scan(
			&row.SupplierID,
			&row.SupplierName,
			&row.CurrentStock,
			&row.InQty,
			&row.OutQty,
			&row.InValue,
		); err != nil {
			return nil, fmt.Errorf("report.SupplierRows scan: %w", err)
		}
		results = append(results, row)
	}
	return results, rows.Err()
}
