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

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL.
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador de persistencia para productos.
// Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

const productColumns = `id, sku, name, description, category_id, reorder_level, low_stock_notified, created_at, updated_at`

// Create persiste un producto nuevo. El latch de stock bajo inicia en false.
func (r *ProductRepo) Create(product *entity.Product) error {
	query := `
		INSERT INTO products (id, sku, name, description, category_id, reorder_level, low_stock_notified, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		product.ID, product.SKU, product.Name, product.Description, product.CategoryID,
		product.ReorderLevel, product.LowStockNotified, product.CreatedAt, product.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

// GetByID obtiene un producto por ID.
func (r *ProductRepo) GetByID(id string) (*entity.Product, error) {
	return r.getBy(`SELECT `+productColumns+` FROM products WHERE id = $1`, id)
}

// GetBySKU obtiene un producto por SKU (único).
func (r *ProductRepo) GetBySKU(sku string) (*entity.Product, error) {
	return r.getBy(`SELECT `+productColumns+` FROM products WHERE sku = $1`, sku)
}

// GetByName obtiene un producto por nombre (único).
func (r *ProductRepo) GetByName(name string) (*entity.Product, error) {
	return r.getBy(`SELECT `+productColumns+` FROM products WHERE name = $1`, name)
}

func (r *ProductRepo) getBy(query string, arg any) (*entity.Product, error) {
	var p entity.Product
	err := r.q.QueryRow(context.Background(), query, arg).Scan(
		&p.ID, &p.SKU, &p.Name, &p.Description, &p.CategoryID,
		&p.ReorderLevel, &p.LowStockNotified, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return &p, nil
}

// Update actualiza un producto. No toca el latch de stock bajo (ver SetLowStockNotified).
func (r *ProductRepo) Update(product *entity.Product) error {
	query := `
		UPDATE products SET name = $2, description = $3, category_id = $4, reorder_level = $5, updated_at = $6
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		product.ID, product.Name, product.Description, product.CategoryID,
		product.ReorderLevel, product.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update product: %w", err)
	}
	return nil
}

// SetLowStockNotified actualiza solo el latch de alerta de stock bajo
// (usado por el notificador tras cada mutación del libro).
func (r *ProductRepo) SetLowStockNotified(productID string, notified bool) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE products SET low_stock_notified = $2, updated_at = now() WHERE id = $1`,
		productID, notified,
	)
	if err != nil {
		return fmt.Errorf("update low stock latch: %w", err)
	}
	return nil
}

// List lista productos filtrando por nombre o SKU (ILIKE) con paginación.
func (r *ProductRepo) List(search string, limit, offset int) ([]*entity.Product, error) {
	query := `
		SELECT ` + productColumns + `
		FROM products
		WHERE ($1 = '' OR name ILIKE '%' || $1 || '%' OR sku ILIKE '%' || $1 || '%')
		ORDER BY name ASC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, search, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()
	var list []*entity.Product
	for rows.Next() {
		var p entity.Product
		if err := rows.Scan(&p.ID, &p.SKU, &p.Name, &p.Description, &p.CategoryID,
			&p.ReorderLevel, &p.LowStockNotified, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

// Delete elimina un producto. ON DELETE RESTRICT: con lotes o retiros
// dependientes devuelve domain.ErrInUse.
func (r *ProductRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrInUse
		}
		return fmt.Errorf("delete product: %w", err)
	}
	return nil
}
