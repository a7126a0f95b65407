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

var _ repository.SupplierRepository = (*SupplierRepo)(nil)

// SupplierRepo implementación de SupplierRepository sobre PostgreSQL.
type SupplierRepo struct {
	q Querier
}

// NewSupplierRepository construye el adaptador. Pasar pool o tx (Querier).
func NewSupplierRepository(q Querier) *SupplierRepo {
	return &SupplierRepo{q: q}
}

// Create persiste un proveedor nuevo.
func (r *SupplierRepo) Create(supplier *entity.Supplier) error {
	query := `
		INSERT INTO suppliers (id, name, description, email, phone, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		supplier.ID, supplier.Name, supplier.Description, supplier.Email,
		supplier.Phone, supplier.CreatedAt, supplier.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert supplier: %w", err)
	}
	return nil
}

// GetByID obtiene un proveedor por ID.
func (r *SupplierRepo) GetByID(id string) (*entity.Supplier, error) {
	return r.getBy(`
		SELECT id, name, description, email, phone, created_at, updated_at
		FROM suppliers WHERE id = $1`, id)
}

// GetByName obtiene un proveedor por nombre (único).
func (r *SupplierRepo) GetByName(name string) (*entity.Supplier, error) {
	return r.getBy(`
		SELECT id, name, description, email, phone, created_at, updated_at
		FROM suppliers WHERE name = $1`, name)
}

func (r *SupplierRepo) getBy(query string, arg any) (*entity.Supplier, error) {
	var s entity.Supplier
	err := r.q.QueryRow(context.Background(), query, arg).Scan(
		&s.ID, &s.Name, &s.Description, &s.Email, &s.Phone, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get supplier: %w", err)
	}
	return &s, nil
}

// Update actualiza un proveedor existente.
func (r *SupplierRepo) Update(supplier *entity.Supplier) error {
	query := `
		UPDATE suppliers SET name = $2, description = $3, email = $4, phone = $5, updated_at = $6
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		supplier.ID, supplier.Name, supplier.Description, supplier.Email,
		supplier.Phone, supplier.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update supplier: %w", err)
	}
	return nil
}

// List lista proveedores filtrando por nombre (ILIKE) con paginación.
func (r *SupplierRepo) List(search string, limit, offset int) ([]*entity.Supplier, error) {
	query := `
		SELECT id, name, description, email, phone, created_at, updated_at
		FROM suppliers
		WHERE ($1 = '' OR name ILIKE '%' || $1 || '%')
		ORDER BY name ASC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, search, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list suppliers: %w", err)
	}
	defer rows.Close()
	var list []*entity.Supplier
	for rows.Next() {
		var s entity.Supplier
		if err := rows.Scan(&s.ID, &s.Name, &s.Description, &s.Email, &s.Phone, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan supplier: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}

// Delete elimina un proveedor. ON DELETE RESTRICT: con lotes dependientes
// devuelve domain.ErrInUse.
func (r *SupplierRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM suppliers WHERE id = $1`, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrInUse
		}
		return fmt.Errorf("delete supplier: %w", err)
	}
	return nil
}
