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

var _ repository.CategoryRepository = (*CategoryRepo)(nil)

// CategoryRepo implementación de CategoryRepository sobre PostgreSQL.
type CategoryRepo struct {
	q Querier
}

// NewCategoryRepository construye el adaptador. Pasar pool o tx (Querier).
func NewCategoryRepository(q Querier) *CategoryRepo {
	return &CategoryRepo{q: q}
}

// Create persiste una categoría nueva.
func (r *CategoryRepo) Create(category *entity.Category) error {
	query := `
		INSERT INTO categories (id, name, created_at, updated_at)
		VALUES ($1, $2, $3, $4)`
	_, err := r.q.Exec(context.Background(), query,
		category.ID, category.Name, category.CreatedAt, category.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert category: %w", err)
	}
	return nil
}

// GetByID obtiene una categoría por ID.
func (r *CategoryRepo) GetByID(id string) (*entity.Category, error) {
	return r.getBy(`SELECT id, name, created_at, updated_at FROM categories WHERE id = $1`, id)
}

// GetByName obtiene una categoría por nombre (único).
func (r *CategoryRepo) GetByName(name string) (*entity.Category, error) {
	return r.getBy(`SELECT id, name, created_at, updated_at FROM categories WHERE name = $1`, name)
}

func (r *CategoryRepo) getBy(query string, arg any) (*entity.Category, error) {
	var c entity.Category
	err := r.q.QueryRow(context.Background(), query, arg).Scan(
		&c.ID, &c.Name, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get category: %w", err)
	}
	return &c, nil
}

// Update actualiza una categoría existente.
func (r *CategoryRepo) Update(category *entity.Category) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE categories SET name = $2, updated_at = $3 WHERE id = $1`,
		category.ID, category.Name, category.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update category: %w", err)
	}
	return nil
}

// List lista categorías filtrando por nombre (ILIKE) con paginación.
func (r *CategoryRepo) List(search string, limit, offset int) ([]*entity.Category, error) {
	query := `
		SELECT id, name, created_at, updated_at
		FROM categories
		WHERE ($1 = '' OR name ILIKE '%' || $1 || '%')
		ORDER BY name ASC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, search, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	defer rows.Close()
	var list []*entity.Category
	for rows.Next() {
		var c entity.Category
		if err := rows.Scan(&c.ID, &c.Name, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}

// Delete elimina una categoría. ON DELETE RESTRICT: con productos dependientes
// devuelve domain.ErrInUse.
func (r *CategoryRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM categories WHERE id = $1`, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrInUse
		}
		return fmt.Errorf("delete category: %w", err)
	}
	return nil
}
