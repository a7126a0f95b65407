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

var _ repository.UserRepository = (*UserRepo)(nil)

const userColumns = `id, email, password_hash, name, role, status, created_at, updated_at`

// UserRepo implementación Postgres de UserRepository.
type UserRepo struct {
	q Querier
}

// NewUserRepository construye el adaptador de usuarios.
func NewUserRepository(q Querier) *UserRepo {
	return &UserRepo{q: q}
}

func (r *UserRepo) Create(user *entity.User) error {
	query := `
	INSERT INTO users (id, email, password_hash, name, role, status)
	VALUES ($1, $2, $3, $4, $5, $6)`

	_, err := r.q.Exec(context.Background(), query,
		user.ID,
		user.Email,
		user.PasswordHash,
		user.Name,
		user.Role,
		user.Status,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrEmailAlreadyExists
		}
		return fmt.Errorf("user.Create: %w", err)
	}
	return nil
}

func (r *UserRepo) GetByID(id string) (*entity.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id))
}

func (r *UserRepo) FindByEmail(email string) (*entity.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE LOWER(email) = LOWER($1)`
	return r.scanOne(r.q.QueryRow(context.Background(), query, email))
}

func (r *UserRepo) Update(user *entity.User) error {
	query := `
	UPDATE users
	SET email = $2, password_hash = $3, name = $4, role = $5, status = $6, updated_at = NOW()
	WHERE id = $1`

	tag, err := r.q.Exec(context.Background(), query,
		user.ID,
		user.Email,
		user.PasswordHash,
		user.Name,
		user.Role,
		user.Status,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrEmailAlreadyExists
		}
		return fmt.Errorf("user.Update: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

func (r *UserRepo) ListByStatus(status string, limit, offset int) ([]*entity.User, error) {
	query := `
	SELECT ` + userColumns + `
	FROM users
	WHERE status = $1
	ORDER BY created_at ASC
	LIMIT $2 OFFSET $3`

	rows, err := r.q.Query(context.Background(), query, status, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("user.ListByStatus: %w", err)
	}
	defer rows.Close()

	var users []*entity.User
	for rows.Next() {
		var u entity.User
		if err := rows.Scan(
			&u.ID, &u.Email, &u.PasswordHash, &u.Name, &u.Role, &u.Status,
			&u.CreatedAt, &u.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("user.ListByStatus scan: %w", err)
		}
		users = append(users, &u)
	}
	return users, rows.Err()
}

func (r *UserRepo) scanOne(row pgx.Row) (*entity.User, error) {
	var u entity.User
	err := row.Scan(
		&u.ID, &u.Email, &u.PasswordHash, &u.Name, &u.Role, &u.Status,
		&u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("user scan: %w", err)
	}
	return &u, nil
}
