package repository

import "github.com/SarahAbdulmajeed/Stocker/internal/domain/entity"

// UserRepository define el puerto de persistencia para User.
type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id string) (*entity.User, error)
	FindByEmail(email string) (*entity.User, error)
	Update(user *entity.User) error
	ListByStatus(status string, limit, offset int) ([]*entity.User, error)
}
