package repository

import "github.com/SarahAbdulmajeed/Stocker/internal/domain/entity"

// SupplierRepository define el puerto de persistencia para Supplier.
type SupplierRepository interface {
	Create(supplier *entity.Supplier) error
	GetByID(id string) (*entity.Supplier, error)
	GetByName(name string) (*entity.Supplier, error)
	Update(supplier *entity.Supplier) error
	List(search string, limit, offset int) ([]*entity.Supplier, error)
	// Delete falla con domain.ErrInUse si el proveedor tiene lotes registrados.
	Delete(id string) error
}
