package repository

import "github.com/SarahAbdulmajeed/Stocker/internal/domain/entity"

// ProductRepository define el puerto de persistencia para Product.
// El stock disponible no se guarda en products: se deriva de los lotes.
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	GetBySKU(sku string) (*entity.Product, error)
	GetByName(name string) (*entity.Product, error)
	Update(product *entity.Product) error
	// SetLowStockNotified actualiza solo el latch de alerta de stock bajo.
	SetLowStockNotified(productID string, notified bool) error
	List(search string, limit, offset int) ([]*entity.Product, error)
	// Delete falla con domain.ErrInUse si el producto tiene lotes o retiros.
	Delete(id string) error
}
