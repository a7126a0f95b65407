package repository

import "github.com/SarahAbdulmajeed/Stocker/internal/domain/entity"

// StockEntryRepository define el puerto de persistencia para los lotes.
// Usado dentro de transacciones para garantizar consistencia del libro.
type StockEntryRepository interface {
	Create(entry *entity.StockEntry) error
	GetByID(id string) (*entity.StockEntry, error)
	// GetForUpdate bloquea la fila del lote (SELECT FOR UPDATE). Solo tiene
	// sentido dentro de una transacción; serializa los retiros por lote.
	GetForUpdate(id string) (*entity.StockEntry, error)
	// UpdateQuantity actualiza solo el saldo restante del lote.
	UpdateQuantity(id string, quantity int64) error
	// Update actualiza los campos editables del lote (proveedor, costo,
	// fechas). Nunca toca initial_quantity ni quantity.
	Update(entry *entity.StockEntry) error
	// SetExpiryNotified actualiza solo el latch de alerta de vencimiento.
	SetExpiryNotified(id string, notified bool) error
	List(limit, offset int) ([]*entity.StockEntry, error)
	ListByProduct(productID string) ([]*entity.StockEntry, error)
	// SumQuantityByProduct devuelve el stock disponible del producto:
	// SUM(quantity) sobre sus lotes, 0 si no tiene lotes.
	SumQuantityByProduct(productID string) (int64, error)
	// SumQuantityBySupplier devuelve el stock disponible originado en el proveedor.
	SumQuantityBySupplier(supplierID string) (int64, error)
	// Delete falla con domain.ErrInUse si el lote tiene retiros registrados.
	Delete(id string) error
}
