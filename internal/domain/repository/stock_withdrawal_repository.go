package repository

import "github.com/SarahAbdulmajeed/Stocker/internal/domain/entity"

// StockWithdrawalRepository define el puerto de persistencia para retiros.
type StockWithdrawalRepository interface {
	Create(withdrawal *entity.StockWithdrawal) error
	GetByID(id string) (*entity.StockWithdrawal, error)
	List(limit, offset int) ([]*entity.StockWithdrawal, error)
	ListByEntry(entryID string) ([]*entity.StockWithdrawal, error)
	SumQuantityByEntry(entryID string) (int64, error)
	Delete(id string) error
}
