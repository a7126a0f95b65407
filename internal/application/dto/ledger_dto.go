package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateStockEntryRequest body para POST /api/stock/entries (recepción de un lote).
// Las fechas van en formato ISO "2006-01-02". ReceivedDate vacío = hoy.
type CreateStockEntryRequest struct {
	ProductID    string          `json:"product_id"`
	SupplierID   string          `json:"supplier_id"`
	Quantity     int64           `json:"quantity"`
	UnitCost     decimal.Decimal `json:"unit_cost"`
	ExpiryDate   string          `json:"expiry_date,omitempty"`
	ReceivedDate string          `json:"received_date,omitempty"`
}

// UpdateStockEntryRequest body para PUT /api/stock/entries/:id.
// Solo campos editables: nunca initial_quantity ni quantity.
// Punteros nil = sin cambio; ExpiryDate "" (no nil) limpia la fecha.
type UpdateStockEntryRequest struct {
	SupplierID   *string          `json:"supplier_id,omitempty"`
	UnitCost     *decimal.Decimal `json:"unit_cost,omitempty"`
	ExpiryDate   *string          `json:"expiry_date,omitempty"`
	ReceivedDate *string          `json:"received_date,omitempty"`
}

// StockEntryResponse lote serializado.
type StockEntryResponse struct {
	ID              string          `json:"id"`
	ProductID       string          `json:"product_id"`
	SupplierID      string          `json:"supplier_id"`
	InitialQuantity int64           `json:"initial_quantity"`
	Quantity        int64           `json:"quantity"`
	UnitCost        decimal.Decimal `json:"unit_cost"`
	ExpiryDate      string          `json:"expiry_date,omitempty"`
	ReceivedDate    string          `json:"received_date"`
	ExpiryNotified  bool            `json:"expiry_notified"`
	CreatedAt       time.Time       `json:"created_at"`
}

// CreateWithdrawalRequest body para POST /api/stock/entries/:id/withdraw.
type CreateWithdrawalRequest struct {
	Quantity int64  `json:"quantity"`
	Reason   string `json:"reason"` // SALE, DAMAGE, RETURN, ADJUST, OTHER
	Notes    string `json:"notes,omitempty"`
}

// WithdrawalResponse retiro serializado.
type WithdrawalResponse struct {
	ID           string    `json:"id"`
	StockEntryID string    `json:"stock_entry_id"`
	ProductID    string    `json:"product_id"`
	Quantity     int64     `json:"quantity"`
	Reason       string    `json:"reason"`
	Notes        string    `json:"notes,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	CreatedBy    string    `json:"created_by,omitempty"`
}
