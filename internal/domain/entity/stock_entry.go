package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// StockEntry representa un lote: una recepción de mercancía con su propio
// saldo restante, rastreado aparte de otras recepciones del mismo producto.
//
// InitialQuantity se fija una sola vez al crear el lote y nunca cambia.
// Quantity es el saldo restante; solo decrece vía retiros. Invariante:
// 0 <= Quantity <= InitialQuantity en todo momento después de la creación.
//
// ExpiryNotified es el latch de alerta de vencimiento: una vez enviada la
// alerta del lote no se reenvía, ni siquiera al editarlo (latch de una vía).
type StockEntry struct {
	ID              string
	ProductID       string
	SupplierID      string
	InitialQuantity int64
	Quantity        int64
	UnitCost        decimal.Decimal
	ExpiryDate      *time.Time // opcional
	ReceivedDate    time.Time
	ExpiryNotified  bool
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
