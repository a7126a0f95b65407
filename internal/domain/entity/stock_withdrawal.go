package entity

import "time"

// Motivos válidos de retiro.
const (
	WithdrawalReasonSale   = "SALE"
	WithdrawalReasonDamage = "DAMAGE"
	WithdrawalReasonReturn = "RETURN"
	WithdrawalReasonAdjust = "ADJUST"
	WithdrawalReasonOther  = "OTHER"
)

// ValidWithdrawalReason indica si el motivo pertenece al enum.
func ValidWithdrawalReason(reason string) bool {
	switch reason {
	case WithdrawalReasonSale, WithdrawalReasonDamage, WithdrawalReasonReturn,
		WithdrawalReasonAdjust, WithdrawalReasonOther:
		return true
	}
	return false
}

// StockWithdrawal representa un retiro contra un lote específico (StockEntry).
// ProductID está desnormalizado para los reportes por producto. Invariante:
// la suma de retiros contra un lote nunca excede su InitialQuantity.
type StockWithdrawal struct {
	ID           string
	StockEntryID string
	ProductID    string
	Quantity     int64 // siempre > 0
	Reason       string
	Notes        string
	CreatedAt    time.Time
	CreatedBy    string // UserID
}
