package entity

import "time"

// Product representa un producto del catálogo. SKU y Name son únicos.
// El stock no vive aquí: se deriva sumando la cantidad restante de sus lotes
// (StockEntry). LowStockNotified es el latch de alerta de stock bajo: pasa a
// true al enviar la primera alerta y vuelve a false cuando el stock supera
// de nuevo el nivel de reorden.
type Product struct {
	ID               string
	SKU              string
	Name             string
	Description      string
	CategoryID       string
	ReorderLevel     int64 // umbral de reorden, >= 0
	LowStockNotified bool
	CreatedAt        time.Time
	UpdatedAt        time.Time
}
