package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// InventoryReportRow es una fila del reporte de inventario por producto.
// InQty/OutQty/InValue se calculan sobre la ventana de fechas del caller;
// CurrentStock siempre es el saldo disponible total (sin ventana).
type InventoryReportRow struct {
	ProductID    string
	SKU          string
	ProductName  string
	CurrentStock int64
	InQty        int64
	OutQty       int64
	InValue      decimal.Decimal
}

// SupplierReportRow es una fila del reporte por proveedor, agregando a
// través de los lotes originados en cada proveedor.
type SupplierReportRow struct {
	SupplierID   string
	SupplierName string
	CurrentStock int64
	InQty        int64
	OutQty       int64
	InValue      decimal.Decimal
}

// ReportRepository define las consultas de agregación del motor de reportes.
// start/end son inclusivos en ambos extremos y se comparan contra la fecha
// de creación de cada registro (solo la porción de fecha); nil = sin límite.
// Todos los productos/proveedores aparecen, con ceros si no tuvieron actividad.
type ReportRepository interface {
	InventoryRows(ctx context.Context, start, end *time.Time) ([]InventoryReportRow, error)
	SupplierRows(ctx context.Context, start, end *time.Time) ([]SupplierReportRow, error)
}
