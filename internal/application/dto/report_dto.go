package dto

import "github.com/shopspring/decimal"

// InventoryReportRowDTO fila del reporte de inventario por producto.
// NetMovement = InQty - OutQty, calculado sobre la ventana del caller.
type InventoryReportRowDTO struct {
	ProductID    string          `json:"product_id"`
	SKU          string          `json:"sku"`
	ProductName  string          `json:"product_name"`
	CurrentStock int64           `json:"current_stock"`
	InQty        int64           `json:"in_qty"`
	OutQty       int64           `json:"out_qty"`
	NetMovement  int64           `json:"net_movement"`
	InValue      decimal.Decimal `json:"in_value"`
}

// SupplierReportRowDTO fila del reporte por proveedor.
type SupplierReportRowDTO struct {
	SupplierID   string          `json:"supplier_id"`
	SupplierName string          `json:"supplier_name"`
	CurrentStock int64           `json:"current_stock"`
	InQty        int64           `json:"in_qty"`
	OutQty       int64           `json:"out_qty"`
	NetMovement  int64           `json:"net_movement"`
	InValue      decimal.Decimal `json:"in_value"`
}
