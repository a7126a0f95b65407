package dto

import "time"

// CreateCategoryRequest body para POST /api/categories.
type CreateCategoryRequest struct {
	Name string `json:"name"`
}

// UpdateCategoryRequest body para PUT /api/categories/:id.
type UpdateCategoryRequest struct {
	Name string `json:"name"`
}

// CategoryResponse categoría serializada.
type CategoryResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CreateSupplierRequest body para POST /api/suppliers.
type CreateSupplierRequest struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Email       string `json:"email,omitempty"`
	Phone       string `json:"phone,omitempty"`
}

// UpdateSupplierRequest body para PUT /api/suppliers/:id.
type UpdateSupplierRequest struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Email       string `json:"email,omitempty"`
	Phone       string `json:"phone,omitempty"`
}

// SupplierResponse proveedor serializado. OnHand es el stock disponible
// originado en el proveedor (derivado, solo en detalle).
type SupplierResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Email       string    `json:"email,omitempty"`
	Phone       string    `json:"phone,omitempty"`
	OnHand      *int64    `json:"on_hand,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// CreateProductRequest body para POST /api/products.
type CreateProductRequest struct {
	SKU          string `json:"sku"`
	Name         string `json:"name"`
	Description  string `json:"description,omitempty"`
	CategoryID   string `json:"category_id"`
	ReorderLevel int64  `json:"reorder_level"`
}

// UpdateProductRequest body para PUT /api/products/:id.
type UpdateProductRequest struct {
	Name         string `json:"name"`
	Description  string `json:"description,omitempty"`
	CategoryID   string `json:"category_id"`
	ReorderLevel int64  `json:"reorder_level"`
}

// ProductResponse producto serializado. OnHand es el stock disponible
// derivado de los lotes (solo se calcula en el detalle).
type ProductResponse struct {
	ID               string    `json:"id"`
	SKU              string    `json:"sku"`
	Name             string    `json:"name"`
	Description      string    `json:"description,omitempty"`
	CategoryID       string    `json:"category_id"`
	ReorderLevel     int64     `json:"reorder_level"`
	LowStockNotified bool      `json:"low_stock_notified"`
	OnHand           *int64    `json:"on_hand,omitempty"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}
