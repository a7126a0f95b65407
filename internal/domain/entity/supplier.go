package entity

import "time"

// Supplier representa un proveedor de mercancía. Name es único.
type Supplier struct {
	ID          string
	Name        string
	Description string
	Email       string
	Phone       string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
