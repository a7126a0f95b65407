package entity

import "time"

// Roles válidos para User.
const (
	RoleAdmin    = "admin"
	RoleEmployee = "employee"
)

// Estados de cuenta. Un usuario nace pending y no puede iniciar sesión
// hasta que un admin lo apruebe asignándole un rol.
const (
	UserStatusPending = "pending"
	UserStatusActive  = "active"
)

// User representa un usuario del sistema.
type User struct {
	ID           string
	Email        string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	Name         string
	Role         string // admin, employee (vacío mientras está pending)
	Status       string // pending, active
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
