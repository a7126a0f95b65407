package dto

import "time"

// SignUpRequest body para POST /api/auth/signup. La cuenta queda pending
// hasta que un admin la apruebe.
type SignUpRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name,omitempty"`
}

// LoginRequest body para POST /api/auth/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// ApproveUserRequest body para POST /api/users/:id/approve.
type ApproveUserRequest struct {
	Role string `json:"role"` // admin | employee; vacío = employee
}

// UserResponse usuario serializado (sin hash de contraseña).
type UserResponse struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name,omitempty"`
	Role      string    `json:"role,omitempty"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// LoginResponse token + usuario autenticado.
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}
