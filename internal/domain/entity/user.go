package entity

import "time"

// Roles de usuario para el middleware RBAC.
const (
	RoleAdmin  = "admin"
	RoleCajero = "cajero"
	RoleMesero = "mesero"
)

// User usuario interno del sistema (staff).
type User struct {
	ID           string
	Email        string
	PasswordHash string
	Name         string
	Role         string // RoleAdmin | RoleCajero | RoleMesero
	Status       string // "active" | "disabled"
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
