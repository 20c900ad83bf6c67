package entity

import "time"

// Roles válidos para User. El rol controla qué rutas son alcanzables;
// el motor de movimientos es agnóstico a autorización.
const (
	RoleAdmin  = "admin"
	RoleWorker = "worker"
	RoleViewer = "viewer"
)

// ValidRole indica si el rol es uno de los conocidos.
func ValidRole(role string) bool {
	switch role {
	case RoleAdmin, RoleWorker, RoleViewer:
		return true
	}
	return false
}

// User representa un usuario del sistema.
type User struct {
	ID           int64
	Username     string
	FirstName    string
	LastName     string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	Role         string // admin, worker, viewer
	Active       bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
