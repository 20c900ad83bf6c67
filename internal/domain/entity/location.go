package entity

import "strings"

// Zonas derivadas por convención de nombre (no es un campo de la tabla).
const (
	ZoneIntake   = "intake"
	ZoneDispatch = "dispatch"
)

// Location representa una ubicación física de almacenaje (estantería, zona, muelle).
type Location struct {
	ID          int64
	Name        string
	Description string
}

// Zone devuelve la zona derivada del nombre ("intake", "dispatch" o vacío).
// Las zonas de recepción y despacho se distinguen solo por convención de nombre.
func (l *Location) Zone() string {
	name := strings.ToLower(l.Name)
	switch {
	case strings.Contains(name, ZoneIntake):
		return ZoneIntake
	case strings.Contains(name, ZoneDispatch):
		return ZoneDispatch
	}
	return ""
}
