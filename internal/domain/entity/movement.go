package entity

// Tipos de movimiento de stock.
const (
	MovementKindIN   = "IN"   // entrada: recepción de mercancía en una ubicación
	MovementKindOUT  = "OUT"  // salida: consumo o baja desde una ubicación
	MovementKindMOVE = "MOVE" // traslado entre dos ubicaciones
)

// ValidMovementKind indica si el tipo de movimiento es uno de los conocidos.
func ValidMovementKind(kind string) bool {
	switch kind {
	case MovementKindIN, MovementKindOUT, MovementKindMOVE:
		return true
	}
	return false
}
