package entity

import "time"

// StockHistory registro append-only de un cambio de cantidad. Es un efecto
// secundario del movimiento, no estado autoritativo: el libro de stock manda
// sobre "cuánto hay"; la historia solo sobre "qué pasó y cuándo".
// Cantidad sin signo; el sentido lo da Kind más from/to.
type StockHistory struct {
	ID             int64
	ProductID      int64
	FromLocationID *int64 // nil para IN
	ToLocationID   *int64 // nil para OUT
	Quantity       int64
	Kind           string // IN | OUT | MOVE
	UserID         *int64 // nil en operaciones móviles o de sistema; se anula al borrar el usuario
	CreatedAt      time.Time
}

// StockHistoryDetail entrada de historia con nombres resueltos para el listado admin.
type StockHistoryDetail struct {
	StockHistory
	ProductName      string
	FromLocationName *string
	ToLocationName   *string
	UserName         *string
}
