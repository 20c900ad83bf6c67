package entity

import "time"

// Stock representa una fila del libro de stock: la cantidad actual de un producto
// en una ubicación. Es la única fuente de verdad para "cuánto hay de X en Y".
// Invariante: Quantity >= 0; la fila se elimina cuando la cantidad llega a 0,
// por lo que "sin fila" y "cantidad 0" son equivalentes.
type Stock struct {
	ID         int64
	ProductID  int64
	LocationID int64
	Quantity   int64
	UpdatedAt  time.Time
}

// StockDetail fila de stock con los nombres de producto y ubicación (para listados).
type StockDetail struct {
	ID           int64
	ProductID    int64
	LocationID   int64
	ProductName  string
	QRCode       string
	LocationName string
	Quantity     int64
	UpdatedAt    time.Time
}
