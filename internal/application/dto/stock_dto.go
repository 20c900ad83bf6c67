package dto

import "time"

// MoveStockRequest body para POST /api/stock/move.
// from_location_id es obligatorio para OUT y MOVE; to_location_id para IN y MOVE.
type MoveStockRequest struct {
	Type           string `json:"type"` // IN | OUT | MOVE
	ProductID      int64  `json:"product_id"`
	Quantity       int64  `json:"quantity"`
	FromLocationID *int64 `json:"from_location_id"`
	ToLocationID   *int64 `json:"to_location_id"`
}

// StockItemResponse fila del libro de stock con nombres resueltos.
type StockItemResponse struct {
	ID           int64     `json:"id"`
	ProductID    int64     `json:"product_id"`
	LocationID   int64     `json:"location_id"`
	ProductName  string    `json:"product_name"`
	QRCode       string    `json:"qr_code"`
	LocationName string    `json:"location_name"`
	Quantity     int64     `json:"quantity"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// SetStockQuantityRequest body para PUT /api/admin/stock/:id (fijar cantidad absoluta).
type SetStockQuantityRequest struct {
	Quantity int64 `json:"quantity"`
}
