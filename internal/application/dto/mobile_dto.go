package dto

import "time"

// Requests del canal móvil: el producto llega como código QR escaneado,
// nunca como id; la resolución QR -> producto ocurre en el handler.

// MobileAddStockRequest body para POST /api/mobile/stock/add (entrada IN).
type MobileAddStockRequest struct {
	QRCode     string `json:"qrCode"`
	LocationID int64  `json:"locationId"`
	Quantity   int64  `json:"quantity"`
}

// MobileMoveStockRequest body para POST /api/mobile/stock/move (traslado MOVE).
type MobileMoveStockRequest struct {
	QRCode         string `json:"qrCode"`
	FromLocationID int64  `json:"fromLocationId"`
	ToLocationID   int64  `json:"toLocationId"`
	Quantity       int64  `json:"quantity"`
}

// MobileCreateProductRequest body para POST /api/mobile/products
// (alta desde el escáner cuando el código no tiene producto asociado).
type MobileCreateProductRequest struct {
	QRCode string `json:"qrCode"`
	Name   string `json:"name"`
}

// MobileStockAtLocation existencias de un producto en una ubicación (consulta por QR).
type MobileStockAtLocation struct {
	ID           int64     `json:"id"`
	LocationID   int64     `json:"locationId"`
	LocationName string    `json:"locationName"`
	Quantity     int64     `json:"quantity"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// MobileStockByQRResponse producto resuelto más sus existencias por ubicación.
type MobileStockByQRResponse struct {
	Product       ProductResponse         `json:"product"`
	Stock         []MobileStockAtLocation `json:"stock"`
	TotalQuantity int64                   `json:"totalQuantity"`
}
