package dto

import "time"

// CreateProductRequest body para crear productos (admin o móvil).
type CreateProductRequest struct {
	Name        string `json:"name"`
	QRCode      string `json:"qr_code"`
	Description string `json:"description"`
}

// UpdateProductRequest body para actualizar un producto; campos nil no se tocan.
type UpdateProductRequest struct {
	Name        *string `json:"name"`
	QRCode      *string `json:"qr_code"`
	Description *string `json:"description"`
}

// ProductResponse producto para respuestas.
type ProductResponse struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	QRCode      string    `json:"qr_code"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// ProductWithTotalResponse producto más el total de unidades en todas las ubicaciones.
type ProductWithTotalResponse struct {
	ProductResponse
	TotalQuantity int64 `json:"total_quantity"`
}
