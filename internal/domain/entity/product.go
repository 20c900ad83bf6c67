package entity

import "time"

// Product representa un producto identificable por su código QR único.
// El id es inmutable; nombre, código y descripción son editables por admin.
type Product struct {
	ID          int64
	Name        string
	QRCode      string
	Description string
	CreatedAt   time.Time
}

// ProductWithTotal producto junto con la suma de sus cantidades en todas las ubicaciones.
type ProductWithTotal struct {
	Product
	TotalQuantity int64
}
