package repository

import "github.com/jhoicas/almacen-api/internal/domain/entity"

// ProductRepository define el puerto de persistencia para Product (DIP).
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id int64) (*entity.Product, error)
	// GetByQRCode resolución de código escaneado. nil si no existe.
	GetByQRCode(qrCode string) (*entity.Product, error)
	List() ([]*entity.Product, error)
	// ListWithTotals productos con la suma de cantidades en todas las ubicaciones.
	ListWithTotals() ([]*entity.ProductWithTotal, error)
	Update(product *entity.Product) error
	Delete(id int64) error
}
