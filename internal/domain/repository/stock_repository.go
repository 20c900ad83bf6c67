package repository

import "github.com/jhoicas/almacen-api/internal/domain/entity"

// StockRepository define el puerto del libro de stock (producto+ubicación -> cantidad).
// Las mutaciones se usan dentro de transacciones para garantizar consistencia.
type StockRepository interface {
	// Get obtiene la fila de stock; si no existe devuelve una entrada con cantidad 0
	// (ausencia == cero, no es un error).
	Get(productID, locationID int64) (*entity.Stock, error)
	// GetForUpdate igual que Get pero bloquea la fila (SELECT FOR UPDATE).
	GetForUpdate(productID, locationID int64) (*entity.Stock, error)
	// Upsert inserta o fija la cantidad de la fila, actualizando updated_at.
	Upsert(stock *entity.Stock) error
	// Increment suma delta de forma atómica, creando la fila si no existe.
	Increment(productID, locationID, delta int64) error
	// Delete elimina la fila (limpieza cuando la cantidad llega a 0).
	Delete(productID, locationID int64) error

	GetByID(id int64) (*entity.Stock, error)
	// ListDetailed listado con nombres de producto y ubicación; locationID opcional
	// filtra por ubicación. Ordenado por updated_at descendente.
	ListDetailed(locationID *int64) ([]*entity.StockDetail, error)
	// ListByProduct existencias de un producto en todas sus ubicaciones (ordenado por nombre de ubicación).
	ListByProduct(productID int64) ([]*entity.StockDetail, error)
	// DeleteByProduct elimina todas las filas de stock de un producto (baja de producto).
	DeleteByProduct(productID int64) error
}
