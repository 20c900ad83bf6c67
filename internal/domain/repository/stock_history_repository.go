package repository

import "github.com/jhoicas/almacen-api/internal/domain/entity"

// StockHistoryRepository define el puerto de persistencia del historial de stock (append-only).
type StockHistoryRepository interface {
	Create(entry *entity.StockHistory) error
	// List entradas más recientes primero, con nombres resueltos.
	List(limit, offset int) ([]*entity.StockHistoryDetail, error)
	// DetachUser anula la referencia user_id de las entradas del usuario
	// (soft-detach al borrar usuarios; la historia nunca se borra por esto).
	DetachUser(userID int64) error
	// DeleteByProduct elimina las entradas de un producto (baja de producto).
	DeleteByProduct(productID int64) error
}
