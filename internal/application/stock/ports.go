package stock

import (
	"context"

	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando un
// repositorio de stock atado a esa tx. Garantiza que la verificación de
// suficiencia y la mutación sean indivisibles para el motor de movimientos.
type TxRunner interface {
	Run(ctx context.Context, fn func(stockRepo repository.StockRepository) error) error
}

// HistoryRecorder registra el hecho de un movimiento, best-effort: nunca
// devuelve error. Un fallo al escribir la historia no revierte el libro de stock.
type HistoryRecorder interface {
	Record(ctx context.Context, productID int64, fromLocationID, toLocationID *int64, quantity int64, kind string, userID *int64)
}
