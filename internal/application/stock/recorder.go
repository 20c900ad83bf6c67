package stock

import (
	"context"
	"time"

	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
	"github.com/jhoicas/almacen-api/pkg/logger"
)

var _ HistoryRecorder = (*Recorder)(nil)

// Recorder implementación de HistoryRecorder sobre StockHistoryRepository.
// Si el insert falla (tabla o columnas ausentes, fallo de conexión) el error
// se traga y se loguea como warning: perder una entrada de historia es
// aceptable, perder la verdad del libro de stock no.
type Recorder struct {
	repo repository.StockHistoryRepository
	log  *logger.Logger
}

// NewRecorder construye el recorder.
func NewRecorder(repo repository.StockHistoryRepository, log *logger.Logger) *Recorder {
	return &Recorder{repo: repo, log: log}
}

// Record añade la entrada de auditoría del movimiento, best-effort.
func (r *Recorder) Record(_ context.Context, productID int64, fromLocationID, toLocationID *int64, quantity int64, kind string, userID *int64) {
	entry := &entity.StockHistory{
		ProductID:      productID,
		FromLocationID: fromLocationID,
		ToLocationID:   toLocationID,
		Quantity:       quantity,
		Kind:           kind,
		UserID:         userID,
		CreatedAt:      time.Now(),
	}
	if err := r.repo.Create(entry); err != nil {
		r.log.Warn().
			Err(err).
			Int64("product_id", productID).
			Str("kind", kind).
			Int64("quantity", quantity).
			Msg("no se pudo registrar la entrada de historial de stock")
	}
}
