package usecase

import (
	"github.com/jhoicas/almacen-api/internal/application/dto"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

// HistoryUseCase listado del historial de movimientos para el panel admin.
type HistoryUseCase struct {
	repo repository.StockHistoryRepository
}

// NewHistoryUseCase construye el caso de uso.
func NewHistoryUseCase(repo repository.StockHistoryRepository) *HistoryUseCase {
	return &HistoryUseCase{repo: repo}
}

// List entradas más recientes primero.
func (uc *HistoryUseCase) List(limit, offset int) ([]dto.HistoryEntryResponse, error) {
	if limit <= 0 || limit > 500 {
		limit = 100
	}
	if offset < 0 {
		offset = 0
	}
	list, err := uc.repo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.HistoryEntryResponse, 0, len(list))
	for _, e := range list {
		items = append(items, dto.HistoryEntryResponse{
			ID:               e.ID,
			ProductID:        e.ProductID,
			ProductName:      e.ProductName,
			FromLocationID:   e.FromLocationID,
			FromLocationName: e.FromLocationName,
			ToLocationID:     e.ToLocationID,
			ToLocationName:   e.ToLocationName,
			Quantity:         e.Quantity,
			Kind:             e.Kind,
			UserID:           e.UserID,
			UserName:         e.UserName,
			CreatedAt:        e.CreatedAt,
		})
	}
	return items, nil
}
