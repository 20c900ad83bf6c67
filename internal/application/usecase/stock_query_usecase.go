package usecase

import (
	"github.com/jhoicas/almacen-api/internal/application/dto"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

// StockQueryUseCase consultas de solo lectura sobre el libro de stock.
// Las mutaciones son competencia exclusiva del motor de movimientos.
type StockQueryUseCase struct {
	repo repository.StockRepository
}

// NewStockQueryUseCase construye el caso de uso.
func NewStockQueryUseCase(repo repository.StockRepository) *StockQueryUseCase {
	return &StockQueryUseCase{repo: repo}
}

// List listado detallado del libro; locationID opcional filtra por ubicación.
func (uc *StockQueryUseCase) List(locationID *int64) ([]dto.StockItemResponse, error) {
	list, err := uc.repo.ListDetailed(locationID)
	if err != nil {
		return nil, err
	}
	return toStockItems(list), nil
}

// ByProduct existencias de un producto en todas sus ubicaciones.
func (uc *StockQueryUseCase) ByProduct(productID int64) ([]dto.StockItemResponse, error) {
	list, err := uc.repo.ListByProduct(productID)
	if err != nil {
		return nil, err
	}
	return toStockItems(list), nil
}

func toStockItems(list []*entity.StockDetail) []dto.StockItemResponse {
	items := make([]dto.StockItemResponse, 0, len(list))
	for _, s := range list {
		items = append(items, dto.StockItemResponse{
			ID:           s.ID,
			ProductID:    s.ProductID,
			LocationID:   s.LocationID,
			ProductName:  s.ProductName,
			QRCode:       s.QRCode,
			LocationName: s.LocationName,
			Quantity:     s.Quantity,
			UpdatedAt:    s.UpdatedAt,
		})
	}
	return items
}
