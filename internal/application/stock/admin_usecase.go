package stock

import (
	"context"

	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

// AdminUseCase operaciones admin sobre filas concretas del libro de stock.
// Fijar una cantidad absoluta o eliminar una fila se traducen a movimientos
// IN/OUT por la diferencia, de modo que el motor sigue siendo el único
// escritor del libro y toda mutación queda en el historial.
type AdminUseCase struct {
	stockRepo repository.StockRepository
	engine    *MovementUseCase
}

// NewAdminUseCase construye el caso de uso.
func NewAdminUseCase(stockRepo repository.StockRepository, engine *MovementUseCase) *AdminUseCase {
	return &AdminUseCase{stockRepo: stockRepo, engine: engine}
}

// SetQuantity fija la cantidad absoluta de una fila de stock aplicando la
// diferencia como IN o OUT. Devuelve domain.ErrNotFound si la fila no existe.
func (uc *AdminUseCase) SetQuantity(ctx context.Context, stockID, quantity int64, userID *int64) (*MovementResult, error) {
	if quantity < 0 {
		return reject("la cantidad no puede ser negativa"), nil
	}
	row, err := uc.stockRepo.GetByID(stockID)
	if err != nil {
		return nil, err
	}
	if row == nil {
		return nil, domain.ErrNotFound
	}
	delta := quantity - row.Quantity
	if delta == 0 {
		return &MovementResult{Success: true, Message: "sin cambios"}, nil
	}
	input := MovementInput{
		ProductID: row.ProductID,
		UserID:    userID,
	}
	if delta > 0 {
		input.Kind = entity.MovementKindIN
		input.Quantity = delta
		input.ToLocationID = &row.LocationID
	} else {
		input.Kind = entity.MovementKindOUT
		input.Quantity = -delta
		input.FromLocationID = &row.LocationID
	}
	return uc.engine.ProcessMovement(ctx, input)
}

// RemoveEntry da de baja una fila completa como salida OUT por su cantidad total.
// Devuelve domain.ErrNotFound si la fila no existe.
func (uc *AdminUseCase) RemoveEntry(ctx context.Context, stockID int64, userID *int64) (*MovementResult, error) {
	row, err := uc.stockRepo.GetByID(stockID)
	if err != nil {
		return nil, err
	}
	if row == nil {
		return nil, domain.ErrNotFound
	}
	return uc.engine.ProcessMovement(ctx, MovementInput{
		Kind:           entity.MovementKindOUT,
		ProductID:      row.ProductID,
		Quantity:       row.Quantity,
		FromLocationID: &row.LocationID,
		UserID:         userID,
	})
}
