package stock

import (
	"context"
	"errors"
	"fmt"

	"github.com/jhoicas/almacen-api/internal/application/dto"
	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

// MovementUseCase es el motor de movimientos de stock: la única autoridad que
// muta el libro de stock en respuesta a un movimiento IN, OUT o MOVE.
// Las validaciones de negocio devuelven un resultado {success, message}, nunca
// un error; solo los fallos de almacenamiento inesperados devuelven error.
type MovementUseCase struct {
	txRunner TxRunner
	recorder HistoryRecorder
}

// NewMovementUseCase construye el motor.
func NewMovementUseCase(txRunner TxRunner, recorder HistoryRecorder) *MovementUseCase {
	return &MovementUseCase{txRunner: txRunner, recorder: recorder}
}

// MovementInput entrada para procesar un movimiento.
// Para OUT y MOVE FromLocationID es obligatorio; para IN y MOVE ToLocationID.
// UserID es el usuario que ejecuta el movimiento; nil para operaciones móviles o de sistema.
type MovementInput struct {
	Kind           string // IN | OUT | MOVE
	ProductID      int64
	Quantity       int64
	FromLocationID *int64
	ToLocationID   *int64
	UserID         *int64
}

// MovementResult resultado estructurado hacia el caller: éxito/rechazo con
// mensaje legible para el operario.
type MovementResult struct {
	Success bool
	Message string
}

func reject(message string) *MovementResult {
	return &MovementResult{Success: false, Message: message}
}

// ProcessMovement valida y ejecuta un movimiento de stock.
//
// La verificación de suficiencia y el decremento corren dentro de una
// transacción con la fila de origen bloqueada (SELECT FOR UPDATE), de modo que
// dos OUT concurrentes sobre la misma fila nunca pueden dejarla en negativo.
// La entrada de historial se escribe después del commit, best-effort: su fallo
// no afecta al resultado del movimiento.
func (uc *MovementUseCase) ProcessMovement(ctx context.Context, input MovementInput) (*MovementResult, error) {
	if input.Quantity <= 0 {
		return reject("la cantidad debe ser positiva"), nil
	}
	if !entity.ValidMovementKind(input.Kind) {
		return reject("tipo de movimiento desconocido"), nil
	}

	outgoing := input.Kind == entity.MovementKindOUT || input.Kind == entity.MovementKindMOVE
	incoming := input.Kind == entity.MovementKindIN || input.Kind == entity.MovementKindMOVE

	if outgoing && input.FromLocationID == nil {
		return reject("falta la ubicación de origen"), nil
	}
	if incoming && input.ToLocationID == nil {
		return reject("falta la ubicación de destino"), nil
	}

	err := uc.txRunner.Run(ctx, func(stockRepo repository.StockRepository) error {
		if outgoing {
			current, err := stockRepo.GetForUpdate(input.ProductID, *input.FromLocationID)
			if err != nil {
				return err
			}
			if current.Quantity < input.Quantity {
				return &domain.InsufficientStockError{Available: current.Quantity}
			}
			remaining := current.Quantity - input.Quantity
			if remaining == 0 {
				// cantidad 0 == fila ausente: limpieza
				if err := stockRepo.Delete(input.ProductID, *input.FromLocationID); err != nil {
					return err
				}
			} else {
				current.Quantity = remaining
				if err := stockRepo.Upsert(current); err != nil {
					return err
				}
			}
		}
		if incoming {
			if err := stockRepo.Increment(input.ProductID, *input.ToLocationID, input.Quantity); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		var insufficient *domain.InsufficientStockError
		if errors.As(err, &insufficient) {
			return reject(fmt.Sprintf("stock insuficiente en la ubicación de origen (disponible: %d)", insufficient.Available)), nil
		}
		return nil, err
	}

	// from/to resueltos según el tipo: nil en el lado que no aplica
	var from, to *int64
	if outgoing {
		from = input.FromLocationID
	}
	if incoming {
		to = input.ToLocationID
	}
	uc.recorder.Record(ctx, input.ProductID, from, to, input.Quantity, input.Kind, input.UserID)

	return &MovementResult{Success: true, Message: "movimiento registrado correctamente"}, nil
}

// ProcessMovementFromRequest adapta el request HTTP al motor.
func (uc *MovementUseCase) ProcessMovementFromRequest(ctx context.Context, userID *int64, in dto.MoveStockRequest) (*MovementResult, error) {
	return uc.ProcessMovement(ctx, MovementInput{
		Kind:           in.Type,
		ProductID:      in.ProductID,
		Quantity:       in.Quantity,
		FromLocationID: in.FromLocationID,
		ToLocationID:   in.ToLocationID,
		UserID:         userID,
	})
}
