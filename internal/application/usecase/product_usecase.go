package usecase

import (
	"time"

	"github.com/jhoicas/almacen-api/internal/application/dto"
	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
	"github.com/jhoicas/almacen-api/pkg/logger"
)

// ProductUseCase casos de uso CRUD para productos.
// La baja de un producto es un borrado en dos fases explícito: primero sus
// entradas de historial y filas de stock, después el producto. La política
// vive aquí y no en cascadas de la base de datos para que sea visible y testeable.
type ProductUseCase struct {
	repo        repository.ProductRepository
	stockRepo   repository.StockRepository
	historyRepo repository.StockHistoryRepository
	log         *logger.Logger
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository, stockRepo repository.StockRepository, historyRepo repository.StockHistoryRepository, log *logger.Logger) *ProductUseCase {
	return &ProductUseCase{repo: repo, stockRepo: stockRepo, historyRepo: historyRepo, log: log}
}

// Create crea un producto. Si ya existe uno con el mismo código QR lo devuelve
// sin crear duplicado (alta idempotente, necesaria para el flujo del escáner móvil).
func (uc *ProductUseCase) Create(in dto.CreateProductRequest) (*dto.ProductResponse, bool, error) {
	existing, err := uc.repo.GetByQRCode(in.QRCode)
	if err != nil {
		return nil, false, err
	}
	if existing != nil {
		return toProductResponse(existing), false, nil
	}
	product := &entity.Product{
		Name:        in.Name,
		QRCode:      in.QRCode,
		Description: in.Description,
		CreatedAt:   time.Now(),
	}
	if err := uc.repo.Create(product); err != nil {
		return nil, false, err
	}
	return toProductResponse(product), true, nil
}

// GetByQRCode resuelve un código escaneado. nil si no hay producto con ese código.
func (uc *ProductUseCase) GetByQRCode(qrCode string) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByQRCode(qrCode)
	if err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// List lista productos ordenados por nombre.
func (uc *ProductUseCase) List() ([]dto.ProductResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toProductResponse(p))
	}
	return items, nil
}

// ListWithTotals lista productos con el total de unidades en todas las ubicaciones.
func (uc *ProductUseCase) ListWithTotals() ([]dto.ProductWithTotalResponse, error) {
	list, err := uc.repo.ListWithTotals()
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductWithTotalResponse, 0, len(list))
	for _, p := range list {
		items = append(items, dto.ProductWithTotalResponse{
			ProductResponse: *toProductResponse(&p.Product),
			TotalQuantity:   p.TotalQuantity,
		})
	}
	return items, nil
}

// Update actualiza un producto; campos nil no se tocan. nil si no existe.
func (uc *ProductUseCase) Update(id int64, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	if in.Name != nil {
		product.Name = *in.Name
	}
	if in.QRCode != nil {
		product.QRCode = *in.QRCode
	}
	if in.Description != nil {
		product.Description = *in.Description
	}
	if err := uc.repo.Update(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// Delete elimina un producto en dos fases: historial y stock primero, producto después.
// Los fallos de limpieza se loguean y no abortan la baja (si la DB ya tiene
// ON DELETE CASCADE, las fases previas son no-ops).
func (uc *ProductUseCase) Delete(id int64) error {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if product == nil {
		return domain.ErrNotFound
	}
	if err := uc.historyRepo.DeleteByProduct(id); err != nil {
		uc.log.Warn().Err(err).Int64("product_id", id).Msg("no se pudo limpiar el historial del producto")
	}
	if err := uc.stockRepo.DeleteByProduct(id); err != nil {
		uc.log.Warn().Err(err).Int64("product_id", id).Msg("no se pudo limpiar el stock del producto")
	}
	return uc.repo.Delete(id)
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	if p == nil {
		return nil
	}
	return &dto.ProductResponse{
		ID:          p.ID,
		Name:        p.Name,
		QRCode:      p.QRCode,
		Description: p.Description,
		CreatedAt:   p.CreatedAt,
	}
}
