package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

var _ repository.StockRepository = (*StockRepo)(nil)

// StockRepo implementación de StockRepository sobre PostgreSQL (usable con pool o tx).
type StockRepo struct {
	q Querier
}

// NewStockRepository construye el adaptador de stock. Pasar pool o tx (Querier).
func NewStockRepository(q Querier) *StockRepo {
	return &StockRepo{q: q}
}

// Get obtiene la fila de stock; si no existe devuelve cantidad 0 (ausencia == cero).
func (r *StockRepo) Get(productID, locationID int64) (*entity.Stock, error) {
	query := `
		SELECT id, product_id, location_id, quantity, updated_at
		FROM stock WHERE product_id = $1 AND location_id = $2`
	var s entity.Stock
	err := r.q.QueryRow(context.Background(), query, productID, locationID).Scan(
		&s.ID, &s.ProductID, &s.LocationID, &s.Quantity, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return &entity.Stock{ProductID: productID, LocationID: locationID}, nil
		}
		return nil, fmt.Errorf("get stock: %w", err)
	}
	return &s, nil
}

// GetForUpdate obtiene la fila y la bloquea para update (SELECT FOR UPDATE).
func (r *StockRepo) GetForUpdate(productID, locationID int64) (*entity.Stock, error) {
	query := `
		SELECT id, product_id, location_id, quantity, updated_at
		FROM stock WHERE product_id = $1 AND location_id = $2
		FOR UPDATE`
	var s entity.Stock
	err := r.q.QueryRow(context.Background(), query, productID, locationID).Scan(
		&s.ID, &s.ProductID, &s.LocationID, &s.Quantity, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return &entity.Stock{ProductID: productID, LocationID: locationID}, nil
		}
		return nil, fmt.Errorf("get stock for update: %w", err)
	}
	return &s, nil
}

// Upsert inserta o fija la cantidad de la fila (por producto y ubicación).
func (r *StockRepo) Upsert(stock *entity.Stock) error {
	query := `
		INSERT INTO stock (product_id, location_id, quantity, updated_at)
		VALUES ($1, $2, $3, now())
		ON CONFLICT (product_id, location_id)
		DO UPDATE SET quantity = EXCLUDED.quantity, updated_at = now()`
	_, err := r.q.Exec(context.Background(), query, stock.ProductID, stock.LocationID, stock.Quantity)
	if err != nil {
		return fmt.Errorf("upsert stock: %w", err)
	}
	return nil
}

// Increment suma delta de forma atómica, creando la fila si no existe.
// El incremento es relativo en el propio UPDATE para que dos entradas
// concurrentes sobre la misma fila no se pisen.
func (r *StockRepo) Increment(productID, locationID, delta int64) error {
	query := `
		INSERT INTO stock (product_id, location_id, quantity, updated_at)
		VALUES ($1, $2, $3, now())
		ON CONFLICT (product_id, location_id)
		DO UPDATE SET quantity = stock.quantity + EXCLUDED.quantity, updated_at = now()`
	_, err := r.q.Exec(context.Background(), query, productID, locationID, delta)
	if err != nil {
		return fmt.Errorf("increment stock: %w", err)
	}
	return nil
}

// Delete elimina la fila de stock (limpieza al llegar a cantidad 0).
func (r *StockRepo) Delete(productID, locationID int64) error {
	_, err := r.q.Exec(context.Background(),
		`DELETE FROM stock WHERE product_id = $1 AND location_id = $2`, productID, locationID)
	if err != nil {
		return fmt.Errorf("delete stock: %w", err)
	}
	return nil
}

// GetByID obtiene una fila por su id. nil si no existe.
func (r *StockRepo) GetByID(id int64) (*entity.Stock, error) {
	query := `
		SELECT id, product_id, location_id, quantity, updated_at
		FROM stock WHERE id = $1`
	var s entity.Stock
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&s.ID, &s.ProductID, &s.LocationID, &s.Quantity, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get stock by id: %w", err)
	}
	return &s, nil
}

// ListDetailed listado con nombres resueltos; locationID opcional filtra por ubicación.
func (r *StockRepo) ListDetailed(locationID *int64) ([]*entity.StockDetail, error) {
	query := `
		SELECT s.id, s.product_id, s.location_id, p.name, p.qr_code, l.name, s.quantity, s.updated_at
		FROM stock s
		JOIN products p ON p.id = s.product_id
		JOIN locations l ON l.id = s.location_id`
	args := []any{}
	if locationID != nil {
		query += " WHERE s.location_id = $1"
		args = append(args, *locationID)
	}
	query += " ORDER BY s.updated_at DESC"

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list stock: %w", err)
	}
	defer rows.Close()
	return scanStockDetails(rows)
}

// ListByProduct existencias de un producto en todas sus ubicaciones.
func (r *StockRepo) ListByProduct(productID int64) ([]*entity.StockDetail, error) {
	query := `
		SELECT s.id, s.product_id, s.location_id, p.name, p.qr_code, l.name, s.quantity, s.updated_at
		FROM stock s
		JOIN products p ON p.id = s.product_id
		JOIN locations l ON l.id = s.location_id
		WHERE s.product_id = $1
		ORDER BY l.name ASC`
	rows, err := r.q.Query(context.Background(), query, productID)
	if err != nil {
		return nil, fmt.Errorf("list stock by product: %w", err)
	}
	defer rows.Close()
	return scanStockDetails(rows)
}

// DeleteByProduct elimina todas las filas de stock de un producto.
func (r *StockRepo) DeleteByProduct(productID int64) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM stock WHERE product_id = $1`, productID)
	if err != nil {
		return fmt.Errorf("delete stock by product: %w", err)
	}
	return nil
}

func scanStockDetails(rows pgx.Rows) ([]*entity.StockDetail, error) {
	var list []*entity.StockDetail
	for rows.Next() {
		var d entity.StockDetail
		if err := rows.Scan(&d.ID, &d.ProductID, &d.LocationID, &d.ProductName, &d.QRCode,
			&d.LocationName, &d.Quantity, &d.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan stock detail: %w", err)
		}
		list = append(list, &d)
	}
	return list, rows.Err()
}
