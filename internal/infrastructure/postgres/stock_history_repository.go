package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

var _ repository.StockHistoryRepository = (*StockHistoryRepo)(nil)

// StockHistoryRepo implementación de StockHistoryRepository sobre PostgreSQL.
type StockHistoryRepo struct {
	q Querier
}

func NewStockHistoryRepository(q Querier) *StockHistoryRepo {
	return &StockHistoryRepo{q: q}
}

// Create inserta una entrada de historial (append-only).
func (r *StockHistoryRepo) Create(entry *entity.StockHistory) error {
	query := `
		INSERT INTO stock_history (product_id, from_location_id, to_location_id, quantity, kind, user_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, now())
		RETURNING id, created_at`
	err := r.q.QueryRow(context.Background(), query,
		entry.ProductID, entry.FromLocationID, entry.ToLocationID,
		entry.Quantity, entry.Kind, entry.UserID,
	).Scan(&entry.ID, &entry.CreatedAt)
	if err != nil {
		return fmt.Errorf("create stock history: %w", err)
	}
	return nil
}

// List entradas más recientes primero, con nombres resueltos. Los LEFT JOIN
// cubren entradas con ubicaciones de un solo lado (IN/OUT) y usuario anulado.
func (r *StockHistoryRepo) List(limit, offset int) ([]*entity.StockHistoryDetail, error) {
	query := `
		SELECT h.id, h.product_id, h.from_location_id, h.to_location_id, h.quantity,
		       h.kind, h.user_id, h.created_at,
		       p.name, lf.name, lt.name, u.username
		FROM stock_history h
		JOIN products p ON p.id = h.product_id
		LEFT JOIN locations lf ON lf.id = h.from_location_id
		LEFT JOIN locations lt ON lt.id = h.to_location_id
		LEFT JOIN users u ON u.id = h.user_id
		ORDER BY h.created_at DESC, h.id DESC
		LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list stock history: %w", err)
	}
	defer rows.Close()

	var list []*entity.StockHistoryDetail
	for rows.Next() {
		var d entity.StockHistoryDetail
		if err := rows.Scan(&d.ID, &d.ProductID, &d.FromLocationID, &d.ToLocationID,
			&d.Quantity, &d.Kind, &d.UserID, &d.CreatedAt,
			&d.ProductName, &d.FromLocationName, &d.ToLocationName, &d.UserName); err != nil {
			return nil, fmt.Errorf("scan stock history: %w", err)
		}
		list = append(list, &d)
	}
	return list, rows.Err()
}

// DetachUser anula user_id en las entradas del usuario (baja de usuario).
func (r *StockHistoryRepo) DetachUser(userID int64) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE stock_history SET user_id = NULL WHERE user_id = $1`, userID)
	if err != nil {
		return fmt.Errorf("detach user from history: %w", err)
	}
	return nil
}

// DeleteByProduct elimina las entradas de un producto (baja de producto).
func (r *StockHistoryRepo) DeleteByProduct(productID int64) error {
	_, err := r.q.Exec(context.Background(),
		`DELETE FROM stock_history WHERE product_id = $1`, productID)
	if err != nil {
		return fmt.Errorf("delete history by product: %w", err)
	}
	return nil
}
