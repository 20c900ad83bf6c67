package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación de ProductRepository sobre PostgreSQL.
type ProductRepo struct {
	q Querier
}

func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

func (r *ProductRepo) Create(product *entity.Product) error {
	query := `
		INSERT INTO products (name, qr_code, description, created_at)
		VALUES ($1, $2, $3, now())
		RETURNING id, created_at`
	err := r.q.QueryRow(context.Background(), query,
		product.Name, product.QRCode, product.Description,
	).Scan(&product.ID, &product.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("create product: %w", err)
	}
	return nil
}

func (r *ProductRepo) GetByID(id int64) (*entity.Product, error) {
	query := `SELECT id, name, qr_code, description, created_at FROM products WHERE id = $1`
	var p entity.Product
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&p.ID, &p.Name, &p.QRCode, &p.Description, &p.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return &p, nil
}

// GetByQRCode resolución de código escaneado. nil si no existe.
func (r *ProductRepo) GetByQRCode(qrCode string) (*entity.Product, error) {
	query := `SELECT id, name, qr_code, description, created_at FROM products WHERE qr_code = $1`
	var p entity.Product
	err := r.q.QueryRow(context.Background(), query, qrCode).Scan(
		&p.ID, &p.Name, &p.QRCode, &p.Description, &p.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product by qr: %w", err)
	}
	return &p, nil
}

func (r *ProductRepo) List() ([]*entity.Product, error) {
	query := `SELECT id, name, qr_code, description, created_at FROM products ORDER BY name ASC`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()

	var list []*entity.Product
	for rows.Next() {
		var p entity.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.QRCode, &p.Description, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

// ListWithTotals productos con la suma de cantidades en todas las ubicaciones.
// Productos sin stock salen con total 0 (LEFT JOIN + COALESCE).
func (r *ProductRepo) ListWithTotals() ([]*entity.ProductWithTotal, error) {
	query := `
		SELECT p.id, p.name, p.qr_code, p.description, p.created_at,
		       COALESCE(SUM(s.quantity), 0) AS total
		FROM products p
		LEFT JOIN stock s ON s.product_id = p.id
		GROUP BY p.id
		ORDER BY p.name ASC`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list products with totals: %w", err)
	}
	defer rows.Close()

	var list []*entity.ProductWithTotal
	for rows.Next() {
		var p entity.ProductWithTotal
		if err := rows.Scan(&p.ID, &p.Name, &p.QRCode, &p.Description, &p.CreatedAt, &p.TotalQuantity); err != nil {
			return nil, fmt.Errorf("scan product with total: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

func (r *ProductRepo) Update(product *entity.Product) error {
	query := `UPDATE products SET name = $1, qr_code = $2, description = $3 WHERE id = $4`
	tag, err := r.q.Exec(context.Background(), query,
		product.Name, product.QRCode, product.Description, product.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update product: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *ProductRepo) Delete(id int64) error {
	tag, err := r.q.Exec(context.Background(), `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
