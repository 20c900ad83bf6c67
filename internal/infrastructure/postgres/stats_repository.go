package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

var _ repository.StatsRepository = (*StatsRepo)(nil)

// StatsRepo consultas agregadas del panel admin (solo lectura).
type StatsRepo struct {
	q Querier
}

func NewStatsRepository(q Querier) *StatsRepo {
	return &StatsRepo{q: q}
}

// Get calcula los agregados en una sola consulta.
func (r *StatsRepo) Get() (*repository.Stats, error) {
	query := `
		SELECT
			(SELECT COUNT(*) FROM products),
			(SELECT COUNT(*) FROM users WHERE active),
			(SELECT COUNT(*) FROM locations),
			(SELECT COALESCE(SUM(quantity), 0) FROM stock)`
	var s repository.Stats
	err := r.q.QueryRow(context.Background(), query).Scan(
		&s.TotalProducts, &s.ActiveUsers, &s.TotalLocations, &s.TotalUnits,
	)
	if err != nil {
		return nil, fmt.Errorf("get stats: %w", err)
	}
	return &s, nil
}
