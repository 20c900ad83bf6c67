package repository

// Stats agregados del panel admin.
type Stats struct {
	TotalProducts  int64
	ActiveUsers    int64
	TotalLocations int64
	TotalUnits     int64 // SUM(quantity) sobre todo el libro de stock
}

// StatsRepository define el puerto de consultas agregadas (solo lectura).
type StatsRepository interface {
	Get() (*Stats, error)
}
