package dto

import "time"

// HistoryEntryResponse entrada del historial con nombres resueltos.
// Cantidad sin signo; el sentido lo dan kind y from/to.
type HistoryEntryResponse struct {
	ID               int64     `json:"id"`
	ProductID        int64     `json:"product_id"`
	ProductName      string    `json:"product_name"`
	FromLocationID   *int64    `json:"from_location_id"`
	FromLocationName *string   `json:"from_location_name"`
	ToLocationID     *int64    `json:"to_location_id"`
	ToLocationName   *string   `json:"to_location_name"`
	Quantity         int64     `json:"quantity"`
	Kind             string    `json:"kind"`
	UserID           *int64    `json:"user_id"`
	UserName         *string   `json:"user_name"`
	CreatedAt        time.Time `json:"created_at"`
}

// StatsResponse agregados del panel admin.
type StatsResponse struct {
	TotalProducts  int64 `json:"total_products"`
	ActiveUsers    int64 `json:"active_users"`
	TotalLocations int64 `json:"total_locations"`
	TotalUnits     int64 `json:"total_units"`
}
