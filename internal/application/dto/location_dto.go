package dto

// CreateLocationRequest body para crear ubicaciones.
type CreateLocationRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// UpdateLocationRequest body para actualizar una ubicación; campos nil no se tocan.
type UpdateLocationRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
}

// LocationResponse ubicación con la zona derivada del nombre.
type LocationResponse struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Zone        string `json:"zone,omitempty"` // "intake" | "dispatch" | vacío
}
