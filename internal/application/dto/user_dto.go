package dto

// CreateUserRequest body para POST /api/admin/users.
type CreateUserRequest struct {
	Username  string `json:"username"`
	Password  string `json:"password"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Role      string `json:"role"`
	Active    bool   `json:"active"`
}

// UpdateUserRequest body para PUT /api/admin/users/:id.
// Password vacío conserva la contraseña actual.
type UpdateUserRequest struct {
	Username  *string `json:"username"`
	Password  string  `json:"password"`
	FirstName *string `json:"first_name"`
	LastName  *string `json:"last_name"`
	Role      *string `json:"role"`
	Active    *bool   `json:"active"`
}
