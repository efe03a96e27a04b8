package dto

// UserCreateRequest body for POST /api/admin/users (manager only).
type UserCreateRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required,min=6"`
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Role     string `json:"role" validate:"required,oneof=manager accountant employee"`
	Active   *bool  `json:"active,omitempty"`
}

// UserUpdateRequest body for PUT /api/admin/users/:id. Empty fields are left
// untouched.
type UserUpdateRequest struct {
	Name     string `json:"name,omitempty"`
	Email    string `json:"email,omitempty" validate:"omitempty,email"`
	Role     string `json:"role,omitempty" validate:"omitempty,oneof=manager accountant employee"`
	Password string `json:"password,omitempty" validate:"omitempty,min=6"`
	Active   *bool  `json:"active,omitempty"`
}
