package http

import "github.com/clubnatacion/swimclub-backend/internal/auth/domain"

type SetRoleRequest struct {
	Role     domain.Role `json:"role" binding:"required"`
	Approved bool        `json:"approved"`
}

type UpdateProfileRequest struct {
	Phone    *string  `json:"phone,omitempty"`
	Courses  []string `json:"courses,omitempty"`
	PhotoURL *string  `json:"photoUrl,omitempty"`
}
