package dto

import "time"

// AuthRequest body de POST /api/auth. Mode decide entre signup y login,
// como lo hacía el cliente histórico.
type AuthRequest struct {
	Mode             string `json:"mode" validate:"omitempty,oneof=login signup"`
	Email            string `json:"email" validate:"required,email"`
	Password         string `json:"password" validate:"required,min=8"`
	Name             string `json:"name"`
	OrganizationName string `json:"organizationName"`
}

// UserResponse salida de un usuario (sin hash).
type UserResponse struct {
	ID             string    `json:"id"`
	OrganizationID string    `json:"organizationId"`
	Email          string    `json:"email"`
	Name           string    `json:"name"`
	Role           string    `json:"role"`
	CreatedAt      time.Time `json:"createdAt"`
}

// AuthResponse token + usuario tras signup o login.
type AuthResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}
