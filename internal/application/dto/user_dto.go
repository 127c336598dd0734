package dto

import "time"

// RegisterRequest alta de usuario (seed y administración).
type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Type     string `json:"type"` // Employee | Admin; vacío = Employee
}

// UserResponse salida de un usuario (sin password).
type UserResponse struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Type      string    `json:"type"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

// LoginRequest entrada del formulario de login (o del API).
type LoginRequest struct {
	Email    string `json:"email" form:"email"`
	Password string `json:"password" form:"password"`
	Type     string `json:"type" form:"type"`
}

// LoginResponse token de sesión + usuario.
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}
