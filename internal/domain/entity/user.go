package entity

import "time"

// Tipos de usuario.
const (
	UserTypeEmployee = "Employee"
	UserTypeAdmin    = "Admin"
)

// User representa un usuario de la aplicación (empleado o administrador).
type User struct {
	ID           string
	Email        string
	PasswordHash string // bcrypt hash
	Type         string // Employee, Admin
	Status       string // active, inactive
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
