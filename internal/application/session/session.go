// Package session modela el usuario conectado que cada página recibe
// explícitamente en su constructor.
package session

import (
	"errors"

	"github.com/jhoicas/billed/internal/domain/entity"
)

// ErrNoSession no hay usuario conectado.
var ErrNoSession = errors.New("sesión inexistente")

// Session usuario actual (solo lectura desde las páginas).
type Session struct {
	UserID string
	Email  string
	Type   string
}

// IsEmployee indica si la sesión pertenece a un empleado.
func (s Session) IsEmployee() bool {
	return s.Type == entity.UserTypeEmployee
}

// Valid indica si la sesión tiene los datos mínimos.
func (s Session) Valid() bool {
	return s.Email != "" && s.Type != ""
}
