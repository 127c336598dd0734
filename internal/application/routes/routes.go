// Package routes contiene la tabla de rutas de las páginas y el contrato de navegación.
package routes

// Rutas de las páginas.
const (
	Login     = "/"
	Bills     = "/employee/bills"
	NewBill   = "/employee/bill/new"
	Dashboard = "/admin/dashboard"
)

// Navigator cambia la página visible. En HTTP se traduce en una redirección.
type Navigator interface {
	Navigate(path string) error
}

// NavigatorFunc adapta una función a Navigator.
type NavigatorFunc func(path string) error

// Navigate implementa Navigator.
func (f NavigatorFunc) Navigate(path string) error { return f(path) }
