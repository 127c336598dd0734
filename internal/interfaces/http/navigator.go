package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/billed/internal/application/routes"
	"github.com/jhoicas/billed/internal/domain"
)

// redirectNavigator registra el destino pedido por la página; el handler lo
// traduce después en un 303 See Other.
type redirectNavigator struct {
	target string
}

func (n *redirectNavigator) Navigate(path string) error {
	switch path {
	case routes.Login, routes.Bills, routes.NewBill, routes.Dashboard:
		n.target = path
		return nil
	}
	return fmt.Errorf("%w: ruta desconocida %q", domain.ErrInvalidInput, path)
}

// redirect aplica la navegación pendiente. Sin navegación responde 204.
func (n *redirectNavigator) redirect(c *fiber.Ctx) error {
	if n.target == "" {
		return c.SendStatus(fiber.StatusNoContent)
	}
	return c.Redirect(n.target, fiber.StatusSeeOther)
}
