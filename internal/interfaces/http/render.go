package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/billed/internal/application/store"
	"github.com/jhoicas/billed/internal/interfaces/http/views"
)

func renderHTML(c *fiber.Ctx, status int, html string, err error) error {
	if err != nil {
		return err
	}
	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return c.Status(status).SendString(html)
}

func renderError(c *fiber.Ctx, layout views.Layout, status int, message string) error {
	html, err := views.ErrorPage(layout, message)
	return renderHTML(c, status, html, err)
}

// renderStoreError muestra la página de error con el mensaje del almacén ("Erreur 404").
func renderStoreError(c *fiber.Ctx, layout views.Layout, err error) error {
	te := store.AsTransportError(err)
	return renderError(c, layout, te.Status, te.Error())
}

// storeErrorCode código de ErrorResponse según el status del almacén.
func storeErrorCode(status int) string {
	switch status {
	case fiber.StatusNotFound:
		return "NOT_FOUND"
	case fiber.StatusConflict:
		return "CONFLICT"
	case fiber.StatusForbidden:
		return "FORBIDDEN"
	case fiber.StatusUnauthorized:
		return "UNAUTHORIZED"
	case fiber.StatusBadRequest:
		return "VALIDATION"
	default:
		return "INTERNAL"
	}
}
