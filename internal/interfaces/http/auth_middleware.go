package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/billed/internal/application/auth"
	"github.com/jhoicas/billed/internal/application/dto"
	"github.com/jhoicas/billed/internal/application/routes"
	"github.com/jhoicas/billed/internal/application/session"
	"github.com/jhoicas/billed/internal/interfaces/http/views"
)

// Locals y cookie de la sesión.
const (
	LocalSession  = "session"
	SessionCookie = "billed_session"
)

// AuthMiddleware valida el Bearer Token JWT del API y deja la sesión en c.Locals.
func AuthMiddleware(uc *auth.AuthUseCase) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "Authorization header requerido"})
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "formato: Bearer <token>"})
		}
		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "token vacío"})
		}
		sess, err := uc.SessionFromToken(tokenString)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "token inválido o expirado"})
		}
		c.Locals(LocalSession, sess)
		return c.Next()
	}
}

// SessionMiddleware lee la cookie de sesión de las páginas. Sin sesión válida
// redirige a la página de login.
func SessionMiddleware(uc *auth.AuthUseCase) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := c.Cookies(SessionCookie)
		if token == "" {
			return c.Redirect(routes.Login, fiber.StatusSeeOther)
		}
		sess, err := uc.SessionFromToken(token)
		if err != nil {
			c.ClearCookie(SessionCookie)
			return c.Redirect(routes.Login, fiber.StatusSeeOther)
		}
		c.Locals(LocalSession, sess)
		return c.Next()
	}
}

// RequireEmployee restringe las páginas del empleado.
func RequireEmployee() fiber.Handler {
	return func(c *fiber.Ctx) error {
		sess := GetSession(c)
		if !sess.IsEmployee() {
			return renderError(c, views.Layout{Email: sess.Email}, fiber.StatusForbidden, "Erreur 403")
		}
		return c.Next()
	}
}

// GetSession devuelve la sesión del contexto (después de los middlewares de auth).
func GetSession(c *fiber.Ctx) session.Session {
	v := c.Locals(LocalSession)
	if v == nil {
		return session.Session{}
	}
	s, _ := v.(session.Session)
	return s
}
