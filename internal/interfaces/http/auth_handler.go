package http

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/billed/internal/application/auth"
	"github.com/jhoicas/billed/internal/application/dto"
	"github.com/jhoicas/billed/internal/application/routes"
	"github.com/jhoicas/billed/internal/domain"
	"github.com/jhoicas/billed/internal/domain/entity"
	"github.com/jhoicas/billed/internal/interfaces/http/views"
)

// AuthHandler maneja la conexión del empleado (página y API).
type AuthHandler struct {
	uc           *auth.AuthUseCase
	secureCookie bool
}

// NewAuthHandler construye el handler de auth.
func NewAuthHandler(uc *auth.AuthUseCase, secureCookie bool) *AuthHandler {
	return &AuthHandler{uc: uc, secureCookie: secureCookie}
}

// LoginPage muestra el formulario de conexión.
func (h *AuthHandler) LoginPage(c *fiber.Ctx) error {
	html, err := views.LoginUI(views.LoginPage{})
	return renderHTML(c, fiber.StatusOK, html, err)
}

// Login valida el formulario, guarda el token en la cookie de sesión y navega al listado.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return h.loginFailed(c, fiber.StatusBadRequest, "", "formulario inválido")
	}
	if in.Email == "" || in.Password == "" {
		return h.loginFailed(c, fiber.StatusBadRequest, in.Email, "email y password son requeridos")
	}
	in.Type = entity.UserTypeEmployee
	out, err := h.uc.Login(c.UserContext(), in)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrUserNotFound), errors.Is(err, domain.ErrUnauthorized):
			return h.loginFailed(c, fiber.StatusUnauthorized, in.Email, "credenciales inválidas")
		case errors.Is(err, domain.ErrForbidden):
			return h.loginFailed(c, fiber.StatusForbidden, in.Email, "cuenta inactiva o suspendida")
		}
		return err
	}
	c.Cookie(&fiber.Cookie{
		Name:     SessionCookie,
		Value:    out.Token,
		Path:     "/",
		Expires:  time.Now().Add(time.Duration(h.uc.ExpMinutes()) * time.Minute),
		HTTPOnly: true,
		Secure:   h.secureCookie,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
	return c.Redirect(routes.Bills, fiber.StatusSeeOther)
}

// Logout borra la cookie de sesión.
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	c.ClearCookie(SessionCookie)
	return c.Redirect(routes.Login, fiber.StatusSeeOther)
}

func (h *AuthHandler) loginFailed(c *fiber.Ctx, status int, email, msg string) error {
	html, err := views.LoginUI(views.LoginPage{Email: email, Error: msg})
	return renderHTML(c, status, html, err)
}

// APILogin godoc
// @Summary      Iniciar sesión (API del almacén)
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LoginRequest  true  "email, password"
// @Success      200   {object}  dto.LoginResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Router       /api/auth/login [post]
func (h *AuthHandler) APILogin(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Email == "" || in.Password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "email y password son requeridos"})
	}
	out, err := h.uc.Login(c.UserContext(), in)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) || errors.Is(err, domain.ErrUnauthorized) {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "credenciales inválidas"})
		}
		if errors.Is(err, domain.ErrForbidden) {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "cuenta inactiva o suspendida"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
