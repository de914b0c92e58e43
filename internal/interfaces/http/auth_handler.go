package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/crm-ventas-api/internal/application/auth"
	"github.com/jhoicas/crm-ventas-api/internal/application/dto"
)

// AuthHandler maneja el login.
type AuthHandler struct {
	uc *auth.AuthUseCase
}

// NewAuthHandler construye el handler.
func NewAuthHandler(uc *auth.AuthUseCase) *AuthHandler {
	return &AuthHandler{uc: uc}
}

// Login godoc
// @Summary      Iniciar sesión
// @Description  Credenciales incorrectas responden 200 con success=false. Con JWT configurado se incluye token.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      dto.LoginRequest  true  "Credenciales"
// @Success      200   {object}  dto.LoginResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      500   {object}  dto.ErrorResponse
// @Router       /api/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := parseBody(c, &in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.Login(c.UserContext(), in)
	if err != nil {
		return writeError(c, err, messages{})
	}
	return c.JSON(out)
}
