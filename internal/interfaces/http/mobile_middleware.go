package http

import (
	"crypto/subtle"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/almacen-api/internal/application/dto"
)

// HeaderMobileAppKey cabecera de autenticación del canal móvil.
const HeaderMobileAppKey = "X-Mobile-App-Key"

// MobileKeyMiddleware autentica el canal móvil por clave compartida de la app.
// Las rutas móviles no llevan JWT: el escáner opera sin sesión de usuario y
// sus movimientos se registran sin usuario ejecutor.
func MobileKeyMiddleware(appKey string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if appKey == "" {
			// Canal deshabilitado si no hay clave configurada.
			return c.Status(fiber.StatusServiceUnavailable).JSON(dto.ErrorResponse{Code: "MOBILE_DISABLED", Message: "canal móvil no configurado"})
		}
		got := c.Get(HeaderMobileAppKey)
		if subtle.ConstantTimeCompare([]byte(got), []byte(appKey)) != 1 {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_APP_KEY", Message: "clave de aplicación inválida"})
		}
		return c.Next()
	}
}
