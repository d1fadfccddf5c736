package middleware

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/disparador-app/disparador_api/shared"
)

type TokenVerifier interface {
	ExtractTokenFromHeader(authHeader string) (string, error)
	VerifyJWTToken(token string) (string, error)
}

// RequiredAuth verifies the bearer token and stores the device id in locals.
func RequiredAuth(jwtSvc TokenVerifier) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get(fiber.HeaderAuthorization)
		token, err := jwtSvc.ExtractTokenFromHeader(authHeader)
		if err != nil {
			return shared.ResponseJSON(c, http.StatusUnauthorized, "Unauthorized", err.Error())
		}

		deviceID, err := jwtSvc.VerifyJWTToken(token)
		if err != nil {
			return shared.ResponseJSON(c, http.StatusUnauthorized, "Unauthorized", "Invalid JWT token")
		}

		if deviceID == "" {
			return shared.ResponseJSON(c, http.StatusUnauthorized, "Unauthorized", "Invalid device ID in token")
		}

		c.Locals(shared.DeviceID, deviceID)
		return c.Next()
	}
}
