package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/labstack/echo/v4"
	echoMw "github.com/labstack/echo/v4/middleware"
)

// HeaderAPIKey is the header clients authenticate with.
const HeaderAPIKey = "X-API-Key"

// APIKeyAuth guards routes with a static API key. Any mismatch or missing
// header maps to 403 before a handler runs.
func APIKeyAuth(apiKey string) echo.MiddlewareFunc {
	return echoMw.KeyAuthWithConfig(echoMw.KeyAuthConfig{
		KeyLookup: "header:" + HeaderAPIKey,
		Validator: func(key string, c echo.Context) (bool, error) {
			return subtle.ConstantTimeCompare([]byte(key), []byte(apiKey)) == 1, nil
		},
		ErrorHandler: func(err error, c echo.Context) error {
			return echo.NewHTTPError(http.StatusForbidden, "invalid API key")
		},
	})
}
