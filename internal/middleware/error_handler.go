package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/luis-duque-azumo/reservation-api/internal/dto"
)

// ErrorHandler renders every error as a {"message": ...} body so clients see
// one error shape regardless of where the failure originated.
func ErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	code := http.StatusInternalServerError
	message := "internal server error"

	if he, ok := err.(*echo.HTTPError); ok {
		code = he.Code
		if m, ok := he.Message.(string); ok {
			message = m
		}
	}

	if c.Request().Method == http.MethodHead {
		_ = c.NoContent(code)
		return
	}
	_ = c.JSON(code, dto.ErrorResponse{Message: message})
}
