package http

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"logistics/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// ErrorResponse is the body of every non-2xx reply.
type ErrorResponse struct {
	Error string `json:"error"`
	Field string `json:"field,omitempty"`
}

// NewErrorHandler maps the errs taxonomy onto HTTP status codes. Unknown
// errors are logged and answered with a generic 500.
func NewErrorHandler(logger *slog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		status, body := toResponse(err)
		if status == http.StatusInternalServerError {
			logger.ErrorContext(c.Request().Context(), "request failed",
				"method", c.Request().Method,
				"path", c.Path(),
				"error", err,
			)
		}

		var writeErr error
		if c.Request().Method == http.MethodHead {
			writeErr = c.NoContent(status)
		} else {
			writeErr = c.JSON(status, body)
		}
		if writeErr != nil {
			logger.Error("write error response", "error", writeErr)
		}
	}
}

func toResponse(err error) (int, ErrorResponse) {
	var httpErr *echo.HTTPError
	var notFound *errs.ObjectNotFoundError

	switch {
	case errors.As(err, &httpErr):
		msg := http.StatusText(httpErr.Code)
		if s, ok := httpErr.Message.(string); ok && s != "" {
			msg = s
		}
		return httpErr.Code, ErrorResponse{Error: msg}
	case errors.Is(err, errs.ErrAuthentication):
		return http.StatusUnauthorized, ErrorResponse{Error: err.Error()}
	case errors.Is(err, errs.ErrAuthorization):
		return http.StatusForbidden, ErrorResponse{Error: err.Error()}
	case errors.As(err, &notFound):
		return http.StatusNotFound, ErrorResponse{Error: notFoundMessage(notFound.ParamName)}
	case errs.IsValidation(err):
		return http.StatusBadRequest, ErrorResponse{
			Error: strings.ReplaceAll(err.Error(), "\n", "; "),
			Field: fieldOf(err),
		}
	default:
		return http.StatusInternalServerError, ErrorResponse{Error: "Internal server error"}
	}
}

// fieldOf prefers a ValidationError field and falls back to the parameter
// name of a rejected value object.
func fieldOf(err error) string {
	if field := errs.FieldOf(err); field != "" {
		return field
	}

	var invalid *errs.ValueIsInvalidError
	var required *errs.ValueIsRequiredError
	var outOfRange *errs.ValueIsOutOfRangeError
	switch {
	case errors.As(err, &invalid):
		return invalid.ParamName
	case errors.As(err, &required):
		return required.ParamName
	case errors.As(err, &outOfRange):
		return outOfRange.ParamName
	}
	return ""
}

// notFoundMessage turns "order_id" into "Order not found".
func notFoundMessage(param string) string {
	subject := strings.TrimSuffix(param, "_id")
	if subject == "" || strings.HasPrefix(subject, "fk_") {
		return "Resource not found"
	}
	subject = strings.ReplaceAll(subject, "_", " ")
	return strings.ToUpper(subject[:1]) + subject[1:] + " not found"
}
