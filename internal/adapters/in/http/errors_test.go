package http

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"logistics/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func TestNotFoundMessage(t *testing.T) {
	tests := []struct {
		param string
		want  string
	}{
		{"order_id", "Order not found"},
		{"worker_id", "Worker not found"},
		{"fk_orders_address", "Resource not found"},
		{"", "Resource not found"},
	}

	for _, tt := range tests {
		t.Run(tt.param, func(t *testing.T) {
			assert.Equal(t, tt.want, notFoundMessage(tt.param))
		})
	}
}

func TestToResponse(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
		body   ErrorResponse
	}{
		{
			name:   "echo error keeps code",
			err:    echo.NewHTTPError(http.StatusMethodNotAllowed, "nope"),
			status: http.StatusMethodNotAllowed,
			body:   ErrorResponse{Error: "nope"},
		},
		{
			name:   "wrapped authorization",
			err:    fmt.Errorf("gate: %w", errs.NewAuthorizationError("")),
			status: http.StatusForbidden,
			body:   ErrorResponse{Error: "gate: Unauthorized access"},
		},
		{
			name:   "value object falls back to param name",
			err:    errs.NewValueIsRequiredError("price"),
			status: http.StatusBadRequest,
			body:   ErrorResponse{Error: "value is required: price", Field: "price"},
		},
		{
			name: "joined validation errors",
			err: errors.Join(
				errs.NewFieldValidationError("Price must be positive", "price"),
				errs.NewFieldValidationError("Delivery must follow pickup", "delivery_time"),
			),
			status: http.StatusBadRequest,
			body: ErrorResponse{
				Error: "Price must be positive; Delivery must follow pickup",
				Field: "price",
			},
		},
		{
			name:   "unknown",
			err:    errors.New("boom"),
			status: http.StatusInternalServerError,
			body:   ErrorResponse{Error: "Internal server error"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, body := toResponse(tt.err)
			assert.Equal(t, tt.status, status)
			assert.Equal(t, tt.body, body)
		})
	}
}
