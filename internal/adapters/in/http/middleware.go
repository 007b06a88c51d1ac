package http

import (
	"log/slog"
	"strconv"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/user"
	"logistics/internal/core/domain/services"
	"logistics/internal/observability"
	"logistics/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

const (
	HeaderUserID   = "X-User-ID"
	HeaderUserRole = "X-User-Role"

	actorKey = "actor"
)

// Actor is the caller identity established by the upstream authenticator.
type Actor struct {
	ID   kernel.UUID
	Role user.Role
}

// Identity reads the actor from request headers. A missing or malformed
// identity is an authentication failure.
func Identity() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			rawID := c.Request().Header.Get(HeaderUserID)
			rawRole := c.Request().Header.Get(HeaderUserRole)
			if rawID == "" || rawRole == "" {
				return errs.NewAuthenticationError("Missing identity headers")
			}

			id, err := kernel.UUIDFromString(rawID)
			if err != nil {
				return errs.NewAuthenticationError("Invalid user id")
			}
			role, err := user.ParseRole(rawRole)
			if err != nil {
				return errs.NewAuthenticationError("Invalid user role")
			}

			c.Set(actorKey, Actor{ID: id, Role: role})
			return next(c)
		}
	}
}

// RequireRoles rejects actors whose role is not allowed by gate. It must
// run after Identity.
func RequireRoles(gate services.AccessGate) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			actor, ok := actorFrom(c)
			if !ok {
				return errs.NewAuthenticationError("")
			}
			if err := gate.Authorize(actor.Role); err != nil {
				return err
			}
			return next(c)
		}
	}
}

func actorFrom(c echo.Context) (Actor, bool) {
	actor, ok := c.Get(actorKey).(Actor)
	return actor, ok
}

// RequestMetrics records prometheus request counters and logs one line per
// request.
func RequestMetrics(logger *slog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)
			if err != nil {
				c.Error(err)
			}

			route := c.Path()
			status := c.Response().Status
			elapsed := time.Since(start)

			observability.HTTPRequestsTotal.WithLabelValues(c.Request().Method, route, strconv.Itoa(status)).Inc()
			observability.HTTPRequestDuration.WithLabelValues(c.Request().Method, route, strconv.Itoa(status)).
				Observe(elapsed.Seconds())

			logger.InfoContext(c.Request().Context(), "http_request",
				"method", c.Request().Method,
				"route", route,
				"status", status,
				"duration_ms", elapsed.Milliseconds(),
				"request_id", c.Response().Header().Get(echo.HeaderXRequestID),
			)
			return nil
		}
	}
}
