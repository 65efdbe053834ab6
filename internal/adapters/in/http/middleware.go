package http

import (
	"log/slog"
	"time"

	"fulfillment/internal/logging"

	"github.com/labstack/echo/v4"
)

// HTTPRecorder receives one observation per request.
type HTTPRecorder interface {
	ObserveHTTP(method, path string, status int, elapsed time.Duration)
}

// RequestLogger stores a logger tagged with the request id in the request
// context and logs every completed request.
func RequestLogger(base *slog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			req := c.Request()

			logger := base.With("request_id", c.Response().Header().Get(echo.HeaderXRequestID))
			ctx := logging.WithCtx(req.Context(), logger)
			c.SetRequest(req.WithContext(ctx))

			if err := next(c); err != nil {
				c.Error(err)
			}

			logger.InfoContext(ctx, "HTTP request",
				"method", req.Method,
				"path", routePath(c),
				"status", c.Response().Status,
				"duration_ms", time.Since(start).Milliseconds(),
			)
			return nil
		}
	}
}

// Metrics records method, route, status and latency of every request.
func Metrics(recorder HTTPRecorder) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)
			if err != nil {
				c.Error(err)
			}
			recorder.ObserveHTTP(c.Request().Method, routePath(c), c.Response().Status, time.Since(start))
			return nil
		}
	}
}

// routePath is the registered route, which keeps metric labels bounded.
func routePath(c echo.Context) string {
	if p := c.Path(); p != "" {
		return p
	}
	return "unmatched"
}
