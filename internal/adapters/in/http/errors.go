package http

import (
	"errors"
	"net/http"

	"fulfillment/internal/core/domain/services"
	"fulfillment/internal/logging"
	"fulfillment/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

const internalErrorMessage = "Internal server error"

// StatusFor maps an application error to its HTTP status.
func StatusFor(err error) int {
	switch {
	case errors.Is(err, services.ErrNoStoreAvailable):
		return http.StatusNotFound
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, errs.ErrAccessDenied):
		return http.StatusForbidden
	case errors.Is(err, errs.ErrInvalidTransition),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// messageFor is the client facing text of a mapped error.
func messageFor(err error) string {
	var (
		notFound   *errs.ObjectNotFoundError
		transition *errs.InvalidTransitionError
	)
	switch {
	case errors.Is(err, services.ErrNoStoreAvailable):
		return "No stores available in your area"
	case errors.As(err, &notFound):
		if notFound.Cause != nil {
			return notFound.Cause.Error()
		}
		return notFound.ParamName + " not found"
	case errors.As(err, &transition) && transition.Reason != "":
		return transition.Reason
	case errors.Is(err, errs.ErrAccessDenied):
		return "You do not have access to this resource"
	}
	return err.Error()
}

// writeError renders err with the envelope. Unmapped errors are logged and
// reported generically; their text is exposed only outside production.
func (s *Server) writeError(c echo.Context, err error) error {
	status := StatusFor(err)
	if status != http.StatusInternalServerError {
		return fail(c, status, messageFor(err), "")
	}

	ctx := c.Request().Context()
	logging.FromCtx(ctx).ErrorContext(ctx, "Request failed", "path", c.Path(), "error", err)

	detail := ""
	if s.exposeErrors {
		detail = err.Error()
	}
	return fail(c, status, internalErrorMessage, detail)
}

// HTTPErrorHandler renders errors raised by echo itself (unknown routes,
// middleware rejections) with the same envelope.
func (s *Server) HTTPErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	var he *echo.HTTPError
	if errors.As(err, &he) {
		message := http.StatusText(he.Code)
		if m, ok := he.Message.(string); ok {
			message = m
		}
		_ = fail(c, he.Code, message, "")
		return
	}

	_ = s.writeError(c, err)
}
