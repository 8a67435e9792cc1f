package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/smartclinic/clinic-api/internal/core/domain"
)

// errorResponse is the canonical error envelope for all API errors.
type errorResponse struct {
	Error string `json:"error"`
}

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Maps known domain errors to their appropriate HTTP status codes.
//   - Logs unexpected errors internally without leaking details to the client.
//   - Renders a consistent JSON envelope: {"error": "<message>"}.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code, msg := resolveError(err, log, c)
		_ = c.JSON(code, errorResponse{Error: msg})
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context) (int, string) {
	// Echo's own errors (bind failures, 404 from router, middleware rejections).
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, fmt.Sprintf("%v", he.Message)
	}

	switch {
	case errors.Is(err, domain.ErrAppointmentNotFound),
		errors.Is(err, domain.ErrDoctorNotFound),
		errors.Is(err, domain.ErrPatientNotFound),
		errors.Is(err, domain.ErrPrescriptionNotFound):
		return http.StatusNotFound, rootMessage(err)
	case errors.Is(err, domain.ErrDoctorExists),
		errors.Is(err, domain.ErrPatientExists),
		errors.Is(err, domain.ErrAdminExists),
		errors.Is(err, domain.ErrPrescriptionExists),
		errors.Is(err, domain.ErrSlotUnavailable):
		return http.StatusConflict, rootMessage(err)
	case errors.Is(err, domain.ErrPastOrPresent),
		errors.Is(err, domain.ErrStatusOutOfRange),
		errors.Is(err, domain.ErrMissingReference),
		errors.Is(err, domain.ErrInvalidDate),
		errors.Is(err, domain.ErrInvalidFilter):
		return http.StatusBadRequest, err.Error()
	case errors.Is(err, domain.ErrInvalidTransition):
		return http.StatusUnprocessableEntity, err.Error()
	case errors.Is(err, domain.ErrInvalidCredentials):
		return http.StatusUnauthorized, "invalid credentials"
	case errors.Is(err, domain.ErrUnauthorized):
		return http.StatusUnauthorized, "not authorized"
	case errors.Is(err, domain.ErrForbidden):
		return http.StatusForbidden, "access forbidden"
	}

	// Unexpected error: log the real cause, return a generic message.
	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	return http.StatusInternalServerError, "internal server error"
}

// rootMessage strips wrapping context so store details do not reach clients.
func rootMessage(err error) string {
	for {
		next := errors.Unwrap(err)
		if next == nil {
			return err.Error()
		}
		err = next
	}
}
