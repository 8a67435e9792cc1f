package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/smartclinic/clinic-api/internal/api/metrics"
	"github.com/smartclinic/clinic-api/internal/core/domain"
	"github.com/smartclinic/clinic-api/internal/core/ports"
)

const (
	ctxKeyRole    = "auth.role"
	ctxKeySubject = "auth.subject"
)

// errNotAuthorized is the only thing a client learns about a rejected token.
var errNotAuthorized = echo.NewHTTPError(http.StatusUnauthorized, "not authorized")

// Authorize admits the request when the bearer token is valid for at least one
// of roles, tried in order. The resolved caller is stored on the context.
func Authorize(gate ports.Authorizer, log zerolog.Logger, roles ...domain.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token := bearerToken(c.Request())
			ctx := c.Request().Context()

			var last domain.Outcome
			for _, role := range roles {
				outcome, err := gate.ValidateRole(ctx, token, role)
				if err != nil {
					return err
				}
				metrics.AuthValidationsTotal.WithLabelValues(role.String(), outcomeLabel(outcome)).Inc()
				if outcome.IsValid() {
					setCaller(c, outcome)
					return next(c)
				}
				last = outcome
				// Token-level failures are the same for every role.
				if outcome.Reason() != domain.ReasonNoMatchingIdentity {
					break
				}
			}

			reject(c, log, last)
			return errNotAuthorized
		}
	}
}

// AuthorizeParam takes the role from a path parameter, as the availability
// route does. Unrecognized role names are handled by the gate.
func AuthorizeParam(gate ports.Authorizer, log zerolog.Logger, param string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role := c.Param(param)
			outcome, err := gate.Validate(c.Request().Context(), bearerToken(c.Request()), role)
			if err != nil {
				return err
			}
			metrics.AuthValidationsTotal.WithLabelValues(roleLabel(role), outcomeLabel(outcome)).Inc()
			if !outcome.IsValid() {
				reject(c, log, outcome)
				return errNotAuthorized
			}
			setCaller(c, outcome)
			return next(c)
		}
	}
}

// CallerFrom returns the identity stored by Authorize or AuthorizeParam.
func CallerFrom(c echo.Context) (ports.Caller, bool) {
	role, _ := c.Get(ctxKeyRole).(domain.Role)
	subject, _ := c.Get(ctxKeySubject).(string)
	if !role.Valid() || subject == "" {
		return ports.Caller{}, false
	}
	return ports.Caller{Role: role, Subject: subject}, true
}

func setCaller(c echo.Context, o domain.Outcome) {
	c.Set(ctxKeyRole, o.Role())
	c.Set(ctxKeySubject, o.Subject())
}

// bearerToken returns the credential of an "Authorization: Bearer <token>"
// header. Any other scheme is passed through whole so it parses as malformed.
func bearerToken(r *http.Request) string {
	header := strings.TrimSpace(r.Header.Get(echo.HeaderAuthorization))
	scheme, token, found := strings.Cut(header, " ")
	if found && strings.EqualFold(scheme, "bearer") {
		return strings.TrimSpace(token)
	}
	return header
}

func reject(c echo.Context, log zerolog.Logger, o domain.Outcome) {
	log.Info().
		Str("reason", string(o.Reason())).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Str("request_id", c.Response().Header().Get(echo.HeaderXRequestID)).
		Msg("request not authorized")
}

func outcomeLabel(o domain.Outcome) string {
	if o.IsValid() {
		return "valid"
	}
	return string(o.Reason())
}

// roleLabel keeps caller-controlled path values out of metric labels.
func roleLabel(role string) string {
	if r, ok := domain.ParseRole(role); ok {
		return r.String()
	}
	return "unknown"
}
