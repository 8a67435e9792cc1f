package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/smartclinic/clinic-api/internal/api/middleware"
	"github.com/smartclinic/clinic-api/internal/core/domain"
	"github.com/smartclinic/clinic-api/internal/core/ports"
)

const (
	dateLayout      = "2006-01-02"
	localTimeLayout = "2006-01-02T15:04:05"
)

// callerFrom returns the identity resolved by the Authorize middleware. Its
// absence means the route was registered without the middleware.
func callerFrom(c echo.Context) (ports.Caller, error) {
	caller, ok := middleware.CallerFrom(c)
	if !ok || caller.Subject == "" {
		return ports.Caller{}, echo.NewHTTPError(http.StatusUnauthorized, "not authorized")
	}
	return caller, nil
}

// pathID parses a positive int64 path parameter.
func pathID(c echo.Context, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid "+name)
	}
	return id, nil
}

// bindAndValidate decodes the body into req and runs its validate tags.
func bindAndValidate(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}
	return nil
}

// parseDate reads a YYYY-MM-DD date as midnight in loc. An empty value is today.
func parseDate(s string, loc *time.Location, now time.Time) (time.Time, error) {
	if s == "" {
		y, m, d := now.In(loc).Date()
		return time.Date(y, m, d, 0, 0, 0, 0, loc), nil
	}
	t, err := time.ParseInLocation(dateLayout, s, loc)
	if err != nil {
		return time.Time{}, domain.ErrInvalidDate
	}
	return t, nil
}

// parseInstant accepts RFC 3339 or a zone-less local date-time in loc.
func parseInstant(s string, loc *time.Location) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	t, err := time.ParseInLocation(localTimeLayout, s, loc)
	if err != nil {
		return time.Time{}, domain.ErrInvalidDate
	}
	return t, nil
}

func toAppointmentResponse(a domain.Appointment, loc *time.Location) appointmentResponse {
	a.Time = a.Time.In(loc)
	return appointmentResponse{
		ID:              a.ID,
		DoctorID:        a.DoctorID,
		DoctorName:      a.DoctorName,
		PatientID:       a.PatientID,
		PatientName:     a.PatientName,
		AppointmentTime: a.Time,
		EndTime:         a.EndTime(),
		Date:            a.Date().Format(dateLayout),
		Time:            a.TimeOnly(),
		Status:          int(a.Status),
		StatusName:      a.Status.String(),
	}
}

func toAppointmentResponses(list []domain.Appointment, loc *time.Location) []appointmentResponse {
	out := make([]appointmentResponse, 0, len(list))
	for _, a := range list {
		out = append(out, toAppointmentResponse(a, loc))
	}
	return out
}
