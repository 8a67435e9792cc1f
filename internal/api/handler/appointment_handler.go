package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/smartclinic/clinic-api/internal/api/metrics"
	"github.com/smartclinic/clinic-api/internal/core/domain"
	"github.com/smartclinic/clinic-api/internal/core/ports"
)

// AppointmentHandler handles HTTP requests for the appointment lifecycle.
type AppointmentHandler struct {
	service ports.AppointmentService
	loc     *time.Location
	now     func() time.Time
}

func NewAppointmentHandler(service ports.AppointmentService, loc *time.Location) *AppointmentHandler {
	if loc == nil {
		loc = time.UTC
	}
	return &AppointmentHandler{service: service, loc: loc, now: time.Now}
}

// Book handles POST /appointments.
//
// @Summary      Book an appointment
// @Tags         appointments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      bookAppointmentRequest  true  "Doctor and time"
// @Success      201   {object}  appointmentResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /appointments [post]
func (h *AppointmentHandler) Book(c echo.Context) error {
	caller, err := callerFrom(c)
	if err != nil {
		return err
	}
	var req bookAppointmentRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	at, err := parseInstant(req.AppointmentTime, h.loc)
	if err != nil {
		return err
	}

	a, err := h.service.Book(c.Request().Context(), ports.BookAppointmentInput{
		DoctorID:     req.DoctorID,
		PatientEmail: caller.Subject,
		Time:         at,
		Status:       req.Status,
	})
	if err != nil {
		observeConflict(err)
		return err
	}

	metrics.AppointmentsTotal.WithLabelValues("booked").Inc()
	return c.JSON(http.StatusCreated, toAppointmentResponse(*a, h.loc))
}

// Reschedule handles PUT /appointments/:id.
//
// @Summary      Move an appointment
// @Tags         appointments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int                           true  "Appointment ID"
// @Param        body  body      rescheduleAppointmentRequest  true  "New doctor and time"
// @Success      200   {object}  appointmentResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /appointments/{id} [put]
func (h *AppointmentHandler) Reschedule(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	caller, err := callerFrom(c)
	if err != nil {
		return err
	}
	var req rescheduleAppointmentRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	at, err := parseInstant(req.AppointmentTime, h.loc)
	if err != nil {
		return err
	}

	a, err := h.service.Reschedule(c.Request().Context(), ports.RescheduleAppointmentInput{
		ID:           id,
		DoctorID:     req.DoctorID,
		PatientEmail: caller.Subject,
		Time:         at,
	})
	if err != nil {
		observeConflict(err)
		return err
	}

	metrics.AppointmentsTotal.WithLabelValues("rescheduled").Inc()
	return c.JSON(http.StatusOK, toAppointmentResponse(*a, h.loc))
}

// Cancel handles DELETE /appointments/:id.
//
// @Summary      Cancel an appointment
// @Tags         appointments
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Appointment ID"
// @Success      200  {object}  messageResponse
// @Failure      401  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /appointments/{id} [delete]
func (h *AppointmentHandler) Cancel(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	caller, err := callerFrom(c)
	if err != nil {
		return err
	}

	if err := h.service.Cancel(c.Request().Context(), id, caller.Subject); err != nil {
		return err
	}

	metrics.AppointmentsTotal.WithLabelValues("cancelled").Inc()
	return c.JSON(http.StatusOK, messageResponse{Message: "appointment cancelled"})
}

// UpdateStatus handles PATCH /appointments/:id/status.
//
// @Summary      Change the status of an appointment
// @Tags         appointments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int                  true  "Appointment ID"
// @Param        body  body      updateStatusRequest  true  "0 = scheduled, 1 = completed"
// @Success      200   {object}  appointmentResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /appointments/{id}/status [patch]
func (h *AppointmentHandler) UpdateStatus(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	caller, err := callerFrom(c)
	if err != nil {
		return err
	}
	var req updateStatusRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	a, err := h.service.UpdateStatus(c.Request().Context(), id, *req.Status, caller.Subject)
	if err != nil {
		return err
	}

	if a.Status == domain.StatusCompleted {
		metrics.AppointmentsTotal.WithLabelValues("completed").Inc()
	}
	return c.JSON(http.StatusOK, toAppointmentResponse(*a, h.loc))
}

// ListForDoctor handles GET /appointments.
//
// @Summary      The calling doctor's appointments on a date
// @Tags         appointments
// @Produce      json
// @Security     BearerAuth
// @Param        date         query     string  false  "Date as YYYY-MM-DD, defaults to today"
// @Param        patientName  query     string  false  "Partial patient name"
// @Success      200          {array}   appointmentResponse
// @Failure      400          {object}  errorResponse
// @Failure      401          {object}  errorResponse
// @Router       /appointments [get]
func (h *AppointmentHandler) ListForDoctor(c echo.Context) error {
	caller, err := callerFrom(c)
	if err != nil {
		return err
	}
	date, err := parseDate(c.QueryParam("date"), h.loc, h.now())
	if err != nil {
		return err
	}

	list, err := h.service.ListForDoctor(c.Request().Context(), ports.DoctorAppointmentsInput{
		DoctorEmail: caller.Subject,
		Date:        date,
		PatientName: c.QueryParam("patientName"),
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toAppointmentResponses(list, h.loc))
}

func observeConflict(err error) {
	if errors.Is(err, domain.ErrSlotUnavailable) {
		metrics.BookingConflictsTotal.Inc()
	}
}
