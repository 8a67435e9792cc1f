package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/smartclinic/clinic-api/internal/api/metrics"
	"github.com/smartclinic/clinic-api/internal/core/domain"
	"github.com/smartclinic/clinic-api/internal/core/ports"
)

// DoctorHandler serves the doctor directory, doctor administration and
// availability.
type DoctorHandler struct {
	service ports.DoctorService
	loc     *time.Location
	now     func() time.Time
}

func NewDoctorHandler(service ports.DoctorService, loc *time.Location) *DoctorHandler {
	if loc == nil {
		loc = time.UTC
	}
	return &DoctorHandler{service: service, loc: loc, now: time.Now}
}

// List handles GET /doctors.
//
// @Summary      List all doctors
// @Tags         doctors
// @Produce      json
// @Success      200  {array}   domain.Doctor
// @Failure      500  {object}  errorResponse
// @Router       /doctors [get]
func (h *DoctorHandler) List(c echo.Context) error {
	doctors, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, doctors)
}

// Filter handles GET /doctors/filter.
//
// @Summary      Filter doctors
// @Tags         doctors
// @Produce      json
// @Param        name       query     string  false  "Partial doctor name"
// @Param        specialty  query     string  false  "Specialty"
// @Param        time       query     string  false  "AM or PM"
// @Success      200        {array}   domain.Doctor
// @Failure      400        {object}  errorResponse
// @Router       /doctors/filter [get]
func (h *DoctorHandler) Filter(c echo.Context) error {
	doctors, err := h.service.Filter(c.Request().Context(), ports.FilterDoctorsInput{
		Name:      c.QueryParam("name"),
		Specialty: c.QueryParam("specialty"),
		Period:    c.QueryParam("time"),
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, doctors)
}

// Availability handles GET /doctors/:id/availability/:user.
//
// @Summary      Free slots of a doctor on a date
// @Tags         doctors
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int     true   "Doctor ID"
// @Param        user  path      string  true   "Caller role (patient or doctor)"
// @Param        date  query     string  false  "Date as YYYY-MM-DD, defaults to today"
// @Success      200   {object}  availabilityResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /doctors/{id}/availability/{user} [get]
func (h *DoctorHandler) Availability(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	date, err := parseDate(c.QueryParam("date"), h.loc, h.now())
	if err != nil {
		return err
	}

	timer := prometheus.NewTimer(metrics.AvailabilityDuration)
	slots, err := h.service.AvailableSlots(c.Request().Context(), id, date)
	timer.ObserveDuration()
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, availabilityResponse{
		DoctorID:       id,
		Date:           date.Format(dateLayout),
		AvailableTimes: slots,
	})
}

// Create handles POST /doctors.
//
// @Summary      Register a doctor
// @Tags         doctors
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createDoctorRequest  true  "Doctor details"
// @Success      201   {object}  domain.Doctor
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /doctors [post]
func (h *DoctorHandler) Create(c echo.Context) error {
	var req createDoctorRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	doctor, err := h.service.Save(c.Request().Context(), ports.CreateDoctorInput{
		Name:           req.Name,
		Specialty:      req.Specialty,
		Email:          req.Email,
		Password:       req.Password,
		Phone:          req.Phone,
		AvailableTimes: req.AvailableTimes,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, doctor)
}

// Update handles PUT /doctors/:id.
//
// @Summary      Update a doctor
// @Tags         doctors
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int                  true  "Doctor ID"
// @Param        body  body      updateDoctorRequest  true  "Doctor details"
// @Success      200   {object}  domain.Doctor
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /doctors/{id} [put]
func (h *DoctorHandler) Update(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	var req updateDoctorRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	doctor, err := h.service.Update(c.Request().Context(), ports.UpdateDoctorInput{
		ID:             id,
		Name:           req.Name,
		Specialty:      req.Specialty,
		Email:          req.Email,
		Password:       req.Password,
		Phone:          req.Phone,
		AvailableTimes: req.AvailableTimes,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, doctor)
}

// Delete handles DELETE /doctors/:id. The doctor's appointments go with it.
//
// @Summary      Delete a doctor
// @Tags         doctors
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Doctor ID"
// @Success      200  {object}  messageResponse
// @Failure      401  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /doctors/{id} [delete]
func (h *DoctorHandler) Delete(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	caller, err := callerFrom(c)
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), id, caller.Subject); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "doctor deleted"})
}

// Login handles POST /doctors/login.
//
// @Summary      Doctor login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  doctorLoginResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      429   {object}  errorResponse
// @Router       /doctors/login [post]
func (h *DoctorHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	token, doctor, err := h.service.Login(c.Request().Context(), req.Email, req.Password)
	observeLogin(domain.RoleDoctor, err)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, doctorLoginResponse{Token: token, Doctor: doctor})
}
