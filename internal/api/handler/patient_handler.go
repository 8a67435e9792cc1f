package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/smartclinic/clinic-api/internal/core/domain"
	"github.com/smartclinic/clinic-api/internal/core/ports"
)

// PatientHandler serves patient sign-up, login and the patient appointment views.
type PatientHandler struct {
	service ports.PatientService
	loc     *time.Location
}

func NewPatientHandler(service ports.PatientService, loc *time.Location) *PatientHandler {
	if loc == nil {
		loc = time.UTC
	}
	return &PatientHandler{service: service, loc: loc}
}

// Register handles POST /patients.
//
// @Summary      Register a patient
// @Tags         patients
// @Accept       json
// @Produce      json
// @Param        body  body      registerPatientRequest  true  "Patient details"
// @Success      201   {object}  domain.Patient
// @Failure      400   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /patients [post]
func (h *PatientHandler) Register(c echo.Context) error {
	var req registerPatientRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	patient, err := h.service.Register(c.Request().Context(), ports.RegisterPatientInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Phone:    req.Phone,
		Address:  req.Address,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, patient)
}

// Login handles POST /patients/login.
//
// @Summary      Patient login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  patientLoginResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      429   {object}  errorResponse
// @Router       /patients/login [post]
func (h *PatientHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	token, patient, err := h.service.Login(c.Request().Context(), req.Email, req.Password)
	observeLogin(domain.RolePatient, err)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, patientLoginResponse{Token: token, Patient: patient})
}

// Me handles GET /patients/me.
//
// @Summary      Profile of the calling patient
// @Tags         patients
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  domain.Patient
// @Failure      401  {object}  errorResponse
// @Router       /patients/me [get]
func (h *PatientHandler) Me(c echo.Context) error {
	caller, err := callerFrom(c)
	if err != nil {
		return err
	}
	patient, err := h.service.Profile(c.Request().Context(), caller.Subject)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, patient)
}

// Appointments handles GET /patients/:id/appointments.
//
// @Summary      Appointments of a patient
// @Description  A patient sees their own appointments; a doctor sees the ones held with them.
// @Tags         patients
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Patient ID"
// @Success      200  {array}   appointmentResponse
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /patients/{id}/appointments [get]
func (h *PatientHandler) Appointments(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	caller, err := callerFrom(c)
	if err != nil {
		return err
	}

	list, err := h.service.Appointments(c.Request().Context(), id, caller)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toAppointmentResponses(list, h.loc))
}

// FilterAppointments handles GET /patients/appointments/filter.
//
// @Summary      Filter the calling patient's appointments
// @Tags         patients
// @Produce      json
// @Security     BearerAuth
// @Param        condition  query     string  false  "past or future"
// @Param        name       query     string  false  "Partial doctor name"
// @Success      200        {array}   appointmentResponse
// @Failure      400        {object}  errorResponse
// @Failure      401        {object}  errorResponse
// @Router       /patients/appointments/filter [get]
func (h *PatientHandler) FilterAppointments(c echo.Context) error {
	caller, err := callerFrom(c)
	if err != nil {
		return err
	}

	list, err := h.service.FilterAppointments(c.Request().Context(), ports.FilterPatientAppointmentsInput{
		PatientEmail: caller.Subject,
		Condition:    c.QueryParam("condition"),
		DoctorName:   c.QueryParam("name"),
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toAppointmentResponses(list, h.loc))
}
