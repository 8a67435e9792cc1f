package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/smartclinic/clinic-api/internal/core/ports"
)

type PrescriptionHandler struct {
	service ports.PrescriptionService
}

func NewPrescriptionHandler(service ports.PrescriptionService) *PrescriptionHandler {
	return &PrescriptionHandler{service: service}
}

// Save handles POST /prescriptions.
//
// @Summary      Write the prescription of an appointment
// @Tags         prescriptions
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      savePrescriptionRequest  true  "Prescription"
// @Success      201   {object}  domain.Prescription
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /prescriptions [post]
func (h *PrescriptionHandler) Save(c echo.Context) error {
	caller, err := callerFrom(c)
	if err != nil {
		return err
	}
	var req savePrescriptionRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	p, err := h.service.Save(c.Request().Context(), ports.SavePrescriptionInput{
		AppointmentID: req.AppointmentID,
		PatientName:   req.PatientName,
		Medication:    req.Medication,
		Dosage:        req.Dosage,
		DoctorNotes:   req.DoctorNotes,
		DoctorEmail:   caller.Subject,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, p)
}

// GetByAppointment handles GET /prescriptions/:appointmentId.
//
// @Summary      Prescription of an appointment
// @Tags         prescriptions
// @Produce      json
// @Security     BearerAuth
// @Param        appointmentId  path      int  true  "Appointment ID"
// @Success      200            {object}  domain.Prescription
// @Failure      401            {object}  errorResponse
// @Failure      404            {object}  errorResponse
// @Router       /prescriptions/{appointmentId} [get]
func (h *PrescriptionHandler) GetByAppointment(c echo.Context) error {
	id, err := pathID(c, "appointmentId")
	if err != nil {
		return err
	}
	caller, err := callerFrom(c)
	if err != nil {
		return err
	}

	p, err := h.service.GetByAppointment(c.Request().Context(), id, caller)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, p)
}
