package handler

import (
	"time"

	"github.com/smartclinic/clinic-api/internal/core/domain"
)

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// --- Request types ---

type adminLoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type loginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type createDoctorRequest struct {
	Name           string   `json:"name"            validate:"required,min=3,max=100"`
	Specialty      string   `json:"specialty"       validate:"required,min=3,max=50"`
	Email          string   `json:"email"           validate:"required,email"`
	Password       string   `json:"password"        validate:"required,min=6"`
	Phone          string   `json:"phone"           validate:"required,len=10,numeric"`
	AvailableTimes []string `json:"available_times" validate:"unique,dive,required,slot"`
}

// updateDoctorRequest leaves the password unchanged when it is omitted.
type updateDoctorRequest struct {
	Name           string   `json:"name"            validate:"required,min=3,max=100"`
	Specialty      string   `json:"specialty"       validate:"required,min=3,max=50"`
	Email          string   `json:"email"           validate:"required,email"`
	Password       string   `json:"password"        validate:"omitempty,min=6"`
	Phone          string   `json:"phone"           validate:"required,len=10,numeric"`
	AvailableTimes []string `json:"available_times" validate:"unique,dive,required,slot"`
}

type registerPatientRequest struct {
	Name     string `json:"name"     validate:"required,min=3,max=100"`
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Phone    string `json:"phone"    validate:"required,len=10,numeric"`
	Address  string `json:"address"  validate:"required,max=255"`
}

// bookAppointmentRequest takes the patient from the token. appointment_time
// is RFC 3339 or a local "2006-01-02T15:04:05" read in the clinic time zone.
type bookAppointmentRequest struct {
	DoctorID        int64  `json:"doctor_id"        validate:"required,gt=0"`
	AppointmentTime string `json:"appointment_time" validate:"required"`
	Status          *int   `json:"status"`
}

type rescheduleAppointmentRequest struct {
	DoctorID        int64  `json:"doctor_id"        validate:"required,gt=0"`
	AppointmentTime string `json:"appointment_time" validate:"required"`
}

type updateStatusRequest struct {
	Status *int `json:"status" validate:"required"`
}

type savePrescriptionRequest struct {
	AppointmentID int64  `json:"appointment_id" validate:"required,gt=0"`
	PatientName   string `json:"patient_name"   validate:"required,min=3,max=100"`
	Medication    string `json:"medication"     validate:"required,min=3,max=100"`
	Dosage        string `json:"dosage"         validate:"required,min=3,max=20"`
	DoctorNotes   string `json:"doctor_notes"   validate:"max=200"`
}

// --- Response types ---

type adminLoginResponse struct {
	Token string        `json:"token"`
	Admin *domain.Admin `json:"admin"`
}

type doctorLoginResponse struct {
	Token  string         `json:"token"`
	Doctor *domain.Doctor `json:"doctor"`
}

type patientLoginResponse struct {
	Token   string          `json:"token"`
	Patient *domain.Patient `json:"patient"`
}

type messageResponse struct {
	Message string `json:"message"`
}

type availabilityResponse struct {
	DoctorID       int64    `json:"doctor_id"`
	Date           string   `json:"date"`
	AvailableTimes []string `json:"available_times"`
}

// appointmentResponse adds the derived projections, all in the clinic time zone.
type appointmentResponse struct {
	ID              int64     `json:"id"`
	DoctorID        int64     `json:"doctor_id"`
	DoctorName      string    `json:"doctor_name,omitempty"`
	PatientID       int64     `json:"patient_id"`
	PatientName     string    `json:"patient_name,omitempty"`
	AppointmentTime time.Time `json:"appointment_time"`
	EndTime         time.Time `json:"end_time"`
	Date            string    `json:"date"`
	Time            string    `json:"time"`
	Status          int       `json:"status"`
	StatusName      string    `json:"status_name"`
}
