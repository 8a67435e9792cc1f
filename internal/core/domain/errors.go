package domain

import "errors"

// Scheduling validation.
var (
	ErrPastOrPresent     = errors.New("appointment time must be in the future")
	ErrStatusOutOfRange  = errors.New("appointment status out of range")
	ErrInvalidTransition = errors.New("invalid status transition")
	ErrMissingReference  = errors.New("appointment requires a doctor and a patient")
	ErrSlotUnavailable   = errors.New("time slot is not available")
	ErrInvalidDate       = errors.New("invalid date")
	ErrInvalidFilter     = errors.New("invalid filter value")
)

// Lookups and conflicts.
var (
	ErrAppointmentNotFound  = errors.New("appointment not found")
	ErrDoctorNotFound       = errors.New("doctor not found")
	ErrPatientNotFound      = errors.New("patient not found")
	ErrAdminNotFound        = errors.New("admin not found")
	ErrPrescriptionNotFound = errors.New("prescription not found")
	ErrDoctorExists         = errors.New("doctor already exists")
	ErrPatientExists        = errors.New("patient already exists")
	ErrAdminExists          = errors.New("admin already exists")
	ErrPrescriptionExists   = errors.New("prescription already exists for appointment")
)

// Access.
var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUnauthorized       = errors.New("not authorized")
	ErrForbidden          = errors.New("access forbidden")
)
