package domain

import "time"

// AppointmentEventKind names a change in an appointment's life.
type AppointmentEventKind string

const (
	EventBooked        AppointmentEventKind = "booked"
	EventRescheduled   AppointmentEventKind = "rescheduled"
	EventCancelled     AppointmentEventKind = "cancelled"
	EventStatusChanged AppointmentEventKind = "status_changed"
	EventDoctorRemoved AppointmentEventKind = "doctor_removed"
)

// AppointmentEvent is an audit record for an appointment change.
type AppointmentEvent struct {
	ID            string
	AppointmentID int64
	DoctorID      int64
	PatientID     int64
	Kind          AppointmentEventKind
	Actor         string // subject of the caller
	Status        AppointmentStatus
	At            time.Time
}
