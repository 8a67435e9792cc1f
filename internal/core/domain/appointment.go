package domain

import (
	"time"
)

// AppointmentStatus is the lifecycle state of an appointment.
type AppointmentStatus int

const (
	StatusScheduled AppointmentStatus = 0
	StatusCompleted AppointmentStatus = 1
)

// AppointmentDuration is the fixed length of every appointment.
const AppointmentDuration = time.Hour

// validTransitions defines the allowed state machine transitions.
var validTransitions = map[AppointmentStatus][]AppointmentStatus{
	StatusScheduled: {StatusCompleted},
}

// CanTransitionTo reports whether a transition from current status to next is valid.
func (s AppointmentStatus) CanTransitionTo(next AppointmentStatus) bool {
	for _, allowed := range validTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

func (s AppointmentStatus) String() string {
	switch s {
	case StatusScheduled:
		return "scheduled"
	case StatusCompleted:
		return "completed"
	default:
		return "unknown"
	}
}

// ValidateStatus accepts only the closed set {0, 1}.
func ValidateStatus(value int) error {
	switch AppointmentStatus(value) {
	case StatusScheduled, StatusCompleted:
		return nil
	}
	return ErrStatusOutOfRange
}

// ValidateAppointmentTiming requires at to be strictly after now.
func ValidateAppointmentTiming(at, now time.Time) error {
	if !at.After(now) {
		return ErrPastOrPresent
	}
	return nil
}

// Appointment links one doctor and one patient at a single instant.
// DoctorName and PatientName are filled by read queries only.
type Appointment struct {
	ID          int64             `json:"id"`
	DoctorID    int64             `json:"doctor_id"`
	PatientID   int64             `json:"patient_id"`
	Time        time.Time         `json:"appointment_time"`
	Status      AppointmentStatus `json:"status"`
	DoctorName  string            `json:"doctor_name,omitempty"`
	PatientName string            `json:"patient_name,omitempty"`
	CreatedAt   time.Time         `json:"created_at"`
}

// EndTime is the scheduled instant plus AppointmentDuration.
func (a Appointment) EndTime() time.Time {
	return a.Time.Add(AppointmentDuration)
}

// Date is the calendar day of the scheduled instant, at midnight in the same location.
func (a Appointment) Date() time.Time {
	y, m, d := a.Time.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, a.Time.Location())
}

// TimeOnly is the wall-clock part of the scheduled instant ("15:04:05").
func (a Appointment) TimeOnly() string {
	return a.Time.Format(time.TimeOnly)
}

// Validate checks the invariants every stored appointment must satisfy.
func (a Appointment) Validate(now time.Time) error {
	if a.DoctorID <= 0 || a.PatientID <= 0 {
		return ErrMissingReference
	}
	if err := ValidateStatus(int(a.Status)); err != nil {
		return err
	}
	return ValidateAppointmentTiming(a.Time, now)
}

// DayBounds returns the half-open interval [start, end) covering the calendar
// day of t in loc.
func DayBounds(t time.Time, loc *time.Location) (time.Time, time.Time) {
	if loc == nil {
		loc = time.UTC
	}
	y, m, d := t.In(loc).Date()
	start := time.Date(y, m, d, 0, 0, 0, 0, loc)
	return start, start.AddDate(0, 0, 1)
}
