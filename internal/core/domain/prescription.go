package domain

import "time"

// Prescription is written by a doctor for one appointment and stored as a document.
type Prescription struct {
	ID            string    `json:"id" bson:"_id,omitempty"`
	PatientName   string    `json:"patient_name" bson:"patient_name"`
	AppointmentID int64     `json:"appointment_id" bson:"appointment_id"`
	Medication    string    `json:"medication" bson:"medication"`
	Dosage        string    `json:"dosage" bson:"dosage"`
	DoctorNotes   string    `json:"doctor_notes,omitempty" bson:"doctor_notes,omitempty"`
	CreatedAt     time.Time `json:"created_at" bson:"created_at"`
}
