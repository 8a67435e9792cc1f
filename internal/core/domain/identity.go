package domain

import "time"

// Admin is a clinic administrator. Its subject is the username.
type Admin struct {
	ID           int64     `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}

// Doctor is a practitioner patients can book. AvailableTimes holds recurring
// slot labels (e.g. "09:00-10:00"), not dated instances.
type Doctor struct {
	ID             int64     `json:"id"`
	Name           string    `json:"name"`
	Specialty      string    `json:"specialty"`
	Email          string    `json:"email"`
	PasswordHash   string    `json:"-"`
	Phone          string    `json:"phone"`
	AvailableTimes []string  `json:"available_times"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// Patient is a person who books appointments.
type Patient struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Phone        string    `json:"phone"`
	Address      string    `json:"address"`
	CreatedAt    time.Time `json:"created_at"`
}
