package entity

import (
	"time"

	"github.com/google/uuid"
)

// AppointmentStatus represents the status of an appointment
type AppointmentStatus string

const (
	AppointmentStatusRequested   AppointmentStatus = "Requested"
	AppointmentStatusApproved    AppointmentStatus = "Approved"
	AppointmentStatusRescheduled AppointmentStatus = "Rescheduled"
	AppointmentStatusCancelled   AppointmentStatus = "Cancelled"
)

// Appointment links exactly one patient to exactly one doctor
type Appointment struct {
	ID                  uuid.UUID         `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	PatientID           uuid.UUID         `gorm:"type:uuid;not null;index" json:"patient_id"`
	DoctorID            uuid.UUID         `gorm:"type:uuid;not null;index" json:"doctor_id"`
	AppointmentDatetime time.Time         `gorm:"not null" json:"appointment_datetime"`
	Status              AppointmentStatus `gorm:"type:varchar(20);not null;default:'Requested';index" json:"status"`
	Notes               string            `gorm:"type:text" json:"notes,omitempty"`
	CreatedAt           time.Time         `gorm:"autoCreateTime" json:"created_at"`

	// Relationships
	Patient Patient `gorm:"foreignKey:PatientID" json:"patient,omitempty"`
	Doctor  Doctor  `gorm:"foreignKey:DoctorID" json:"doctor,omitempty"`
}

func (Appointment) TableName() string {
	return "appointments"
}

// IsCancelled checks if the appointment is cancelled
func (a *Appointment) IsCancelled() bool {
	return a.Status == AppointmentStatusCancelled
}

// Cancel changes appointment status to cancelled
func (a *Appointment) Cancel() {
	a.Status = AppointmentStatusCancelled
}

// AppointmentFilter is a domain-level filter for querying appointments.
// Used by repository layer to avoid coupling with delivery DTOs.
type AppointmentFilter struct {
	Status string // One of the AppointmentStatus values, empty for all
	From   string // Format: YYYY-MM-DD
	To     string // Format: YYYY-MM-DD
}
