package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs. The requesting patient is never client-supplied and the
// initial status is always Requested.

type CreateAppointmentRequest struct {
	DoctorID            uuid.UUID `json:"doctor_id" validate:"required"`
	AppointmentDatetime time.Time `json:"appointment_datetime" validate:"required"`
	Notes               string    `json:"notes" validate:"omitempty"`
}

type UpdateAppointmentRequest struct {
	AppointmentDatetime time.Time `json:"appointment_datetime" validate:"required"`
	Status              string    `json:"status" validate:"required,oneof=Requested Approved Rescheduled Cancelled"`
	Notes               string    `json:"notes" validate:"omitempty"`
}

// Response DTOs

type AppointmentResponse struct {
	ID                  uuid.UUID `json:"id"`
	PatientID           uuid.UUID `json:"patient_id"`
	DoctorID            uuid.UUID `json:"doctor_id"`
	AppointmentDatetime time.Time `json:"appointment_datetime"`
	Status              string    `json:"status"`
	Notes               string    `json:"notes,omitempty"`
	CreatedAt           time.Time `json:"created_at"`
}

type AppointmentListResponse struct {
	Appointments []AppointmentResponse `json:"appointments"`
	Total        int                   `json:"total"`
}
