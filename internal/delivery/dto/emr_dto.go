package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs. The authoring doctor is never client-supplied.

type CreateEMRRequest struct {
	PatientID     uuid.UUID `json:"patient_id" validate:"required"`
	Diagnosis     string    `json:"diagnosis" validate:"omitempty"`
	TreatmentPlan string    `json:"treatment_plan" validate:"omitempty"`
}

type UpdateEMRRequest struct {
	Diagnosis     string `json:"diagnosis" validate:"omitempty"`
	TreatmentPlan string `json:"treatment_plan" validate:"omitempty"`
}

// Response DTOs

type EMRResponse struct {
	ID            uuid.UUID  `json:"id"`
	PatientID     uuid.UUID  `json:"patient_id"`
	DoctorID      *uuid.UUID `json:"doctor_id,omitempty"`
	Diagnosis     string     `json:"diagnosis,omitempty"`
	TreatmentPlan string     `json:"treatment_plan,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

type EMRListResponse struct {
	EMRs  []EMRResponse `json:"emrs"`
	Total int           `json:"total"`
}
