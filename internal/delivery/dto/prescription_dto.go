package dto

import "github.com/google/uuid"

// Request DTOs

type CreatePrescriptionRequest struct {
	EMRID          uuid.UUID `json:"emr_id" validate:"required"`
	MedicationName string    `json:"medication_name" validate:"required,max=100"`
	Dosage         string    `json:"dosage" validate:"omitempty,max=50"`
	Instructions   string    `json:"instructions" validate:"omitempty"`
	RefillDate     string    `json:"refill_date" validate:"omitempty"` // Format: YYYY-MM-DD
}

type UpdatePrescriptionRequest struct {
	MedicationName string `json:"medication_name" validate:"required,max=100"`
	Dosage         string `json:"dosage" validate:"omitempty,max=50"`
	Instructions   string `json:"instructions" validate:"omitempty"`
	RefillDate     string `json:"refill_date" validate:"omitempty"`
}

// Response DTOs

type PrescriptionResponse struct {
	ID             uuid.UUID `json:"id"`
	EMRID          uuid.UUID `json:"emr_id"`
	MedicationName string    `json:"medication_name"`
	Dosage         string    `json:"dosage,omitempty"`
	Instructions   string    `json:"instructions,omitempty"`
	RefillDate     string    `json:"refill_date,omitempty"`
}

type PrescriptionListResponse struct {
	Prescriptions []PrescriptionResponse `json:"prescriptions"`
	Total         int                    `json:"total"`
}
