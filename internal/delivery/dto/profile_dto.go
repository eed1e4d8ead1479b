package dto

import "github.com/google/uuid"

// Request DTOs. The owning user is never client-supplied; it is taken from
// the authenticated session.

type CreatePatientProfileRequest struct {
	FullName           string `json:"full_name" validate:"required,min=2,max=100"`
	DateOfBirth        string `json:"date_of_birth" validate:"omitempty"` // Format: YYYY-MM-DD
	Gender             string `json:"gender" validate:"omitempty,oneof=Male Female Other"`
	Phone              string `json:"phone" validate:"omitempty,max=20"`
	Address            string `json:"address" validate:"omitempty"`
	Allergies          string `json:"allergies" validate:"omitempty"`
	ExistingConditions string `json:"existing_conditions" validate:"omitempty"`
	Medications        string `json:"medications" validate:"omitempty"`
}

type UpdatePatientProfileRequest struct {
	FullName           string `json:"full_name" validate:"required,min=2,max=100"`
	DateOfBirth        string `json:"date_of_birth" validate:"omitempty"`
	Gender             string `json:"gender" validate:"omitempty,oneof=Male Female Other"`
	Phone              string `json:"phone" validate:"omitempty,max=20"`
	Address            string `json:"address" validate:"omitempty"`
	Allergies          string `json:"allergies" validate:"omitempty"`
	ExistingConditions string `json:"existing_conditions" validate:"omitempty"`
	Medications        string `json:"medications" validate:"omitempty"`
}

type CreateDoctorProfileRequest struct {
	FullName       string `json:"full_name" validate:"required,min=2,max=100"`
	Specialization string `json:"specialization" validate:"omitempty,max=100"`
	Phone          string `json:"phone" validate:"omitempty,max=20"`
	OfficeAddress  string `json:"office_address" validate:"omitempty"`
}

type UpdateDoctorProfileRequest struct {
	FullName       string `json:"full_name" validate:"required,min=2,max=100"`
	Specialization string `json:"specialization" validate:"omitempty,max=100"`
	Phone          string `json:"phone" validate:"omitempty,max=20"`
	OfficeAddress  string `json:"office_address" validate:"omitempty"`
}

// Response DTOs

type PatientResponse struct {
	UserID             uuid.UUID `json:"user_id"`
	FullName           string    `json:"full_name"`
	DateOfBirth        string    `json:"date_of_birth,omitempty"`
	Gender             string    `json:"gender,omitempty"`
	Phone              string    `json:"phone,omitempty"`
	Address            string    `json:"address,omitempty"`
	Allergies          string    `json:"allergies,omitempty"`
	ExistingConditions string    `json:"existing_conditions,omitempty"`
	Medications        string    `json:"medications,omitempty"`
}

type PatientListResponse struct {
	Patients []PatientResponse `json:"patients"`
	Total    int               `json:"total"`
}

type DoctorResponse struct {
	UserID         uuid.UUID `json:"user_id"`
	FullName       string    `json:"full_name"`
	Specialization string    `json:"specialization,omitempty"`
	Phone          string    `json:"phone,omitempty"`
	OfficeAddress  string    `json:"office_address,omitempty"`
}

type DoctorListResponse struct {
	Doctors []DoctorResponse `json:"doctors"`
	Total   int              `json:"total"`
}
