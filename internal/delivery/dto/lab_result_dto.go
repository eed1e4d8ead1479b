package dto

import "github.com/google/uuid"

// Request DTOs

type CreateLabResultRequest struct {
	EMRID          uuid.UUID `json:"emr_id" validate:"required"`
	TestName       string    `json:"test_name" validate:"required,max=100"`
	TestDate       string    `json:"test_date" validate:"omitempty"` // Format: YYYY-MM-DD
	ResultFilePath string    `json:"result_file_path" validate:"omitempty,max=255"`
	Notes          string    `json:"notes" validate:"omitempty"`
}

type UpdateLabResultRequest struct {
	TestName       string `json:"test_name" validate:"required,max=100"`
	TestDate       string `json:"test_date" validate:"omitempty"`
	ResultFilePath string `json:"result_file_path" validate:"omitempty,max=255"`
	Notes          string `json:"notes" validate:"omitempty"`
}

// Response DTOs

type LabResultResponse struct {
	ID             uuid.UUID `json:"id"`
	EMRID          uuid.UUID `json:"emr_id"`
	TestName       string    `json:"test_name"`
	TestDate       string    `json:"test_date,omitempty"`
	ResultFilePath string    `json:"result_file_path,omitempty"`
	Notes          string    `json:"notes,omitempty"`
}

type LabResultListResponse struct {
	LabResults []LabResultResponse `json:"lab_results"`
	Total      int                 `json:"total"`
}
