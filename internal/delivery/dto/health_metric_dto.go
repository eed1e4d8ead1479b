package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Request DTOs. The owning patient is always the authenticated user.

type CreateHealthMetricRequest struct {
	MetricType string          `json:"metric_type" validate:"required,max=50"`
	Value      decimal.Decimal `json:"value" validate:"required"`
	Unit       string          `json:"unit" validate:"omitempty,max=20"`
}

// Response DTOs

type HealthMetricResponse struct {
	ID         uuid.UUID       `json:"id"`
	PatientID  uuid.UUID       `json:"patient_id"`
	MetricType string          `json:"metric_type"`
	Value      decimal.Decimal `json:"value"`
	Unit       string          `json:"unit,omitempty"`
	RecordedAt time.Time       `json:"recorded_at"`
}

type HealthMetricListResponse struct {
	Metrics []HealthMetricResponse `json:"metrics"`
	Total   int                    `json:"total"`
}
