package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// HealthMetric is a single recorded measurement for a patient,
// e.g. metric_type "blood_pressure_systolic", value 120, unit "mmHg".
// Immutable once recorded.
type HealthMetric struct {
	ID         uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	PatientID  uuid.UUID       `gorm:"type:uuid;not null;index" json:"patient_id"`
	MetricType string          `gorm:"type:varchar(50);not null;index" json:"metric_type"`
	Value      decimal.Decimal `gorm:"type:decimal(12,4);not null" json:"value"`
	Unit       string          `gorm:"type:varchar(20)" json:"unit,omitempty"`
	RecordedAt time.Time       `gorm:"autoCreateTime;index" json:"recorded_at"`

	// Relationships
	Patient Patient `gorm:"foreignKey:PatientID" json:"patient,omitempty"`
}

func (HealthMetric) TableName() string {
	return "health_metrics"
}
