package entity

import (
	"time"

	"github.com/google/uuid"
)

// EMR is an electronic medical record, the aggregation root for a patient's
// diagnosis and treatment history. DoctorID is nullable: removing a doctor
// keeps the record but drops the authorship.
type EMR struct {
	ID            uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	PatientID     uuid.UUID  `gorm:"type:uuid;not null;index" json:"patient_id"`
	DoctorID      *uuid.UUID `gorm:"type:uuid;index" json:"doctor_id,omitempty"`
	Diagnosis     string     `gorm:"type:text;not null" json:"diagnosis,omitempty"`
	TreatmentPlan string     `gorm:"type:text;not null" json:"treatment_plan,omitempty"`
	CreatedAt     time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time  `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Patient       Patient        `gorm:"foreignKey:PatientID" json:"patient,omitempty"`
	Doctor        *Doctor        `gorm:"foreignKey:DoctorID" json:"doctor,omitempty"`
	Prescriptions []Prescription `gorm:"foreignKey:EMRID" json:"prescriptions,omitempty"`
	LabResults    []LabResult    `gorm:"foreignKey:EMRID" json:"lab_results,omitempty"`
}

func (EMR) TableName() string {
	return "emrs"
}

// AuthoredBy reports whether the given doctor authored the record.
func (e *EMR) AuthoredBy(doctorID uuid.UUID) bool {
	return e.DoctorID != nil && *e.DoctorID == doctorID
}
