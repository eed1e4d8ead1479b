package entity

import (
	"time"

	"github.com/google/uuid"
)

// Patient represents patient-specific profile data, keyed by the owning user
type Patient struct {
	UserID             uuid.UUID  `gorm:"type:uuid;primaryKey" json:"user_id"`
	FullName           string     `gorm:"type:varchar(100);not null" json:"full_name"`
	DateOfBirth        *time.Time `gorm:"type:date" json:"date_of_birth,omitempty"`
	Gender             string     `gorm:"type:varchar(10)" json:"gender,omitempty"`
	Phone              string     `gorm:"type:varchar(20)" json:"phone,omitempty"`
	Address            string     `gorm:"type:text" json:"address,omitempty"`
	Allergies          string     `gorm:"type:text" json:"allergies,omitempty"`
	ExistingConditions string     `gorm:"type:text" json:"existing_conditions,omitempty"`
	Medications        string     `gorm:"type:text" json:"medications,omitempty"`

	// Relationships
	User          User           `gorm:"foreignKey:UserID" json:"user,omitempty"`
	EMRs          []EMR          `gorm:"foreignKey:PatientID" json:"emrs,omitempty"`
	Appointments  []Appointment  `gorm:"foreignKey:PatientID" json:"appointments,omitempty"`
	HealthMetrics []HealthMetric `gorm:"foreignKey:PatientID" json:"health_metrics,omitempty"`
}

func (Patient) TableName() string {
	return "patients"
}

// Gender constants
const (
	GenderMale   = "Male"
	GenderFemale = "Female"
	GenderOther  = "Other"
)
