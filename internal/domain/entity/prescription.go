package entity

import (
	"time"

	"github.com/google/uuid"
)

// Prescription belongs to exactly one EMR and is removed with it
type Prescription struct {
	ID             uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	EMRID          uuid.UUID  `gorm:"column:emr_id;type:uuid;not null;index" json:"emr_id"`
	MedicationName string     `gorm:"type:varchar(100);not null" json:"medication_name"`
	Dosage         string     `gorm:"type:varchar(50)" json:"dosage,omitempty"`
	Instructions   string     `gorm:"type:text" json:"instructions,omitempty"`
	RefillDate     *time.Time `gorm:"type:date" json:"refill_date,omitempty"`

	// Relationships
	EMR EMR `gorm:"foreignKey:EMRID" json:"emr,omitempty"`
}

func (Prescription) TableName() string {
	return "prescriptions"
}
