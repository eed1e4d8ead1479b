package entity

import (
	"time"

	"github.com/google/uuid"
)

// LabResult belongs to exactly one EMR and is removed with it
type LabResult struct {
	ID             uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	EMRID          uuid.UUID  `gorm:"column:emr_id;type:uuid;not null;index" json:"emr_id"`
	TestName       string     `gorm:"type:varchar(100);not null" json:"test_name"`
	TestDate       *time.Time `gorm:"type:date" json:"test_date,omitempty"`
	ResultFilePath string     `gorm:"type:varchar(255)" json:"result_file_path,omitempty"`
	Notes          string     `gorm:"type:text" json:"notes,omitempty"`

	// Relationships
	EMR EMR `gorm:"foreignKey:EMRID" json:"emr,omitempty"`
}

func (LabResult) TableName() string {
	return "lab_results"
}
