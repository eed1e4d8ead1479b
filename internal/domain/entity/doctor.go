package entity

import "github.com/google/uuid"

// Doctor represents doctor-specific profile data, keyed by the owning user
type Doctor struct {
	UserID         uuid.UUID `gorm:"type:uuid;primaryKey" json:"user_id"`
	FullName       string    `gorm:"type:varchar(100);not null" json:"full_name"`
	Specialization string    `gorm:"type:varchar(100);index" json:"specialization,omitempty"`
	Phone          string    `gorm:"type:varchar(20)" json:"phone,omitempty"`
	OfficeAddress  string    `gorm:"type:text" json:"office_address,omitempty"`

	// Relationships
	User         User          `gorm:"foreignKey:UserID" json:"user,omitempty"`
	EMRs         []EMR         `gorm:"foreignKey:DoctorID" json:"emrs,omitempty"`
	Appointments []Appointment `gorm:"foreignKey:DoctorID" json:"appointments,omitempty"`
}

func (Doctor) TableName() string {
	return "doctors"
}
