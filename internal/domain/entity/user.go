package entity

import (
	"time"

	"github.com/google/uuid"
)

// Role tags a user with the profile kind attached to it. A user starts
// unassigned and gains exactly one role when a profile is created.
type Role string

const (
	RoleUnassigned Role = "unassigned"
	RolePatient    Role = "patient"
	RoleDoctor     Role = "doctor"
)

// User represents the centralized authentication table
type User struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Username  string    `gorm:"type:varchar(150);uniqueIndex;not null" json:"username"`
	Email     string    `gorm:"type:varchar(255);not null" json:"email"`
	Password  string    `gorm:"type:text;not null" json:"-"`
	Role      Role      `gorm:"type:varchar(20);not null;default:'unassigned';index" json:"role"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Patient *Patient `gorm:"foreignKey:UserID" json:"patient,omitempty"`
	Doctor  *Doctor  `gorm:"foreignKey:UserID" json:"doctor,omitempty"`
}

func (User) TableName() string {
	return "users"
}

// HasProfile reports whether any role profile is attached to the user.
func (u *User) HasProfile() bool {
	return u.Role == RolePatient || u.Role == RoleDoctor
}
