package repository

import (
	"go-healthcare-records/internal/access"
	"go-healthcare-records/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PatientRepository interface {
	Create(db *gorm.DB, patient *entity.Patient) error
	FindByUserID(db *gorm.DB, userID uuid.UUID) (*entity.Patient, error)
	FindVisible(db *gorm.DB, actor access.Actor) ([]entity.Patient, error)
	Update(db *gorm.DB, patient *entity.Patient) error
	Delete(db *gorm.DB, userID uuid.UUID) error
}

type DoctorRepository interface {
	Create(db *gorm.DB, doctor *entity.Doctor) error
	FindByUserID(db *gorm.DB, userID uuid.UUID) (*entity.Doctor, error)
	FindVisible(db *gorm.DB, actor access.Actor) ([]entity.Doctor, error)
	Update(db *gorm.DB, doctor *entity.Doctor) error
	Delete(db *gorm.DB, userID uuid.UUID) error
}
