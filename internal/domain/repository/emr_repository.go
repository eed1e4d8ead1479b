package repository

import (
	"go-healthcare-records/internal/access"
	"go-healthcare-records/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type EMRRepository interface {
	Create(db *gorm.DB, emr *entity.EMR) error
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.EMR, error)
	FindVisible(db *gorm.DB, actor access.Actor) ([]entity.EMR, error)
	Update(db *gorm.DB, emr *entity.EMR) error
	Delete(db *gorm.DB, id uuid.UUID) error
}

type PrescriptionRepository interface {
	Create(db *gorm.DB, prescription *entity.Prescription) error
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.Prescription, error)
	FindVisible(db *gorm.DB, actor access.Actor) ([]entity.Prescription, error)
	Update(db *gorm.DB, prescription *entity.Prescription) error
	Delete(db *gorm.DB, id uuid.UUID) error
}

type LabResultRepository interface {
	Create(db *gorm.DB, result *entity.LabResult) error
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.LabResult, error)
	FindVisible(db *gorm.DB, actor access.Actor) ([]entity.LabResult, error)
	Update(db *gorm.DB, result *entity.LabResult) error
	Delete(db *gorm.DB, id uuid.UUID) error
}
