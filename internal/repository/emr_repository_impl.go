package repository

import (
	"errors"

	"go-healthcare-records/internal/access"
	"go-healthcare-records/internal/domain/entity"
	domainRepo "go-healthcare-records/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type emrRepository struct{}

func NewEMRRepository() domainRepo.EMRRepository {
	return &emrRepository{}
}

func (r *emrRepository) Create(db *gorm.DB, emr *entity.EMR) error {
	return db.Create(emr).Error
}

func (r *emrRepository) FindByID(db *gorm.DB, id uuid.UUID) (*entity.EMR, error) {
	var emr entity.EMR
	err := db.Where("id = ?", id).First(&emr).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &emr, nil
}

func (r *emrRepository) FindVisible(db *gorm.DB, actor access.Actor) ([]entity.EMR, error) {
	var emrs []entity.EMR
	err := db.Scopes(access.EMRsVisibleTo(actor)).
		Order("created_at DESC").
		Find(&emrs).Error
	if err != nil {
		return nil, err
	}
	return emrs, nil
}

func (r *emrRepository) Update(db *gorm.DB, emr *entity.EMR) error {
	return db.Omit(clause.Associations).Save(emr).Error
}

func (r *emrRepository) Delete(db *gorm.DB, id uuid.UUID) error {
	return db.Where("id = ?", id).Delete(&entity.EMR{}).Error
}

type prescriptionRepository struct{}

func NewPrescriptionRepository() domainRepo.PrescriptionRepository {
	return &prescriptionRepository{}
}

func (r *prescriptionRepository) Create(db *gorm.DB, prescription *entity.Prescription) error {
	return db.Create(prescription).Error
}

func (r *prescriptionRepository) FindByID(db *gorm.DB, id uuid.UUID) (*entity.Prescription, error) {
	var prescription entity.Prescription
	err := db.Preload("EMR").Where("id = ?", id).First(&prescription).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &prescription, nil
}

func (r *prescriptionRepository) FindVisible(db *gorm.DB, actor access.Actor) ([]entity.Prescription, error) {
	var prescriptions []entity.Prescription
	err := db.Scopes(access.EMRChildrenVisibleTo(actor, "prescriptions")).
		Find(&prescriptions).Error
	if err != nil {
		return nil, err
	}
	return prescriptions, nil
}

func (r *prescriptionRepository) Update(db *gorm.DB, prescription *entity.Prescription) error {
	return db.Omit(clause.Associations).Save(prescription).Error
}

func (r *prescriptionRepository) Delete(db *gorm.DB, id uuid.UUID) error {
	return db.Where("id = ?", id).Delete(&entity.Prescription{}).Error
}

type labResultRepository struct{}

func NewLabResultRepository() domainRepo.LabResultRepository {
	return &labResultRepository{}
}

func (r *labResultRepository) Create(db *gorm.DB, result *entity.LabResult) error {
	return db.Create(result).Error
}

func (r *labResultRepository) FindByID(db *gorm.DB, id uuid.UUID) (*entity.LabResult, error) {
	var result entity.LabResult
	err := db.Preload("EMR").Where("id = ?", id).First(&result).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &result, nil
}

func (r *labResultRepository) FindVisible(db *gorm.DB, actor access.Actor) ([]entity.LabResult, error) {
	var results []entity.LabResult
	err := db.Scopes(access.EMRChildrenVisibleTo(actor, "lab_results")).
		Find(&results).Error
	if err != nil {
		return nil, err
	}
	return results, nil
}

func (r *labResultRepository) Update(db *gorm.DB, result *entity.LabResult) error {
	return db.Omit(clause.Associations).Save(result).Error
}

func (r *labResultRepository) Delete(db *gorm.DB, id uuid.UUID) error {
	return db.Where("id = ?", id).Delete(&entity.LabResult{}).Error
}
