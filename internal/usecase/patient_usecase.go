package usecase

import (
	"context"
	"errors"

	"go-healthcare-records/internal/access"
	"go-healthcare-records/internal/converter"
	"go-healthcare-records/internal/delivery/dto"
	"go-healthcare-records/internal/domain/entity"
	"go-healthcare-records/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrPatientNotFound = errors.New("patient not found")
	ErrNotProfileOwner = errors.New("profile does not belong to you")
)

type PatientUsecase interface {
	ListPatients(ctx context.Context) (*dto.PatientListResponse, error)
	GetPatient(ctx context.Context, userID uuid.UUID) (*dto.PatientResponse, error)
	UpdatePatient(ctx context.Context, userID uuid.UUID, req *dto.UpdatePatientProfileRequest) (*dto.PatientResponse, error)
	DeletePatient(ctx context.Context, userID uuid.UUID) error
}

type patientUsecase struct {
	db          *gorm.DB
	log         *logrus.Logger
	userRepo    repository.UserRepository
	patientRepo repository.PatientRepository
}

func NewPatientUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	userRepo repository.UserRepository,
	patientRepo repository.PatientRepository,
) PatientUsecase {
	return &patientUsecase{
		db:          db,
		log:         log,
		userRepo:    userRepo,
		patientRepo: patientRepo,
	}
}

// ListPatients returns at most the caller's own profile: the patient
// collection is scoped to the owner.
func (u *patientUsecase) ListPatients(ctx context.Context) (*dto.PatientListResponse, error) {
	db := u.db.WithContext(ctx)
	actor, err := currentActor(ctx, db, u.userRepo)
	if err != nil {
		return nil, err
	}

	patients, err := u.patientRepo.FindVisible(db, actor)
	if err != nil {
		u.log.Warnf("Failed to list patients for %s: %+v", actor.UserID, err)
		return nil, err
	}

	return &dto.PatientListResponse{
		Patients: converter.PatientsToResponses(patients),
		Total:    len(patients),
	}, nil
}

// getVisiblePatient fetches a patient the actor may see. Anything outside
// the visible set reads as not found, never as forbidden, so record
// existence does not leak.
func (u *patientUsecase) getVisiblePatient(db *gorm.DB, actor access.Actor, userID uuid.UUID) (*dto.PatientResponse, error) {
	if !access.Owner(actor, userID) {
		return nil, ErrPatientNotFound
	}

	patient, err := u.patientRepo.FindByUserID(db, userID)
	if err != nil {
		return nil, err
	}
	if patient == nil {
		return nil, ErrPatientNotFound
	}

	return converter.PatientToResponse(patient), nil
}

func (u *patientUsecase) GetPatient(ctx context.Context, userID uuid.UUID) (*dto.PatientResponse, error) {
	db := u.db.WithContext(ctx)
	actor, err := currentActor(ctx, db, u.userRepo)
	if err != nil {
		return nil, err
	}

	return u.getVisiblePatient(db, actor, userID)
}

func (u *patientUsecase) UpdatePatient(ctx context.Context, userID uuid.UUID, req *dto.UpdatePatientProfileRequest) (*dto.PatientResponse, error) {
	db := u.db.WithContext(ctx)
	actor, err := currentActor(ctx, db, u.userRepo)
	if err != nil {
		return nil, err
	}

	patient, err := u.patientRepo.FindByUserID(db, userID)
	if err != nil {
		u.log.Warnf("Failed to find patient %s: %+v", userID, err)
		return nil, err
	}
	if patient == nil {
		return nil, ErrPatientNotFound
	}

	if !access.OwnerOrReadOnly(actor, patient.UserID, true) {
		return nil, ErrNotProfileOwner
	}

	dob, err := parseDate(req.DateOfBirth)
	if err != nil {
		return nil, err
	}

	patient.FullName = req.FullName
	patient.DateOfBirth = dob
	patient.Gender = req.Gender
	patient.Phone = req.Phone
	patient.Address = req.Address
	patient.Allergies = req.Allergies
	patient.ExistingConditions = req.ExistingConditions
	patient.Medications = req.Medications

	if err := u.patientRepo.Update(db, patient); err != nil {
		u.log.Warnf("Failed to update patient %s: %+v", userID, err)
		return nil, err
	}

	return converter.PatientToResponse(patient), nil
}

// DeletePatient removes the profile and cascades to its EMRs, appointments
// and health metrics at the storage layer.
func (u *patientUsecase) DeletePatient(ctx context.Context, userID uuid.UUID) error {
	db := u.db.WithContext(ctx)
	actor, err := currentActor(ctx, db, u.userRepo)
	if err != nil {
		return err
	}

	patient, err := u.patientRepo.FindByUserID(db, userID)
	if err != nil {
		u.log.Warnf("Failed to find patient %s: %+v", userID, err)
		return err
	}
	if patient == nil {
		return ErrPatientNotFound
	}

	if !access.OwnerOrReadOnly(actor, patient.UserID, true) {
		return ErrNotProfileOwner
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	if err := u.patientRepo.Delete(tx, userID); err != nil {
		u.log.Warnf("Failed to delete patient %s: %+v", userID, err)
		return err
	}

	if err := u.userRepo.UpdateRole(tx, userID, entity.RoleUnassigned); err != nil {
		u.log.Warnf("Failed to reset user role: %+v", err)
		return err
	}

	return tx.Commit().Error
}
