package usecase

import (
	"context"
	"errors"

	"go-healthcare-records/internal/access"
	"go-healthcare-records/internal/converter"
	"go-healthcare-records/internal/delivery/dto"
	"go-healthcare-records/internal/domain/entity"
	"go-healthcare-records/internal/domain/repository"
	"go-healthcare-records/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrPrescriptionNotFound = errors.New("prescription not found")
	ErrNotRecordAuthor      = errors.New("only the authoring doctor can write under this record")
)

type PrescriptionUsecase interface {
	ListPrescriptions(ctx context.Context) (*dto.PrescriptionListResponse, error)
	GetPrescription(ctx context.Context, id uuid.UUID) (*dto.PrescriptionResponse, error)
	CreatePrescription(ctx context.Context, req *dto.CreatePrescriptionRequest) (*dto.PrescriptionResponse, error)
	UpdatePrescription(ctx context.Context, id uuid.UUID, req *dto.UpdatePrescriptionRequest) (*dto.PrescriptionResponse, error)
	DeletePrescription(ctx context.Context, id uuid.UUID) error
}

type prescriptionUsecase struct {
	db               *gorm.DB
	log              *logrus.Logger
	userRepo         repository.UserRepository
	prescriptionRepo repository.PrescriptionRepository
	emrRepo          repository.EMRRepository
	auditService     service.AuditService
}

func NewPrescriptionUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	userRepo repository.UserRepository,
	prescriptionRepo repository.PrescriptionRepository,
	emrRepo repository.EMRRepository,
	auditService service.AuditService,
) PrescriptionUsecase {
	return &prescriptionUsecase{
		db:               db,
		log:              log,
		userRepo:         userRepo,
		prescriptionRepo: prescriptionRepo,
		emrRepo:          emrRepo,
		auditService:     auditService,
	}
}

func (u *prescriptionUsecase) ListPrescriptions(ctx context.Context) (*dto.PrescriptionListResponse, error) {
	db := u.db.WithContext(ctx)
	actor, err := currentActor(ctx, db, u.userRepo)
	if err != nil {
		return nil, err
	}

	prescriptions, err := u.prescriptionRepo.FindVisible(db, actor)
	if err != nil {
		u.log.Warnf("Failed to list prescriptions for %s: %+v", actor.UserID, err)
		return nil, err
	}

	return &dto.PrescriptionListResponse{
		Prescriptions: converter.PrescriptionsToResponses(prescriptions),
		Total:         len(prescriptions),
	}, nil
}

// findVisiblePrescription loads a prescription and checks the caller's
// relationship through the owning EMR.
func (u *prescriptionUsecase) findVisiblePrescription(db *gorm.DB, actor access.Actor, id uuid.UUID) (*entity.Prescription, error) {
	prescription, err := u.prescriptionRepo.FindByID(db, id)
	if err != nil {
		u.log.Warnf("Failed to find prescription %s: %+v", id, err)
		return nil, err
	}
	if prescription == nil {
		return nil, ErrPrescriptionNotFound
	}
	if !access.RelatedPatientOrDoctor(actor, prescription.EMR.PatientID, prescription.EMR.DoctorID) {
		return nil, ErrPrescriptionNotFound
	}
	return prescription, nil
}

func (u *prescriptionUsecase) GetPrescription(ctx context.Context, id uuid.UUID) (*dto.PrescriptionResponse, error) {
	db := u.db.WithContext(ctx)
	actor, err := currentActor(ctx, db, u.userRepo)
	if err != nil {
		return nil, err
	}

	prescription, err := u.findVisiblePrescription(db, actor, id)
	if err != nil {
		return nil, err
	}

	return converter.PrescriptionToResponse(prescription), nil
}

// CreatePrescription requires a doctor who authored the owning EMR.
func (u *prescriptionUsecase) CreatePrescription(ctx context.Context, req *dto.CreatePrescriptionRequest) (*dto.PrescriptionResponse, error) {
	db := u.db.WithContext(ctx)
	actor, err := currentActor(ctx, db, u.userRepo)
	if err != nil {
		return nil, err
	}
	if !access.DoctorOrReadOnly(actor, true) {
		return nil, ErrOnlyDoctorsWriteEMR
	}

	emr, err := u.emrRepo.FindByID(db, req.EMRID)
	if err != nil {
		u.log.Warnf("Failed to find EMR %s: %+v", req.EMRID, err)
		return nil, err
	}
	if emr == nil {
		return nil, ErrEMRNotFound
	}
	if !emr.AuthoredBy(actor.UserID) {
		return nil, ErrNotRecordAuthor
	}

	refillDate, err := parseDate(req.RefillDate)
	if err != nil {
		return nil, err
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	prescription := &entity.Prescription{
		EMRID:          req.EMRID,
		MedicationName: req.MedicationName,
		Dosage:         req.Dosage,
		Instructions:   req.Instructions,
		RefillDate:     refillDate,
	}

	if err := u.prescriptionRepo.Create(tx, prescription); err != nil {
		u.log.Warnf("Failed to create prescription: %+v", err)
		return nil, err
	}

	if err := u.auditService.Record(tx, actor.UserID, entity.AuditActionPrescriptionWrite, "prescription", prescription.ID.String(), map[string]interface{}{
		"emr_id": req.EMRID.String(),
	}); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.PrescriptionToResponse(prescription), nil
}

func (u *prescriptionUsecase) UpdatePrescription(ctx context.Context, id uuid.UUID, req *dto.UpdatePrescriptionRequest) (*dto.PrescriptionResponse, error) {
	db := u.db.WithContext(ctx)
	actor, err := currentActor(ctx, db, u.userRepo)
	if err != nil {
		return nil, err
	}

	prescription, err := u.findVisiblePrescription(db, actor, id)
	if err != nil {
		return nil, err
	}
	if !access.DoctorOrReadOnly(actor, true) {
		return nil, ErrOnlyDoctorsWriteEMR
	}

	refillDate, err := parseDate(req.RefillDate)
	if err != nil {
		return nil, err
	}

	prescription.MedicationName = req.MedicationName
	prescription.Dosage = req.Dosage
	prescription.Instructions = req.Instructions
	prescription.RefillDate = refillDate

	if err := u.prescriptionRepo.Update(db, prescription); err != nil {
		u.log.Warnf("Failed to update prescription %s: %+v", id, err)
		return nil, err
	}

	return converter.PrescriptionToResponse(prescription), nil
}

func (u *prescriptionUsecase) DeletePrescription(ctx context.Context, id uuid.UUID) error {
	db := u.db.WithContext(ctx)
	actor, err := currentActor(ctx, db, u.userRepo)
	if err != nil {
		return err
	}

	prescription, err := u.findVisiblePrescription(db, actor, id)
	if err != nil {
		return err
	}
	if !access.DoctorOrReadOnly(actor, true) {
		return ErrOnlyDoctorsWriteEMR
	}

	if err := u.prescriptionRepo.Delete(db, prescription.ID); err != nil {
		u.log.Warnf("Failed to delete prescription %s: %+v", id, err)
		return err
	}

	return nil
}
