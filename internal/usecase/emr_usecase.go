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
	ErrEMRNotFound         = errors.New("medical record not found")
	ErrOnlyDoctorsWriteEMR = errors.New("only doctors can create medical records")
	ErrNotRelatedToRecord  = errors.New("record does not belong to you")
	ErrEMRPatientNotFound  = errors.New("patient for medical record not found")
)

type EMRUsecase interface {
	ListEMRs(ctx context.Context) (*dto.EMRListResponse, error)
	GetEMR(ctx context.Context, id uuid.UUID) (*dto.EMRResponse, error)
	CreateEMR(ctx context.Context, req *dto.CreateEMRRequest) (*dto.EMRResponse, error)
	UpdateEMR(ctx context.Context, id uuid.UUID, req *dto.UpdateEMRRequest) (*dto.EMRResponse, error)
	DeleteEMR(ctx context.Context, id uuid.UUID) error
}

type emrUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	userRepo     repository.UserRepository
	emrRepo      repository.EMRRepository
	patientRepo  repository.PatientRepository
	auditService service.AuditService
}

func NewEMRUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	userRepo repository.UserRepository,
	emrRepo repository.EMRRepository,
	patientRepo repository.PatientRepository,
	auditService service.AuditService,
) EMRUsecase {
	return &emrUsecase{
		db:           db,
		log:          log,
		userRepo:     userRepo,
		emrRepo:      emrRepo,
		patientRepo:  patientRepo,
		auditService: auditService,
	}
}

func (u *emrUsecase) ListEMRs(ctx context.Context) (*dto.EMRListResponse, error) {
	db := u.db.WithContext(ctx)
	actor, err := currentActor(ctx, db, u.userRepo)
	if err != nil {
		return nil, err
	}

	emrs, err := u.emrRepo.FindVisible(db, actor)
	if err != nil {
		u.log.Warnf("Failed to list EMRs for %s: %+v", actor.UserID, err)
		return nil, err
	}

	return &dto.EMRListResponse{
		EMRs:  converter.EMRsToResponses(emrs),
		Total: len(emrs),
	}, nil
}

// findRelatedEMR fetches a record and checks the caller's relationship to
// it. Unrelated records surface as not found.
func (u *emrUsecase) findRelatedEMR(db *gorm.DB, actor access.Actor, id uuid.UUID) (*entity.EMR, error) {
	emr, err := u.emrRepo.FindByID(db, id)
	if err != nil {
		u.log.Warnf("Failed to find EMR %s: %+v", id, err)
		return nil, err
	}
	if emr == nil {
		return nil, ErrEMRNotFound
	}
	if !access.RelatedPatientOrDoctor(actor, emr.PatientID, emr.DoctorID) {
		return nil, ErrEMRNotFound
	}
	return emr, nil
}

func (u *emrUsecase) GetEMR(ctx context.Context, id uuid.UUID) (*dto.EMRResponse, error) {
	db := u.db.WithContext(ctx)
	actor, err := currentActor(ctx, db, u.userRepo)
	if err != nil {
		return nil, err
	}

	emr, err := u.findRelatedEMR(db, actor, id)
	if err != nil {
		return nil, err
	}

	return converter.EMRToResponse(emr), nil
}

// CreateEMR is doctor-only; the authoring doctor is taken from the session,
// never from the request body.
func (u *emrUsecase) CreateEMR(ctx context.Context, req *dto.CreateEMRRequest) (*dto.EMRResponse, error) {
	db := u.db.WithContext(ctx)
	actor, err := currentActor(ctx, db, u.userRepo)
	if err != nil {
		return nil, err
	}
	if !actor.IsDoctor() {
		return nil, ErrOnlyDoctorsWriteEMR
	}

	patient, err := u.patientRepo.FindByUserID(db, req.PatientID)
	if err != nil {
		u.log.Warnf("Failed to find patient %s: %+v", req.PatientID, err)
		return nil, err
	}
	if patient == nil {
		return nil, ErrEMRPatientNotFound
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	doctorID := actor.UserID
	emr := &entity.EMR{
		PatientID:     req.PatientID,
		DoctorID:      &doctorID,
		Diagnosis:     req.Diagnosis,
		TreatmentPlan: req.TreatmentPlan,
	}

	if err := u.emrRepo.Create(tx, emr); err != nil {
		// The patient existence check above can race with a profile delete.
		if isForeignKeyError(err, "patient") {
			return nil, ErrEMRPatientNotFound
		}
		u.log.Warnf("Failed to create EMR: %+v", err)
		return nil, err
	}

	if err := u.auditService.Record(tx, actor.UserID, entity.AuditActionEMRCreate, "emr", emr.ID.String(), map[string]interface{}{
		"patient_id": emr.PatientID.String(),
	}); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.EMRToResponse(emr), nil
}

// UpdateEMR is open to either related party; only creation is doctor-gated.
func (u *emrUsecase) UpdateEMR(ctx context.Context, id uuid.UUID, req *dto.UpdateEMRRequest) (*dto.EMRResponse, error) {
	db := u.db.WithContext(ctx)
	actor, err := currentActor(ctx, db, u.userRepo)
	if err != nil {
		return nil, err
	}
	emr, err := u.findRelatedEMR(db, actor, id)
	if err != nil {
		return nil, err
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	emr.Diagnosis = req.Diagnosis
	emr.TreatmentPlan = req.TreatmentPlan

	if err := u.emrRepo.Update(tx, emr); err != nil {
		u.log.Warnf("Failed to update EMR %s: %+v", id, err)
		return nil, err
	}

	if err := u.auditService.Record(tx, actor.UserID, entity.AuditActionEMRUpdate, "emr", emr.ID.String(), nil); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.EMRToResponse(emr), nil
}

// DeleteEMR cascades to the record's prescriptions and lab results at the
// storage layer.
func (u *emrUsecase) DeleteEMR(ctx context.Context, id uuid.UUID) error {
	db := u.db.WithContext(ctx)
	actor, err := currentActor(ctx, db, u.userRepo)
	if err != nil {
		return err
	}
	emr, err := u.findRelatedEMR(db, actor, id)
	if err != nil {
		return err
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	if err := u.emrRepo.Delete(tx, id); err != nil {
		u.log.Warnf("Failed to delete EMR %s: %+v", id, err)
		return err
	}

	if err := u.auditService.Record(tx, actor.UserID, entity.AuditActionEMRDelete, "emr", emr.ID.String(), map[string]interface{}{
		"patient_id": emr.PatientID.String(),
	}); err != nil {
		return err
	}

	return tx.Commit().Error
}
