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

var ErrLabResultNotFound = errors.New("lab result not found")

type LabResultUsecase interface {
	ListLabResults(ctx context.Context) (*dto.LabResultListResponse, error)
	GetLabResult(ctx context.Context, id uuid.UUID) (*dto.LabResultResponse, error)
	CreateLabResult(ctx context.Context, req *dto.CreateLabResultRequest) (*dto.LabResultResponse, error)
	UpdateLabResult(ctx context.Context, id uuid.UUID, req *dto.UpdateLabResultRequest) (*dto.LabResultResponse, error)
	DeleteLabResult(ctx context.Context, id uuid.UUID) error
}

type labResultUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	userRepo     repository.UserRepository
	labRepo      repository.LabResultRepository
	emrRepo      repository.EMRRepository
	auditService service.AuditService
}

func NewLabResultUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	userRepo repository.UserRepository,
	labRepo repository.LabResultRepository,
	emrRepo repository.EMRRepository,
	auditService service.AuditService,
) LabResultUsecase {
	return &labResultUsecase{
		db:           db,
		log:          log,
		userRepo:     userRepo,
		labRepo:      labRepo,
		emrRepo:      emrRepo,
		auditService: auditService,
	}
}

func (u *labResultUsecase) ListLabResults(ctx context.Context) (*dto.LabResultListResponse, error) {
	db := u.db.WithContext(ctx)
	actor, err := currentActor(ctx, db, u.userRepo)
	if err != nil {
		return nil, err
	}

	results, err := u.labRepo.FindVisible(db, actor)
	if err != nil {
		u.log.Warnf("Failed to list lab results for %s: %+v", actor.UserID, err)
		return nil, err
	}

	return &dto.LabResultListResponse{
		LabResults: converter.LabResultsToResponses(results),
		Total:      len(results),
	}, nil
}

func (u *labResultUsecase) findVisibleLabResult(db *gorm.DB, actor access.Actor, id uuid.UUID) (*entity.LabResult, error) {
	result, err := u.labRepo.FindByID(db, id)
	if err != nil {
		u.log.Warnf("Failed to find lab result %s: %+v", id, err)
		return nil, err
	}
	if result == nil {
		return nil, ErrLabResultNotFound
	}
	if !access.RelatedPatientOrDoctor(actor, result.EMR.PatientID, result.EMR.DoctorID) {
		return nil, ErrLabResultNotFound
	}
	return result, nil
}

func (u *labResultUsecase) GetLabResult(ctx context.Context, id uuid.UUID) (*dto.LabResultResponse, error) {
	db := u.db.WithContext(ctx)
	actor, err := currentActor(ctx, db, u.userRepo)
	if err != nil {
		return nil, err
	}

	result, err := u.findVisibleLabResult(db, actor, id)
	if err != nil {
		return nil, err
	}

	return converter.LabResultToResponse(result), nil
}

// CreateLabResult requires a doctor who authored the owning EMR.
func (u *labResultUsecase) CreateLabResult(ctx context.Context, req *dto.CreateLabResultRequest) (*dto.LabResultResponse, error) {
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

	testDate, err := parseDate(req.TestDate)
	if err != nil {
		return nil, err
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	result := &entity.LabResult{
		EMRID:          req.EMRID,
		TestName:       req.TestName,
		TestDate:       testDate,
		ResultFilePath: req.ResultFilePath,
		Notes:          req.Notes,
	}

	if err := u.labRepo.Create(tx, result); err != nil {
		u.log.Warnf("Failed to create lab result: %+v", err)
		return nil, err
	}

	if err := u.auditService.Record(tx, actor.UserID, entity.AuditActionLabResultWrite, "lab_result", result.ID.String(), map[string]interface{}{
		"emr_id": req.EMRID.String(),
	}); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.LabResultToResponse(result), nil
}

func (u *labResultUsecase) UpdateLabResult(ctx context.Context, id uuid.UUID, req *dto.UpdateLabResultRequest) (*dto.LabResultResponse, error) {
	db := u.db.WithContext(ctx)
	actor, err := currentActor(ctx, db, u.userRepo)
	if err != nil {
		return nil, err
	}

	result, err := u.findVisibleLabResult(db, actor, id)
	if err != nil {
		return nil, err
	}
	if !access.DoctorOrReadOnly(actor, true) {
		return nil, ErrOnlyDoctorsWriteEMR
	}

	testDate, err := parseDate(req.TestDate)
	if err != nil {
		return nil, err
	}

	result.TestName = req.TestName
	result.TestDate = testDate
	result.ResultFilePath = req.ResultFilePath
	result.Notes = req.Notes

	if err := u.labRepo.Update(db, result); err != nil {
		u.log.Warnf("Failed to update lab result %s: %+v", id, err)
		return nil, err
	}

	return converter.LabResultToResponse(result), nil
}

func (u *labResultUsecase) DeleteLabResult(ctx context.Context, id uuid.UUID) error {
	db := u.db.WithContext(ctx)
	actor, err := currentActor(ctx, db, u.userRepo)
	if err != nil {
		return err
	}

	result, err := u.findVisibleLabResult(db, actor, id)
	if err != nil {
		return err
	}
	if !access.DoctorOrReadOnly(actor, true) {
		return ErrOnlyDoctorsWriteEMR
	}

	if err := u.labRepo.Delete(db, result.ID); err != nil {
		u.log.Warnf("Failed to delete lab result %s: %+v", id, err)
		return err
	}

	return nil
}
