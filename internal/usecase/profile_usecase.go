package usecase

import (
	"context"
	"errors"
	"time"

	"go-healthcare-records/internal/converter"
	"go-healthcare-records/internal/delivery/dto"
	"go-healthcare-records/internal/domain/entity"
	"go-healthcare-records/internal/domain/repository"
	"go-healthcare-records/internal/service"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrProfileAlreadyExists = errors.New("a profile already exists for this user")
	ErrInvalidDateFormat    = errors.New("invalid date format, use YYYY-MM-DD")
)

// ProfileUsecase attaches a role profile to a registered user. A user gets
// at most one profile, patient or doctor, never both.
type ProfileUsecase interface {
	CreatePatientProfile(ctx context.Context, req *dto.CreatePatientProfileRequest) (*dto.PatientResponse, error)
	CreateDoctorProfile(ctx context.Context, req *dto.CreateDoctorProfileRequest) (*dto.DoctorResponse, error)
}

type profileUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	userRepo     repository.UserRepository
	patientRepo  repository.PatientRepository
	doctorRepo   repository.DoctorRepository
	auditService service.AuditService
}

func NewProfileUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	userRepo repository.UserRepository,
	patientRepo repository.PatientRepository,
	doctorRepo repository.DoctorRepository,
	auditService service.AuditService,
) ProfileUsecase {
	return &profileUsecase{
		db:           db,
		log:          log,
		userRepo:     userRepo,
		patientRepo:  patientRepo,
		doctorRepo:   doctorRepo,
		auditService: auditService,
	}
}

func parseDate(value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	parsed, err := time.Parse("2006-01-02", value)
	if err != nil {
		return nil, ErrInvalidDateFormat
	}
	return &parsed, nil
}

func (u *profileUsecase) CreatePatientProfile(ctx context.Context, req *dto.CreatePatientProfileRequest) (*dto.PatientResponse, error) {
	actor, err := currentActor(ctx, u.db.WithContext(ctx), u.userRepo)
	if err != nil {
		return nil, err
	}
	if actor.Role != entity.RoleUnassigned {
		return nil, ErrProfileAlreadyExists
	}

	dob, err := parseDate(req.DateOfBirth)
	if err != nil {
		return nil, err
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	patient := &entity.Patient{
		UserID:             actor.UserID,
		FullName:           req.FullName,
		DateOfBirth:        dob,
		Gender:             req.Gender,
		Phone:              req.Phone,
		Address:            req.Address,
		Allergies:          req.Allergies,
		ExistingConditions: req.ExistingConditions,
		Medications:        req.Medications,
	}

	if err := u.patientRepo.Create(tx, patient); err != nil {
		if isDuplicateKeyError(err, "pkey") {
			return nil, ErrProfileAlreadyExists
		}
		u.log.Warnf("Failed to create patient profile: %+v", err)
		return nil, err
	}

	if err := u.userRepo.UpdateRole(tx, actor.UserID, entity.RolePatient); err != nil {
		// Zero rows means a concurrent request already claimed a role.
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProfileAlreadyExists
		}
		u.log.Warnf("Failed to tag user role: %+v", err)
		return nil, err
	}

	if err := u.auditService.Record(tx, actor.UserID, entity.AuditActionProfileCreate, "patient", actor.UserID.String(), map[string]interface{}{
		"role": string(entity.RolePatient),
	}); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.PatientToResponse(patient), nil
}

func (u *profileUsecase) CreateDoctorProfile(ctx context.Context, req *dto.CreateDoctorProfileRequest) (*dto.DoctorResponse, error) {
	actor, err := currentActor(ctx, u.db.WithContext(ctx), u.userRepo)
	if err != nil {
		return nil, err
	}
	if actor.Role != entity.RoleUnassigned {
		return nil, ErrProfileAlreadyExists
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	doctor := &entity.Doctor{
		UserID:         actor.UserID,
		FullName:       req.FullName,
		Specialization: req.Specialization,
		Phone:          req.Phone,
		OfficeAddress:  req.OfficeAddress,
	}

	if err := u.doctorRepo.Create(tx, doctor); err != nil {
		if isDuplicateKeyError(err, "pkey") {
			return nil, ErrProfileAlreadyExists
		}
		u.log.Warnf("Failed to create doctor profile: %+v", err)
		return nil, err
	}

	if err := u.userRepo.UpdateRole(tx, actor.UserID, entity.RoleDoctor); err != nil {
		// Zero rows means a concurrent request already claimed a role.
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProfileAlreadyExists
		}
		u.log.Warnf("Failed to tag user role: %+v", err)
		return nil, err
	}

	if err := u.auditService.Record(tx, actor.UserID, entity.AuditActionProfileCreate, "doctor", actor.UserID.String(), map[string]interface{}{
		"role": string(entity.RoleDoctor),
	}); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.DoctorToResponse(doctor), nil
}
