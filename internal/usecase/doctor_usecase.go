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

var ErrDoctorNotFound = errors.New("doctor not found")

// DoctorUsecase exposes the doctor directory. Every authenticated user may
// browse it; writes are ownership-gated.
type DoctorUsecase interface {
	ListDoctors(ctx context.Context) (*dto.DoctorListResponse, error)
	GetDoctor(ctx context.Context, userID uuid.UUID) (*dto.DoctorResponse, error)
	UpdateDoctor(ctx context.Context, userID uuid.UUID, req *dto.UpdateDoctorProfileRequest) (*dto.DoctorResponse, error)
	DeleteDoctor(ctx context.Context, userID uuid.UUID) error
}

type doctorUsecase struct {
	db         *gorm.DB
	log        *logrus.Logger
	userRepo   repository.UserRepository
	doctorRepo repository.DoctorRepository
}

func NewDoctorUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	userRepo repository.UserRepository,
	doctorRepo repository.DoctorRepository,
) DoctorUsecase {
	return &doctorUsecase{
		db:         db,
		log:        log,
		userRepo:   userRepo,
		doctorRepo: doctorRepo,
	}
}

func (u *doctorUsecase) ListDoctors(ctx context.Context) (*dto.DoctorListResponse, error) {
	db := u.db.WithContext(ctx)
	actor, err := currentActor(ctx, db, u.userRepo)
	if err != nil {
		return nil, err
	}

	doctors, err := u.doctorRepo.FindVisible(db, actor)
	if err != nil {
		u.log.Warnf("Failed to list doctors: %+v", err)
		return nil, err
	}

	return &dto.DoctorListResponse{
		Doctors: converter.DoctorsToResponses(doctors),
		Total:   len(doctors),
	}, nil
}

func (u *doctorUsecase) GetDoctor(ctx context.Context, userID uuid.UUID) (*dto.DoctorResponse, error) {
	db := u.db.WithContext(ctx)
	if _, err := currentActor(ctx, db, u.userRepo); err != nil {
		return nil, err
	}

	doctor, err := u.doctorRepo.FindByUserID(db, userID)
	if err != nil {
		u.log.Warnf("Failed to find doctor %s: %+v", userID, err)
		return nil, err
	}
	if doctor == nil {
		return nil, ErrDoctorNotFound
	}

	return converter.DoctorToResponse(doctor), nil
}

func (u *doctorUsecase) UpdateDoctor(ctx context.Context, userID uuid.UUID, req *dto.UpdateDoctorProfileRequest) (*dto.DoctorResponse, error) {
	db := u.db.WithContext(ctx)
	actor, err := currentActor(ctx, db, u.userRepo)
	if err != nil {
		return nil, err
	}

	doctor, err := u.doctorRepo.FindByUserID(db, userID)
	if err != nil {
		u.log.Warnf("Failed to find doctor %s: %+v", userID, err)
		return nil, err
	}
	if doctor == nil {
		return nil, ErrDoctorNotFound
	}

	if !access.OwnerOrReadOnly(actor, doctor.UserID, true) {
		return nil, ErrNotProfileOwner
	}

	doctor.FullName = req.FullName
	doctor.Specialization = req.Specialization
	doctor.Phone = req.Phone
	doctor.OfficeAddress = req.OfficeAddress

	if err := u.doctorRepo.Update(db, doctor); err != nil {
		u.log.Warnf("Failed to update doctor %s: %+v", userID, err)
		return nil, err
	}

	return converter.DoctorToResponse(doctor), nil
}

func (u *doctorUsecase) DeleteDoctor(ctx context.Context, userID uuid.UUID) error {
	db := u.db.WithContext(ctx)
	actor, err := currentActor(ctx, db, u.userRepo)
	if err != nil {
		return err
	}

	doctor, err := u.doctorRepo.FindByUserID(db, userID)
	if err != nil {
		u.log.Warnf("Failed to find doctor %s: %+v", userID, err)
		return err
	}
	if doctor == nil {
		return ErrDoctorNotFound
	}

	if !access.OwnerOrReadOnly(actor, doctor.UserID, true) {
		return ErrNotProfileOwner
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	// EMR authorship is SET NULL at the storage layer; appointments go
	// with the doctor.
	if err := u.doctorRepo.Delete(tx, userID); err != nil {
		u.log.Warnf("Failed to delete doctor %s: %+v", userID, err)
		return err
	}

	if err := u.userRepo.UpdateRole(tx, userID, entity.RoleUnassigned); err != nil {
		u.log.Warnf("Failed to reset user role: %+v", err)
		return err
	}

	return tx.Commit().Error
}
