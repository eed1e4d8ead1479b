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
	ErrAppointmentNotFound       = errors.New("appointment not found")
	ErrOnlyPatientsBook          = errors.New("only patients can request appointments")
	ErrAppointmentDoctorNotFound = errors.New("doctor for appointment not found")
)

type AppointmentUsecase interface {
	ListAppointments(ctx context.Context, filter *entity.AppointmentFilter) (*dto.AppointmentListResponse, error)
	GetAppointment(ctx context.Context, id uuid.UUID) (*dto.AppointmentResponse, error)
	CreateAppointment(ctx context.Context, req *dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error)
	UpdateAppointment(ctx context.Context, id uuid.UUID, req *dto.UpdateAppointmentRequest) (*dto.AppointmentResponse, error)
	DeleteAppointment(ctx context.Context, id uuid.UUID) error
}

type appointmentUsecase struct {
	db              *gorm.DB
	log             *logrus.Logger
	userRepo        repository.UserRepository
	appointmentRepo repository.AppointmentRepository
	doctorRepo      repository.DoctorRepository
	auditService    service.AuditService
}

func NewAppointmentUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	userRepo repository.UserRepository,
	appointmentRepo repository.AppointmentRepository,
	doctorRepo repository.DoctorRepository,
	auditService service.AuditService,
) AppointmentUsecase {
	return &appointmentUsecase{
		db:              db,
		log:             log,
		userRepo:        userRepo,
		appointmentRepo: appointmentRepo,
		doctorRepo:      doctorRepo,
		auditService:    auditService,
	}
}

func (u *appointmentUsecase) ListAppointments(ctx context.Context, filter *entity.AppointmentFilter) (*dto.AppointmentListResponse, error) {
	db := u.db.WithContext(ctx)
	actor, err := currentActor(ctx, db, u.userRepo)
	if err != nil {
		return nil, err
	}

	appointments, err := u.appointmentRepo.FindVisible(db, actor, filter)
	if err != nil {
		u.log.Warnf("Failed to list appointments for %s: %+v", actor.UserID, err)
		return nil, err
	}

	return &dto.AppointmentListResponse{
		Appointments: converter.AppointmentsToResponses(appointments),
		Total:        len(appointments),
	}, nil
}

func (u *appointmentUsecase) findRelatedAppointment(db *gorm.DB, actor access.Actor, id uuid.UUID) (*entity.Appointment, error) {
	appointment, err := u.appointmentRepo.FindByID(db, id)
	if err != nil {
		u.log.Warnf("Failed to find appointment %s: %+v", id, err)
		return nil, err
	}
	if appointment == nil {
		return nil, ErrAppointmentNotFound
	}
	doctorID := appointment.DoctorID
	if !access.RelatedPatientOrDoctor(actor, appointment.PatientID, &doctorID) {
		return nil, ErrAppointmentNotFound
	}
	return appointment, nil
}

func (u *appointmentUsecase) GetAppointment(ctx context.Context, id uuid.UUID) (*dto.AppointmentResponse, error) {
	db := u.db.WithContext(ctx)
	actor, err := currentActor(ctx, db, u.userRepo)
	if err != nil {
		return nil, err
	}

	appointment, err := u.findRelatedAppointment(db, actor, id)
	if err != nil {
		return nil, err
	}

	return converter.AppointmentToResponse(appointment), nil
}

// CreateAppointment is patient-only. The patient reference comes from the
// session and the status always starts at Requested, whatever the request
// body says.
func (u *appointmentUsecase) CreateAppointment(ctx context.Context, req *dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error) {
	db := u.db.WithContext(ctx)
	actor, err := currentActor(ctx, db, u.userRepo)
	if err != nil {
		return nil, err
	}
	if !actor.IsPatient() {
		return nil, ErrOnlyPatientsBook
	}

	doctor, err := u.doctorRepo.FindByUserID(db, req.DoctorID)
	if err != nil {
		u.log.Warnf("Failed to find doctor %s: %+v", req.DoctorID, err)
		return nil, err
	}
	if doctor == nil {
		return nil, ErrAppointmentDoctorNotFound
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	appointment := &entity.Appointment{
		PatientID:           actor.UserID,
		DoctorID:            req.DoctorID,
		AppointmentDatetime: req.AppointmentDatetime,
		Status:              entity.AppointmentStatusRequested,
		Notes:               req.Notes,
	}

	if err := u.appointmentRepo.Create(tx, appointment); err != nil {
		if isForeignKeyError(err, "doctor") {
			return nil, ErrAppointmentDoctorNotFound
		}
		u.log.Warnf("Failed to create appointment: %+v", err)
		return nil, err
	}

	if err := u.auditService.Record(tx, actor.UserID, entity.AuditActionAppointmentCreate, "appointment", appointment.ID.String(), map[string]interface{}{
		"doctor_id": req.DoctorID.String(),
	}); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.AppointmentToResponse(appointment), nil
}

// UpdateAppointment lets either related party reschedule or set any of the
// four statuses. There is no enforced transition graph.
func (u *appointmentUsecase) UpdateAppointment(ctx context.Context, id uuid.UUID, req *dto.UpdateAppointmentRequest) (*dto.AppointmentResponse, error) {
	db := u.db.WithContext(ctx)
	actor, err := currentActor(ctx, db, u.userRepo)
	if err != nil {
		return nil, err
	}

	appointment, err := u.findRelatedAppointment(db, actor, id)
	if err != nil {
		return nil, err
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	appointment.AppointmentDatetime = req.AppointmentDatetime
	appointment.Status = entity.AppointmentStatus(req.Status)
	appointment.Notes = req.Notes

	if err := u.appointmentRepo.Update(tx, appointment); err != nil {
		u.log.Warnf("Failed to update appointment %s: %+v", id, err)
		return nil, err
	}

	if err := u.auditService.Record(tx, actor.UserID, entity.AuditActionAppointmentUpdate, "appointment", appointment.ID.String(), map[string]interface{}{
		"status": req.Status,
	}); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.AppointmentToResponse(appointment), nil
}

func (u *appointmentUsecase) DeleteAppointment(ctx context.Context, id uuid.UUID) error {
	db := u.db.WithContext(ctx)
	actor, err := currentActor(ctx, db, u.userRepo)
	if err != nil {
		return err
	}

	appointment, err := u.findRelatedAppointment(db, actor, id)
	if err != nil {
		return err
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	if err := u.appointmentRepo.Delete(tx, id); err != nil {
		u.log.Warnf("Failed to delete appointment %s: %+v", id, err)
		return err
	}

	if err := u.auditService.Record(tx, actor.UserID, entity.AuditActionAppointmentDelete, "appointment", appointment.ID.String(), nil); err != nil {
		return err
	}

	return tx.Commit().Error
}
