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

type appointmentRepository struct{}

func NewAppointmentRepository() domainRepo.AppointmentRepository {
	return &appointmentRepository{}
}

func (r *appointmentRepository) Create(db *gorm.DB, appointment *entity.Appointment) error {
	return db.Create(appointment).Error
}

func (r *appointmentRepository) FindByID(db *gorm.DB, id uuid.UUID) (*entity.Appointment, error) {
	var appointment entity.Appointment
	err := db.Preload("Patient").Preload("Doctor").Where("id = ?", id).First(&appointment).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &appointment, nil
}

func (r *appointmentRepository) FindVisible(db *gorm.DB, actor access.Actor, filter *entity.AppointmentFilter) ([]entity.Appointment, error) {
	query := db.Scopes(access.AppointmentsVisibleTo(actor))

	if filter != nil {
		if filter.Status != "" {
			query = query.Where("status = ?", filter.Status)
		}
		if filter.From != "" {
			query = query.Where("appointment_datetime >= ?", filter.From)
		}
		if filter.To != "" {
			query = query.Where("appointment_datetime <= ?", filter.To)
		}
	}

	var appointments []entity.Appointment
	err := query.Order("appointment_datetime ASC").Find(&appointments).Error
	if err != nil {
		return nil, err
	}
	return appointments, nil
}

func (r *appointmentRepository) Update(db *gorm.DB, appointment *entity.Appointment) error {
	return db.Omit(clause.Associations).Save(appointment).Error
}

func (r *appointmentRepository) Delete(db *gorm.DB, id uuid.UUID) error {
	return db.Where("id = ?", id).Delete(&entity.Appointment{}).Error
}

type messageRepository struct{}

func NewMessageRepository() domainRepo.MessageRepository {
	return &messageRepository{}
}

func (r *messageRepository) Create(db *gorm.DB, message *entity.Message) error {
	return db.Create(message).Error
}

func (r *messageRepository) FindByID(db *gorm.DB, id uuid.UUID) (*entity.Message, error) {
	var message entity.Message
	err := db.Where("id = ?", id).First(&message).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &message, nil
}

func (r *messageRepository) FindVisible(db *gorm.DB, actor access.Actor) ([]entity.Message, error) {
	var messages []entity.Message
	err := db.Scopes(access.MessagesVisibleTo(actor)).
		Order("sent_at DESC").
		Find(&messages).Error
	if err != nil {
		return nil, err
	}
	return messages, nil
}

type healthMetricRepository struct{}

func NewHealthMetricRepository() domainRepo.HealthMetricRepository {
	return &healthMetricRepository{}
}

func (r *healthMetricRepository) Create(db *gorm.DB, metric *entity.HealthMetric) error {
	return db.Create(metric).Error
}

func (r *healthMetricRepository) FindByID(db *gorm.DB, id uuid.UUID) (*entity.HealthMetric, error) {
	var metric entity.HealthMetric
	err := db.Where("id = ?", id).First(&metric).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &metric, nil
}

func (r *healthMetricRepository) FindVisible(db *gorm.DB, actor access.Actor) ([]entity.HealthMetric, error) {
	var metrics []entity.HealthMetric
	err := db.Scopes(access.HealthMetricsVisibleTo(actor)).
		Order("recorded_at DESC").
		Find(&metrics).Error
	if err != nil {
		return nil, err
	}
	return metrics, nil
}
