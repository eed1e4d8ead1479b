package repository

import (
	"go-healthcare-records/internal/access"
	"go-healthcare-records/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AppointmentRepository interface {
	Create(db *gorm.DB, appointment *entity.Appointment) error
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.Appointment, error)
	FindVisible(db *gorm.DB, actor access.Actor, filter *entity.AppointmentFilter) ([]entity.Appointment, error)
	Update(db *gorm.DB, appointment *entity.Appointment) error
	Delete(db *gorm.DB, id uuid.UUID) error
}

type MessageRepository interface {
	Create(db *gorm.DB, message *entity.Message) error
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.Message, error)
	FindVisible(db *gorm.DB, actor access.Actor) ([]entity.Message, error)
}

type HealthMetricRepository interface {
	Create(db *gorm.DB, metric *entity.HealthMetric) error
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.HealthMetric, error)
	FindVisible(db *gorm.DB, actor access.Actor) ([]entity.HealthMetric, error)
}
