package repository

import (
	"go-healthcare-records/internal/access"
	"go-healthcare-records/internal/domain/entity"

	"gorm.io/gorm"
)

type AuditLogRepository interface {
	Create(db *gorm.DB, log *entity.AuditLog) error
	FindVisible(db *gorm.DB, actor access.Actor) ([]entity.AuditLog, error)
}
