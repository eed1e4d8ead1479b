package repository

import (
	"go-healthcare-records/internal/access"
	"go-healthcare-records/internal/domain/entity"
	domainRepo "go-healthcare-records/internal/domain/repository"

	"gorm.io/gorm"
)

type auditLogRepository struct{}

func NewAuditLogRepository() domainRepo.AuditLogRepository {
	return &auditLogRepository{}
}

func (r *auditLogRepository) Create(db *gorm.DB, log *entity.AuditLog) error {
	return db.Create(log).Error
}

func (r *auditLogRepository) FindVisible(db *gorm.DB, actor access.Actor) ([]entity.AuditLog, error) {
	var logs []entity.AuditLog
	err := db.Scopes(access.AuditLogsVisibleTo(actor)).
		Order("created_at DESC").
		Find(&logs).Error
	if err != nil {
		return nil, err
	}
	return logs, nil
}
