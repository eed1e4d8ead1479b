package usecase

import (
	"context"

	"go-healthcare-records/internal/converter"
	"go-healthcare-records/internal/delivery/dto"
	"go-healthcare-records/internal/domain/repository"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// AuditLogUsecase exposes the caller's own slice of the audit trail.
type AuditLogUsecase interface {
	ListAuditLogs(ctx context.Context) (*dto.AuditLogListResponse, error)
}

type auditLogUsecase struct {
	db        *gorm.DB
	log       *logrus.Logger
	userRepo  repository.UserRepository
	auditRepo repository.AuditLogRepository
}

func NewAuditLogUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	userRepo repository.UserRepository,
	auditRepo repository.AuditLogRepository,
) AuditLogUsecase {
	return &auditLogUsecase{
		db:        db,
		log:       log,
		userRepo:  userRepo,
		auditRepo: auditRepo,
	}
}

func (u *auditLogUsecase) ListAuditLogs(ctx context.Context) (*dto.AuditLogListResponse, error) {
	db := u.db.WithContext(ctx)
	actor, err := currentActor(ctx, db, u.userRepo)
	if err != nil {
		return nil, err
	}

	logs, err := u.auditRepo.FindVisible(db, actor)
	if err != nil {
		u.log.Warnf("Failed to list audit logs for %s: %+v", actor.UserID, err)
		return nil, err
	}

	return &dto.AuditLogListResponse{
		Logs:  converter.AuditLogsToResponses(logs),
		Total: len(logs),
	}, nil
}
