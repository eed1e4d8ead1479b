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
	ErrHealthMetricNotFound = errors.New("health metric not found")
	ErrOnlyPatientsRecord   = errors.New("only patients can record health metrics")
)

// HealthMetricUsecase covers patient measurements. Metrics are immutable
// once recorded and visible to the owning patient only.
type HealthMetricUsecase interface {
	ListHealthMetrics(ctx context.Context) (*dto.HealthMetricListResponse, error)
	GetHealthMetric(ctx context.Context, id uuid.UUID) (*dto.HealthMetricResponse, error)
	RecordHealthMetric(ctx context.Context, req *dto.CreateHealthMetricRequest) (*dto.HealthMetricResponse, error)
}

type healthMetricUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	userRepo     repository.UserRepository
	metricRepo   repository.HealthMetricRepository
	auditService service.AuditService
}

func NewHealthMetricUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	userRepo repository.UserRepository,
	metricRepo repository.HealthMetricRepository,
	auditService service.AuditService,
) HealthMetricUsecase {
	return &healthMetricUsecase{
		db:           db,
		log:          log,
		userRepo:     userRepo,
		metricRepo:   metricRepo,
		auditService: auditService,
	}
}

func (u *healthMetricUsecase) ListHealthMetrics(ctx context.Context) (*dto.HealthMetricListResponse, error) {
	db := u.db.WithContext(ctx)
	actor, err := currentActor(ctx, db, u.userRepo)
	if err != nil {
		return nil, err
	}

	metrics, err := u.metricRepo.FindVisible(db, actor)
	if err != nil {
		u.log.Warnf("Failed to list health metrics for %s: %+v", actor.UserID, err)
		return nil, err
	}

	return &dto.HealthMetricListResponse{
		Metrics: converter.HealthMetricsToResponses(metrics),
		Total:   len(metrics),
	}, nil
}

func (u *healthMetricUsecase) GetHealthMetric(ctx context.Context, id uuid.UUID) (*dto.HealthMetricResponse, error) {
	db := u.db.WithContext(ctx)
	actor, err := currentActor(ctx, db, u.userRepo)
	if err != nil {
		return nil, err
	}

	metric, err := u.metricRepo.FindByID(db, id)
	if err != nil {
		u.log.Warnf("Failed to find health metric %s: %+v", id, err)
		return nil, err
	}
	if metric == nil {
		return nil, ErrHealthMetricNotFound
	}
	// Metrics carry no doctor reference, so only the owning patient
	// qualifies.
	if !access.RelatedPatientOrDoctor(actor, metric.PatientID, nil) {
		return nil, ErrHealthMetricNotFound
	}

	return converter.HealthMetricToResponse(metric), nil
}

// RecordHealthMetric is patient-only; the owning patient is stamped from
// the session.
func (u *healthMetricUsecase) RecordHealthMetric(ctx context.Context, req *dto.CreateHealthMetricRequest) (*dto.HealthMetricResponse, error) {
	db := u.db.WithContext(ctx)
	actor, err := currentActor(ctx, db, u.userRepo)
	if err != nil {
		return nil, err
	}
	if !actor.IsPatient() {
		return nil, ErrOnlyPatientsRecord
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	metric := &entity.HealthMetric{
		PatientID:  actor.UserID,
		MetricType: req.MetricType,
		Value:      req.Value,
		Unit:       req.Unit,
	}

	if err := u.metricRepo.Create(tx, metric); err != nil {
		u.log.Warnf("Failed to record health metric: %+v", err)
		return nil, err
	}

	if err := u.auditService.Record(tx, actor.UserID, entity.AuditActionMetricRecord, "health_metric", metric.ID.String(), map[string]interface{}{
		"metric_type": req.MetricType,
	}); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.HealthMetricToResponse(metric), nil
}
