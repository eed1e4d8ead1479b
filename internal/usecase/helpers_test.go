package usecase

import (
	"context"
	"io"
	"testing"

	"go-healthcare-records/internal/access"
	"go-healthcare-records/internal/delivery/http/middleware"
	"go-healthcare-records/internal/domain/entity"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// newTestDB opens gorm over a sqlmock connection so transaction boundaries
// can be asserted while the repositories themselves are faked.
func newTestDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	return db, mock
}

func testLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func authedContext(userID uuid.UUID) context.Context {
	return context.WithValue(context.Background(), middleware.UserIDKey, userID)
}

type fakeUserRepo struct {
	user          *entity.User
	createErr     error
	updateRoleErr error
	taggedRole    entity.Role
}

func (f *fakeUserRepo) Create(db *gorm.DB, user *entity.User) error {
	if f.createErr != nil {
		return f.createErr
	}
	user.ID = uuid.New()
	return nil
}

func (f *fakeUserRepo) FindByID(db *gorm.DB, id uuid.UUID) (*entity.User, error) {
	return f.user, nil
}

func (f *fakeUserRepo) FindByIDWithProfiles(db *gorm.DB, id uuid.UUID) (*entity.User, error) {
	return f.user, nil
}

func (f *fakeUserRepo) FindByUsername(db *gorm.DB, username string) (*entity.User, error) {
	return f.user, nil
}

func (f *fakeUserRepo) UpdateRole(db *gorm.DB, id uuid.UUID, role entity.Role) error {
	if f.updateRoleErr != nil {
		return f.updateRoleErr
	}
	f.taggedRole = role
	return nil
}

type fakePatientRepo struct {
	patient   *entity.Patient
	created   *entity.Patient
	createErr error
}

func (f *fakePatientRepo) Create(db *gorm.DB, patient *entity.Patient) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.created = patient
	return nil
}

func (f *fakePatientRepo) FindByUserID(db *gorm.DB, userID uuid.UUID) (*entity.Patient, error) {
	return f.patient, nil
}

func (f *fakePatientRepo) FindVisible(db *gorm.DB, actor access.Actor) ([]entity.Patient, error) {
	return nil, nil
}

func (f *fakePatientRepo) Update(db *gorm.DB, patient *entity.Patient) error { return nil }

func (f *fakePatientRepo) Delete(db *gorm.DB, userID uuid.UUID) error { return nil }

type fakeDoctorRepo struct {
	doctor    *entity.Doctor
	created   *entity.Doctor
	createErr error
}

func (f *fakeDoctorRepo) Create(db *gorm.DB, doctor *entity.Doctor) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.created = doctor
	return nil
}

func (f *fakeDoctorRepo) FindByUserID(db *gorm.DB, userID uuid.UUID) (*entity.Doctor, error) {
	return f.doctor, nil
}

func (f *fakeDoctorRepo) FindVisible(db *gorm.DB, actor access.Actor) ([]entity.Doctor, error) {
	return nil, nil
}

func (f *fakeDoctorRepo) Update(db *gorm.DB, doctor *entity.Doctor) error { return nil }

func (f *fakeDoctorRepo) Delete(db *gorm.DB, userID uuid.UUID) error { return nil }

type fakeEMRRepo struct {
	emr       *entity.EMR
	updated   *entity.EMR
	deletedID uuid.UUID
	createErr error
}

func (f *fakeEMRRepo) Create(db *gorm.DB, emr *entity.EMR) error {
	if f.createErr != nil {
		return f.createErr
	}
	emr.ID = uuid.New()
	return nil
}

func (f *fakeEMRRepo) FindByID(db *gorm.DB, id uuid.UUID) (*entity.EMR, error) {
	return f.emr, nil
}

func (f *fakeEMRRepo) FindVisible(db *gorm.DB, actor access.Actor) ([]entity.EMR, error) {
	return nil, nil
}

func (f *fakeEMRRepo) Update(db *gorm.DB, emr *entity.EMR) error {
	f.updated = emr
	return nil
}

func (f *fakeEMRRepo) Delete(db *gorm.DB, id uuid.UUID) error {
	f.deletedID = id
	return nil
}

type fakeAuditService struct {
	err     error
	actions []string
}

func (f *fakeAuditService) Record(tx *gorm.DB, userID uuid.UUID, action string, entityName string, entityID string, detail map[string]interface{}) error {
	if f.err != nil {
		return f.err
	}
	f.actions = append(f.actions, action)
	return nil
}
