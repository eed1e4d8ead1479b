package repository

import (
	"testing"

	"go-healthcare-records/internal/domain/entity"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
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

func TestUpdateRoleClaimsUnassignedRowOnly(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepository()
	id := uuid.New()

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "users" SET .+ WHERE id = \$\d+ AND role = \$\d+`).
		WithArgs(string(entity.RolePatient), sqlmock.AnyArg(), id, string(entity.RoleUnassigned)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	require.NoError(t, repo.UpdateRole(db, id, entity.RolePatient))
	assert.NoError(t, mock.ExpectationsWereMet())
}

// The guarded update is what stops two concurrent profile creations from
// giving one user both roles: whoever updates zero rows lost the claim.
func TestUpdateRoleLosesClaimWhenRoleTaken(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepository()
	id := uuid.New()

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "users" SET .+ WHERE id = \$\d+ AND role = \$\d+`).
		WithArgs(string(entity.RoleDoctor), sqlmock.AnyArg(), id, string(entity.RoleUnassigned)).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	err := repo.UpdateRole(db, id, entity.RoleDoctor)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}
