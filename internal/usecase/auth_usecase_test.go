package usecase

import (
	"context"
	"errors"
	"testing"

	"go-healthcare-records/internal/delivery/dto"
	"go-healthcare-records/internal/domain/entity"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterWritesAuditTrail(t *testing.T) {
	db, mock := newTestDB(t)
	mock.ExpectBegin()
	mock.ExpectCommit()

	userRepo := &fakeUserRepo{}
	audit := &fakeAuditService{}
	uc := NewAuthUsecase(db, testLogger(), userRepo, nil, nil, audit)

	resp, err := uc.Register(context.Background(), &dto.RegisterRequest{
		Username: "newuser",
		Email:    "new@example.com",
		Password: "secret1",
	})
	require.NoError(t, err)
	assert.Equal(t, "newuser", resp.Username)
	assert.Equal(t, string(entity.RoleUnassigned), resp.Role)
	assert.Equal(t, []string{entity.AuditActionUserRegister}, audit.actions)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRegisterDuplicateUsername(t *testing.T) {
	db, mock := newTestDB(t)
	mock.ExpectBegin()
	mock.ExpectRollback()

	userRepo := &fakeUserRepo{
		createErr: &pgconn.PgError{Code: "23505", ConstraintName: "users_username_key"},
	}
	audit := &fakeAuditService{}
	uc := NewAuthUsecase(db, testLogger(), userRepo, nil, nil, audit)

	_, err := uc.Register(context.Background(), &dto.RegisterRequest{
		Username: "taken",
		Email:    "taken@example.com",
		Password: "secret1",
	})
	assert.ErrorIs(t, err, ErrUsernameAlreadyExists)
	assert.Empty(t, audit.actions)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRegisterAuditFailureAborts(t *testing.T) {
	db, mock := newTestDB(t)
	mock.ExpectBegin()
	mock.ExpectRollback()

	auditErr := errors.New("audit write failed")
	uc := NewAuthUsecase(db, testLogger(), &fakeUserRepo{}, nil, nil, &fakeAuditService{err: auditErr})

	_, err := uc.Register(context.Background(), &dto.RegisterRequest{
		Username: "newuser",
		Email:    "new@example.com",
		Password: "secret1",
	})
	assert.ErrorIs(t, err, auditErr)
	assert.NoError(t, mock.ExpectationsWereMet())
}
