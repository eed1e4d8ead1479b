package usecase

import (
	"errors"
	"testing"

	"go-healthcare-records/internal/delivery/dto"
	"go-healthcare-records/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestCreatePatientProfile(t *testing.T) {
	db, mock := newTestDB(t)
	mock.ExpectBegin()
	mock.ExpectCommit()

	userID := uuid.New()
	userRepo := &fakeUserRepo{user: &entity.User{ID: userID, Username: "pat", Role: entity.RoleUnassigned}}
	patientRepo := &fakePatientRepo{}
	audit := &fakeAuditService{}
	uc := NewProfileUsecase(db, testLogger(), userRepo, patientRepo, &fakeDoctorRepo{}, audit)

	resp, err := uc.CreatePatientProfile(authedContext(userID), &dto.CreatePatientProfileRequest{
		FullName:    "Pat One",
		DateOfBirth: "1990-03-14",
	})
	require.NoError(t, err)
	assert.Equal(t, userID, resp.UserID)
	assert.Equal(t, "Pat One", resp.FullName)
	assert.Equal(t, entity.RolePatient, userRepo.taggedRole)
	assert.Equal(t, []string{entity.AuditActionProfileCreate}, audit.actions)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateDoctorProfile(t *testing.T) {
	db, mock := newTestDB(t)
	mock.ExpectBegin()
	mock.ExpectCommit()

	userID := uuid.New()
	userRepo := &fakeUserRepo{user: &entity.User{ID: userID, Username: "doc", Role: entity.RoleUnassigned}}
	audit := &fakeAuditService{}
	uc := NewProfileUsecase(db, testLogger(), userRepo, &fakePatientRepo{}, &fakeDoctorRepo{}, audit)

	resp, err := uc.CreateDoctorProfile(authedContext(userID), &dto.CreateDoctorProfileRequest{
		FullName:       "Doc One",
		Specialization: "Cardiology",
	})
	require.NoError(t, err)
	assert.Equal(t, userID, resp.UserID)
	assert.Equal(t, entity.RoleDoctor, userRepo.taggedRole)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateProfileRejectsSecondProfile(t *testing.T) {
	tests := []struct {
		name string
		role entity.Role
	}{
		{"existing patient", entity.RolePatient},
		{"existing doctor", entity.RoleDoctor},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			db, mock := newTestDB(t)
			userID := uuid.New()
			userRepo := &fakeUserRepo{user: &entity.User{ID: userID, Role: tc.role}}
			uc := NewProfileUsecase(db, testLogger(), userRepo, &fakePatientRepo{}, &fakeDoctorRepo{}, &fakeAuditService{})

			_, err := uc.CreatePatientProfile(authedContext(userID), &dto.CreatePatientProfileRequest{FullName: "Pat Two"})
			assert.ErrorIs(t, err, ErrProfileAlreadyExists)

			_, err = uc.CreateDoctorProfile(authedContext(userID), &dto.CreateDoctorProfileRequest{FullName: "Doc Two", Specialization: "Neurology"})
			assert.ErrorIs(t, err, ErrProfileAlreadyExists)

			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

// Two concurrent profile creations both read an unassigned role; the guarded
// role update decides the winner and the loser gets a rejection.
func TestCreatePatientProfileRoleClaimRace(t *testing.T) {
	db, mock := newTestDB(t)
	mock.ExpectBegin()
	mock.ExpectRollback()

	userID := uuid.New()
	userRepo := &fakeUserRepo{
		user:          &entity.User{ID: userID, Role: entity.RoleUnassigned},
		updateRoleErr: gorm.ErrRecordNotFound,
	}
	audit := &fakeAuditService{}
	uc := NewProfileUsecase(db, testLogger(), userRepo, &fakePatientRepo{}, &fakeDoctorRepo{}, audit)

	_, err := uc.CreatePatientProfile(authedContext(userID), &dto.CreatePatientProfileRequest{FullName: "Pat One"})
	assert.ErrorIs(t, err, ErrProfileAlreadyExists)
	assert.Empty(t, audit.actions)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreatePatientProfileDuplicateRow(t *testing.T) {
	db, mock := newTestDB(t)
	mock.ExpectBegin()
	mock.ExpectRollback()

	userID := uuid.New()
	userRepo := &fakeUserRepo{user: &entity.User{ID: userID, Role: entity.RoleUnassigned}}
	patientRepo := &fakePatientRepo{
		createErr: &pgconn.PgError{Code: "23505", ConstraintName: "patients_pkey"},
	}
	uc := NewProfileUsecase(db, testLogger(), userRepo, patientRepo, &fakeDoctorRepo{}, &fakeAuditService{})

	_, err := uc.CreatePatientProfile(authedContext(userID), &dto.CreatePatientProfileRequest{FullName: "Pat One"})
	assert.ErrorIs(t, err, ErrProfileAlreadyExists)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// A failed audit write aborts the whole transaction: no profile without a
// trail.
func TestCreatePatientProfileAuditFailureAborts(t *testing.T) {
	db, mock := newTestDB(t)
	mock.ExpectBegin()
	mock.ExpectRollback()

	userID := uuid.New()
	userRepo := &fakeUserRepo{user: &entity.User{ID: userID, Role: entity.RoleUnassigned}}
	auditErr := errors.New("audit write failed")
	uc := NewProfileUsecase(db, testLogger(), userRepo, &fakePatientRepo{}, &fakeDoctorRepo{}, &fakeAuditService{err: auditErr})

	_, err := uc.CreatePatientProfile(authedContext(userID), &dto.CreatePatientProfileRequest{FullName: "Pat One"})
	assert.ErrorIs(t, err, auditErr)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreatePatientProfileBadDate(t *testing.T) {
	db, mock := newTestDB(t)
	userID := uuid.New()
	userRepo := &fakeUserRepo{user: &entity.User{ID: userID, Role: entity.RoleUnassigned}}
	uc := NewProfileUsecase(db, testLogger(), userRepo, &fakePatientRepo{}, &fakeDoctorRepo{}, &fakeAuditService{})

	_, err := uc.CreatePatientProfile(authedContext(userID), &dto.CreatePatientProfileRequest{
		FullName:    "Pat One",
		DateOfBirth: "14-03-1990",
	})
	assert.ErrorIs(t, err, ErrInvalidDateFormat)
	assert.NoError(t, mock.ExpectationsWereMet())
}
