package usecase

import (
	"testing"

	"go-healthcare-records/internal/delivery/dto"
	"go-healthcare-records/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateEMRRequiresDoctor(t *testing.T) {
	db, mock := newTestDB(t)
	userID := uuid.New()
	userRepo := &fakeUserRepo{user: &entity.User{ID: userID, Role: entity.RolePatient}}
	uc := NewEMRUsecase(db, testLogger(), userRepo, &fakeEMRRepo{}, &fakePatientRepo{}, &fakeAuditService{})

	_, err := uc.CreateEMR(authedContext(userID), &dto.CreateEMRRequest{PatientID: userID})
	assert.ErrorIs(t, err, ErrOnlyDoctorsWriteEMR)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// The record's own patient may edit it; only creation is doctor-gated.
func TestUpdateEMRAllowsRelatedPatient(t *testing.T) {
	db, mock := newTestDB(t)
	mock.ExpectBegin()
	mock.ExpectCommit()

	patientID := uuid.New()
	doctorID := uuid.New()
	emrID := uuid.New()
	userRepo := &fakeUserRepo{user: &entity.User{ID: patientID, Role: entity.RolePatient}}
	emrRepo := &fakeEMRRepo{emr: &entity.EMR{ID: emrID, PatientID: patientID, DoctorID: &doctorID}}
	audit := &fakeAuditService{}
	uc := NewEMRUsecase(db, testLogger(), userRepo, emrRepo, &fakePatientRepo{}, audit)

	resp, err := uc.UpdateEMR(authedContext(patientID), emrID, &dto.UpdateEMRRequest{
		Diagnosis:     "Migraine",
		TreatmentPlan: "Hydration and rest",
	})
	require.NoError(t, err)
	assert.Equal(t, "Migraine", resp.Diagnosis)
	require.NotNil(t, emrRepo.updated)
	assert.Equal(t, "Migraine", emrRepo.updated.Diagnosis)
	assert.Equal(t, []string{entity.AuditActionEMRUpdate}, audit.actions)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateEMRUnrelatedReadsAsNotFound(t *testing.T) {
	db, mock := newTestDB(t)
	callerID := uuid.New()
	userRepo := &fakeUserRepo{user: &entity.User{ID: callerID, Role: entity.RolePatient}}
	emrRepo := &fakeEMRRepo{emr: &entity.EMR{ID: uuid.New(), PatientID: uuid.New()}}
	uc := NewEMRUsecase(db, testLogger(), userRepo, emrRepo, &fakePatientRepo{}, &fakeAuditService{})

	_, err := uc.UpdateEMR(authedContext(callerID), emrRepo.emr.ID, &dto.UpdateEMRRequest{Diagnosis: "Migraine"})
	assert.ErrorIs(t, err, ErrEMRNotFound)
	assert.Nil(t, emrRepo.updated)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteEMRAllowsRelatedPatient(t *testing.T) {
	db, mock := newTestDB(t)
	mock.ExpectBegin()
	mock.ExpectCommit()

	patientID := uuid.New()
	emrID := uuid.New()
	userRepo := &fakeUserRepo{user: &entity.User{ID: patientID, Role: entity.RolePatient}}
	emrRepo := &fakeEMRRepo{emr: &entity.EMR{ID: emrID, PatientID: patientID}}
	audit := &fakeAuditService{}
	uc := NewEMRUsecase(db, testLogger(), userRepo, emrRepo, &fakePatientRepo{}, audit)

	require.NoError(t, uc.DeleteEMR(authedContext(patientID), emrID))
	assert.Equal(t, emrID, emrRepo.deletedID)
	assert.Equal(t, []string{entity.AuditActionEMRDelete}, audit.actions)
	assert.NoError(t, mock.ExpectationsWereMet())
}
