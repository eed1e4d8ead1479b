package converter

import (
	"testing"
	"time"

	"go-healthcare-records/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserToResponse(t *testing.T) {
	userID := uuid.New()
	user := &entity.User{
		ID:       userID,
		Username: "alice",
		Email:    "alice@example.com",
		Password: "$2a$10$hash",
		Role:     entity.RolePatient,
		Patient: &entity.Patient{
			UserID:   userID,
			FullName: "Alice Smith",
		},
	}

	resp := UserToResponse(user)
	require.NotNil(t, resp)
	assert.Equal(t, userID, resp.ID)
	assert.Equal(t, "alice", resp.Username)
	assert.Equal(t, "patient", resp.Role)
	require.NotNil(t, resp.Patient)
	assert.Equal(t, "Alice Smith", resp.Patient.FullName)
	assert.Nil(t, resp.Doctor)
}

func TestUserToResponseNil(t *testing.T) {
	assert.Nil(t, UserToResponse(nil))
}

func TestPatientToResponseDateFormat(t *testing.T) {
	dob := time.Date(1990, time.March, 14, 0, 0, 0, 0, time.UTC)
	patient := &entity.Patient{
		UserID:      uuid.New(),
		FullName:    "Alice Smith",
		DateOfBirth: &dob,
		Gender:      entity.GenderFemale,
	}

	resp := PatientToResponse(patient)
	require.NotNil(t, resp)
	assert.Equal(t, "1990-03-14", resp.DateOfBirth)
}

func TestPatientToResponseNilDate(t *testing.T) {
	resp := PatientToResponse(&entity.Patient{UserID: uuid.New(), FullName: "Bob"})
	require.NotNil(t, resp)
	assert.Empty(t, resp.DateOfBirth)
}

func TestEMRToResponse(t *testing.T) {
	doctorID := uuid.New()
	emr := &entity.EMR{
		ID:            uuid.New(),
		PatientID:     uuid.New(),
		DoctorID:      &doctorID,
		Diagnosis:     "Hypertension",
		TreatmentPlan: "Lifestyle changes",
	}

	resp := EMRToResponse(emr)
	require.NotNil(t, resp)
	assert.Equal(t, emr.ID, resp.ID)
	assert.Equal(t, emr.PatientID, resp.PatientID)
	require.NotNil(t, resp.DoctorID)
	assert.Equal(t, doctorID, *resp.DoctorID)
	assert.Equal(t, "Hypertension", resp.Diagnosis)
}

func TestPrescriptionToResponse(t *testing.T) {
	refill := time.Date(2026, time.September, 1, 0, 0, 0, 0, time.UTC)
	prescription := &entity.Prescription{
		ID:             uuid.New(),
		EMRID:          uuid.New(),
		MedicationName: "Lisinopril",
		Dosage:         "10mg",
		RefillDate:     &refill,
	}

	resp := PrescriptionToResponse(prescription)
	require.NotNil(t, resp)
	assert.Equal(t, "Lisinopril", resp.MedicationName)
	assert.Equal(t, "2026-09-01", resp.RefillDate)
}

func TestLabResultsToResponses(t *testing.T) {
	results := []entity.LabResult{
		{ID: uuid.New(), EMRID: uuid.New(), TestName: "CBC"},
		{ID: uuid.New(), EMRID: uuid.New(), TestName: "Lipid panel"},
	}

	resps := LabResultsToResponses(results)
	require.Len(t, resps, 2)
	assert.Equal(t, "CBC", resps[0].TestName)
	assert.Equal(t, "Lipid panel", resps[1].TestName)
}

func TestPatientsToResponsesEmpty(t *testing.T) {
	resps := PatientsToResponses(nil)
	assert.NotNil(t, resps)
	assert.Empty(t, resps)
}
