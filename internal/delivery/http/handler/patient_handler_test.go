package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"go-healthcare-records/internal/delivery/dto"
	"go-healthcare-records/internal/usecase"
	"go-healthcare-records/pkg/validator"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
)

type stubPatientUsecase struct {
	listResp   *dto.PatientListResponse
	getResp    *dto.PatientResponse
	getErr     error
	updateResp *dto.PatientResponse
	updateErr  error
	deleteErr  error
}

func (s *stubPatientUsecase) ListPatients(ctx context.Context) (*dto.PatientListResponse, error) {
	return s.listResp, nil
}

func (s *stubPatientUsecase) GetPatient(ctx context.Context, userID uuid.UUID) (*dto.PatientResponse, error) {
	return s.getResp, s.getErr
}

func (s *stubPatientUsecase) UpdatePatient(ctx context.Context, userID uuid.UUID, req *dto.UpdatePatientProfileRequest) (*dto.PatientResponse, error) {
	return s.updateResp, s.updateErr
}

func (s *stubPatientUsecase) DeletePatient(ctx context.Context, userID uuid.UUID) error {
	return s.deleteErr
}

func TestGetPatientInvalidID(t *testing.T) {
	h := NewPatientHandler(&stubPatientUsecase{}, validator.NewValidator())

	req := httptest.NewRequest(http.MethodGet, "/api/v1/patients/not-a-uuid", nil)
	req = mux.SetURLVars(req, map[string]string{"id": "not-a-uuid"})
	rec := httptest.NewRecorder()

	h.GetPatient(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetPatientNotFound(t *testing.T) {
	h := NewPatientHandler(&stubPatientUsecase{getErr: usecase.ErrPatientNotFound}, validator.NewValidator())

	id := uuid.New().String()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/patients/"+id, nil)
	req = mux.SetURLVars(req, map[string]string{"id": id})
	rec := httptest.NewRecorder()

	h.GetPatient(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGetPatientSuccess(t *testing.T) {
	patientID := uuid.New()
	h := NewPatientHandler(&stubPatientUsecase{
		getResp: &dto.PatientResponse{UserID: patientID, FullName: "Alice Smith"},
	}, validator.NewValidator())

	req := httptest.NewRequest(http.MethodGet, "/api/v1/patients/"+patientID.String(), nil)
	req = mux.SetURLVars(req, map[string]string{"id": patientID.String()})
	rec := httptest.NewRecorder()

	h.GetPatient(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestUpdatePatientForbidden(t *testing.T) {
	h := NewPatientHandler(&stubPatientUsecase{updateErr: usecase.ErrNotProfileOwner}, validator.NewValidator())

	id := uuid.New().String()
	body, _ := json.Marshal(dto.UpdatePatientProfileRequest{FullName: "Alice Smith"})
	req := httptest.NewRequest(http.MethodPut, "/api/v1/patients/"+id, bytes.NewReader(body))
	req = mux.SetURLVars(req, map[string]string{"id": id})
	rec := httptest.NewRecorder()

	h.UpdatePatient(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestUpdatePatientValidationFailure(t *testing.T) {
	h := NewPatientHandler(&stubPatientUsecase{}, validator.NewValidator())

	id := uuid.New().String()
	body, _ := json.Marshal(dto.UpdatePatientProfileRequest{FullName: "A"})
	req := httptest.NewRequest(http.MethodPut, "/api/v1/patients/"+id, bytes.NewReader(body))
	req = mux.SetURLVars(req, map[string]string{"id": id})
	rec := httptest.NewRecorder()

	h.UpdatePatient(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestDeletePatientForbidden(t *testing.T) {
	h := NewPatientHandler(&stubPatientUsecase{deleteErr: usecase.ErrNotProfileOwner}, validator.NewValidator())

	id := uuid.New().String()
	req := httptest.NewRequest(http.MethodDelete, "/api/v1/patients/"+id, nil)
	req = mux.SetURLVars(req, map[string]string{"id": id})
	rec := httptest.NewRecorder()

	h.DeletePatient(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestListPatients(t *testing.T) {
	h := NewPatientHandler(&stubPatientUsecase{
		listResp: &dto.PatientListResponse{
			Patients: []dto.PatientResponse{{UserID: uuid.New(), FullName: "Alice Smith"}},
			Total:    1,
		},
	}, validator.NewValidator())

	req := httptest.NewRequest(http.MethodGet, "/api/v1/patients", nil)
	rec := httptest.NewRecorder()

	h.ListPatients(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}
