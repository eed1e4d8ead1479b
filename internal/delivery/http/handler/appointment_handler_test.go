package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"go-healthcare-records/internal/delivery/dto"
	"go-healthcare-records/internal/domain/entity"
	"go-healthcare-records/internal/usecase"
	"go-healthcare-records/pkg/validator"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubAppointmentUsecase struct {
	gotFilter  *entity.AppointmentFilter
	listResp   *dto.AppointmentListResponse
	createResp *dto.AppointmentResponse
	createErr  error
	updateResp *dto.AppointmentResponse
	updateErr  error
}

func (s *stubAppointmentUsecase) ListAppointments(ctx context.Context, filter *entity.AppointmentFilter) (*dto.AppointmentListResponse, error) {
	s.gotFilter = filter
	return s.listResp, nil
}

func (s *stubAppointmentUsecase) GetAppointment(ctx context.Context, id uuid.UUID) (*dto.AppointmentResponse, error) {
	return nil, usecase.ErrAppointmentNotFound
}

func (s *stubAppointmentUsecase) CreateAppointment(ctx context.Context, req *dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error) {
	return s.createResp, s.createErr
}

func (s *stubAppointmentUsecase) UpdateAppointment(ctx context.Context, id uuid.UUID, req *dto.UpdateAppointmentRequest) (*dto.AppointmentResponse, error) {
	return s.updateResp, s.updateErr
}

func (s *stubAppointmentUsecase) DeleteAppointment(ctx context.Context, id uuid.UUID) error {
	return nil
}

func TestListAppointmentsPassesQueryFilter(t *testing.T) {
	stub := &stubAppointmentUsecase{listResp: &dto.AppointmentListResponse{}}
	h := NewAppointmentHandler(stub, validator.NewValidator())

	req := httptest.NewRequest(http.MethodGet, "/api/v1/appointments?status=Approved&from=2026-08-01&to=2026-08-31", nil)
	rec := httptest.NewRecorder()

	h.ListAppointments(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, stub.gotFilter)
	assert.Equal(t, "Approved", stub.gotFilter.Status)
	assert.Equal(t, "2026-08-01", stub.gotFilter.From)
	assert.Equal(t, "2026-08-31", stub.gotFilter.To)
}

func TestListAppointmentsEmptyFilter(t *testing.T) {
	stub := &stubAppointmentUsecase{listResp: &dto.AppointmentListResponse{}}
	h := NewAppointmentHandler(stub, validator.NewValidator())

	req := httptest.NewRequest(http.MethodGet, "/api/v1/appointments", nil)
	rec := httptest.NewRecorder()

	h.ListAppointments(rec, req)

	require.NotNil(t, stub.gotFilter)
	assert.Empty(t, stub.gotFilter.Status)
	assert.Empty(t, stub.gotFilter.From)
	assert.Empty(t, stub.gotFilter.To)
}

func TestCreateAppointmentNonPatient(t *testing.T) {
	h := NewAppointmentHandler(&stubAppointmentUsecase{createErr: usecase.ErrOnlyPatientsBook}, validator.NewValidator())

	body, _ := json.Marshal(dto.CreateAppointmentRequest{
		DoctorID:            uuid.New(),
		AppointmentDatetime: time.Now().Add(24 * time.Hour),
	})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/appointments", bytes.NewReader(body))
	rec := httptest.NewRecorder()

	h.CreateAppointment(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestUpdateAppointmentRejectsUnknownStatus(t *testing.T) {
	h := NewAppointmentHandler(&stubAppointmentUsecase{}, validator.NewValidator())

	id := uuid.New().String()
	body, _ := json.Marshal(dto.UpdateAppointmentRequest{
		AppointmentDatetime: time.Now().Add(24 * time.Hour),
		Status:              "Pending",
	})
	req := httptest.NewRequest(http.MethodPut, "/api/v1/appointments/"+id, bytes.NewReader(body))
	req = mux.SetURLVars(req, map[string]string{"id": id})
	rec := httptest.NewRecorder()

	h.UpdateAppointment(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUpdateAppointmentCancel(t *testing.T) {
	h := NewAppointmentHandler(&stubAppointmentUsecase{
		updateResp: &dto.AppointmentResponse{ID: uuid.New(), Status: string(entity.AppointmentStatusCancelled)},
	}, validator.NewValidator())

	id := uuid.New().String()
	body, _ := json.Marshal(dto.UpdateAppointmentRequest{
		AppointmentDatetime: time.Now().Add(24 * time.Hour),
		Status:              string(entity.AppointmentStatusCancelled),
	})
	req := httptest.NewRequest(http.MethodPut, "/api/v1/appointments/"+id, bytes.NewReader(body))
	req = mux.SetURLVars(req, map[string]string{"id": id})
	rec := httptest.NewRecorder()

	h.UpdateAppointment(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestGetAppointmentNotFound(t *testing.T) {
	h := NewAppointmentHandler(&stubAppointmentUsecase{}, validator.NewValidator())

	id := uuid.New().String()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/appointments/"+id, nil)
	req = mux.SetURLVars(req, map[string]string{"id": id})
	rec := httptest.NewRecorder()

	h.GetAppointment(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
