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
	"go-healthcare-records/pkg/response"
	"go-healthcare-records/pkg/validator"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubAuthUsecase struct {
	registerResp *dto.UserResponse
	registerErr  error
	loginResp    *dto.TokenResponse
	loginErr     error
}

func (s *stubAuthUsecase) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.UserResponse, error) {
	return s.registerResp, s.registerErr
}

func (s *stubAuthUsecase) Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error) {
	return s.loginResp, s.loginErr
}

func (s *stubAuthUsecase) Logout(ctx context.Context, accessTokenID, refreshTokenID string) error {
	return nil
}

func (s *stubAuthUsecase) RefreshToken(ctx context.Context, req *dto.RefreshTokenRequest) (*dto.TokenResponse, error) {
	return nil, usecase.ErrInvalidToken
}

func (s *stubAuthUsecase) GetCurrentUser(ctx context.Context, userID uuid.UUID) (*dto.UserResponse, error) {
	return nil, usecase.ErrUserNotFound
}

func decodeResponse(t *testing.T, rec *httptest.ResponseRecorder) response.Response {
	t.Helper()
	var resp response.Response
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	return resp
}

func TestRegisterSuccess(t *testing.T) {
	h := NewAuthHandler(&stubAuthUsecase{
		registerResp: &dto.UserResponse{ID: uuid.New(), Username: "alice", Role: "unassigned"},
	}, validator.NewValidator(), nil)

	body, _ := json.Marshal(dto.RegisterRequest{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "secret123",
	})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/register", bytes.NewReader(body))
	rec := httptest.NewRecorder()

	h.Register(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)
	resp := decodeResponse(t, rec)
	assert.True(t, resp.Success)
}

func TestRegisterDuplicateUsername(t *testing.T) {
	h := NewAuthHandler(&stubAuthUsecase{
		registerErr: usecase.ErrUsernameAlreadyExists,
	}, validator.NewValidator(), nil)

	body, _ := json.Marshal(dto.RegisterRequest{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "secret123",
	})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/register", bytes.NewReader(body))
	rec := httptest.NewRecorder()

	h.Register(rec, req)

	assert.Equal(t, http.StatusConflict, rec.Code)
	resp := decodeResponse(t, rec)
	assert.False(t, resp.Success)
}

func TestRegisterValidationFailure(t *testing.T) {
	h := NewAuthHandler(&stubAuthUsecase{}, validator.NewValidator(), nil)

	body, _ := json.Marshal(dto.RegisterRequest{Username: "alice"})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/register", bytes.NewReader(body))
	rec := httptest.NewRecorder()

	h.Register(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRegisterInvalidJSON(t *testing.T) {
	h := NewAuthHandler(&stubAuthUsecase{}, validator.NewValidator(), nil)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/register", bytes.NewReader([]byte("{")))
	rec := httptest.NewRecorder()

	h.Register(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestLoginInvalidCredentials(t *testing.T) {
	h := NewAuthHandler(&stubAuthUsecase{
		loginErr: usecase.ErrInvalidCredentials,
	}, validator.NewValidator(), nil)

	body, _ := json.Marshal(dto.LoginRequest{Username: "alice", Password: "wrong"})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", bytes.NewReader(body))
	rec := httptest.NewRecorder()

	h.Login(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestLoginSuccess(t *testing.T) {
	h := NewAuthHandler(&stubAuthUsecase{
		loginResp: &dto.TokenResponse{AccessToken: "access", RefreshToken: "refresh"},
	}, validator.NewValidator(), nil)

	body, _ := json.Marshal(dto.LoginRequest{Username: "alice", Password: "secret123"})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", bytes.NewReader(body))
	rec := httptest.NewRecorder()

	h.Login(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}
