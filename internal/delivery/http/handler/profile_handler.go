package handler

import (
	"encoding/json"
	"net/http"

	"go-healthcare-records/internal/delivery/dto"
	"go-healthcare-records/internal/usecase"
	"go-healthcare-records/pkg/response"
	"go-healthcare-records/pkg/validator"
)

// ProfileHandler creates the role-defining patient and doctor profiles.
// A user without a profile can read public data but owns no records.
type ProfileHandler struct {
	profileUsecase usecase.ProfileUsecase
	validator      *validator.CustomValidator
}

func NewProfileHandler(profileUsecase usecase.ProfileUsecase, validator *validator.CustomValidator) *ProfileHandler {
	return &ProfileHandler{
		profileUsecase: profileUsecase,
		validator:      validator,
	}
}

func (h *ProfileHandler) CreatePatientProfile(w http.ResponseWriter, r *http.Request) {
	var req dto.CreatePatientProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	patient, err := h.profileUsecase.CreatePatientProfile(r.Context(), &req)
	if err != nil {
		switch err {
		case usecase.ErrProfileAlreadyExists:
			response.Conflict(w, "A profile already exists for this user")
		case usecase.ErrInvalidDateFormat:
			response.BadRequest(w, err.Error())
		default:
			response.InternalServerError(w, "Failed to create patient profile")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Patient profile created successfully", patient)
}

func (h *ProfileHandler) CreateDoctorProfile(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateDoctorProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	doctor, err := h.profileUsecase.CreateDoctorProfile(r.Context(), &req)
	if err != nil {
		switch err {
		case usecase.ErrProfileAlreadyExists:
			response.Conflict(w, "A profile already exists for this user")
		default:
			response.InternalServerError(w, "Failed to create doctor profile")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Doctor profile created successfully", doctor)
}
