package handler

import (
	"encoding/json"
	"net/http"

	"go-healthcare-records/internal/delivery/dto"
	"go-healthcare-records/internal/usecase"
	"go-healthcare-records/pkg/response"
	"go-healthcare-records/pkg/validator"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

type LabResultHandler struct {
	labResultUsecase usecase.LabResultUsecase
	validator        *validator.CustomValidator
}

func NewLabResultHandler(labResultUsecase usecase.LabResultUsecase, validator *validator.CustomValidator) *LabResultHandler {
	return &LabResultHandler{
		labResultUsecase: labResultUsecase,
		validator:        validator,
	}
}

func (h *LabResultHandler) ListLabResults(w http.ResponseWriter, r *http.Request) {
	labResults, err := h.labResultUsecase.ListLabResults(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get lab results")
		return
	}

	response.Success(w, http.StatusOK, "Lab results retrieved successfully", labResults)
}

func (h *LabResultHandler) GetLabResult(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid lab result ID", nil)
		return
	}

	labResult, err := h.labResultUsecase.GetLabResult(r.Context(), id)
	if err != nil {
		switch err {
		case usecase.ErrLabResultNotFound:
			response.NotFound(w, "Lab result not found")
		default:
			response.InternalServerError(w, "Failed to get lab result")
		}
		return
	}

	response.Success(w, http.StatusOK, "Lab result retrieved successfully", labResult)
}

func (h *LabResultHandler) CreateLabResult(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateLabResultRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	labResult, err := h.labResultUsecase.CreateLabResult(r.Context(), &req)
	if err != nil {
		switch err {
		case usecase.ErrOnlyDoctorsWriteEMR:
			response.Forbidden(w, "Only doctors can create lab results")
		case usecase.ErrEMRNotFound:
			response.NotFound(w, "Medical record not found")
		case usecase.ErrNotRecordAuthor:
			response.Forbidden(w, "Only the authoring doctor can add to this record")
		case usecase.ErrInvalidDateFormat:
			response.BadRequest(w, err.Error())
		default:
			response.InternalServerError(w, "Failed to create lab result")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Lab result created successfully", labResult)
}

func (h *LabResultHandler) UpdateLabResult(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid lab result ID", nil)
		return
	}

	var req dto.UpdateLabResultRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	labResult, err := h.labResultUsecase.UpdateLabResult(r.Context(), id, &req)
	if err != nil {
		switch err {
		case usecase.ErrLabResultNotFound:
			response.NotFound(w, "Lab result not found")
		case usecase.ErrOnlyDoctorsWriteEMR:
			response.Forbidden(w, "Only doctors can modify lab results")
		case usecase.ErrInvalidDateFormat:
			response.BadRequest(w, err.Error())
		default:
			response.InternalServerError(w, "Failed to update lab result")
		}
		return
	}

	response.Success(w, http.StatusOK, "Lab result updated successfully", labResult)
}

func (h *LabResultHandler) DeleteLabResult(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid lab result ID", nil)
		return
	}

	if err := h.labResultUsecase.DeleteLabResult(r.Context(), id); err != nil {
		switch err {
		case usecase.ErrLabResultNotFound:
			response.NotFound(w, "Lab result not found")
		case usecase.ErrOnlyDoctorsWriteEMR:
			response.Forbidden(w, "Only doctors can modify lab results")
		default:
			response.InternalServerError(w, "Failed to delete lab result")
		}
		return
	}

	response.Success(w, http.StatusOK, "Lab result deleted successfully", nil)
}
