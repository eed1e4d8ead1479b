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

type EMRHandler struct {
	emrUsecase usecase.EMRUsecase
	validator  *validator.CustomValidator
}

func NewEMRHandler(emrUsecase usecase.EMRUsecase, validator *validator.CustomValidator) *EMRHandler {
	return &EMRHandler{
		emrUsecase: emrUsecase,
		validator:  validator,
	}
}

func (h *EMRHandler) ListEMRs(w http.ResponseWriter, r *http.Request) {
	emrs, err := h.emrUsecase.ListEMRs(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get medical records")
		return
	}

	response.Success(w, http.StatusOK, "Medical records retrieved successfully", emrs)
}

func (h *EMRHandler) GetEMR(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid medical record ID", nil)
		return
	}

	emr, err := h.emrUsecase.GetEMR(r.Context(), id)
	if err != nil {
		switch err {
		case usecase.ErrEMRNotFound:
			response.NotFound(w, "Medical record not found")
		default:
			response.InternalServerError(w, "Failed to get medical record")
		}
		return
	}

	response.Success(w, http.StatusOK, "Medical record retrieved successfully", emr)
}

func (h *EMRHandler) CreateEMR(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateEMRRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	emr, err := h.emrUsecase.CreateEMR(r.Context(), &req)
	if err != nil {
		switch err {
		case usecase.ErrOnlyDoctorsWriteEMR:
			response.Forbidden(w, "Only doctors can create medical records")
		case usecase.ErrEMRPatientNotFound:
			response.NotFound(w, "Patient not found")
		default:
			response.InternalServerError(w, "Failed to create medical record")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Medical record created successfully", emr)
}

func (h *EMRHandler) UpdateEMR(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid medical record ID", nil)
		return
	}

	var req dto.UpdateEMRRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	emr, err := h.emrUsecase.UpdateEMR(r.Context(), id, &req)
	if err != nil {
		switch err {
		case usecase.ErrEMRNotFound:
			response.NotFound(w, "Medical record not found")
		default:
			response.InternalServerError(w, "Failed to update medical record")
		}
		return
	}

	response.Success(w, http.StatusOK, "Medical record updated successfully", emr)
}

func (h *EMRHandler) DeleteEMR(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid medical record ID", nil)
		return
	}

	if err := h.emrUsecase.DeleteEMR(r.Context(), id); err != nil {
		switch err {
		case usecase.ErrEMRNotFound:
			response.NotFound(w, "Medical record not found")
		default:
			response.InternalServerError(w, "Failed to delete medical record")
		}
		return
	}

	response.Success(w, http.StatusOK, "Medical record deleted successfully", nil)
}
