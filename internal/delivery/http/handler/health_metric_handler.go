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

type HealthMetricHandler struct {
	healthMetricUsecase usecase.HealthMetricUsecase
	validator           *validator.CustomValidator
}

func NewHealthMetricHandler(healthMetricUsecase usecase.HealthMetricUsecase, validator *validator.CustomValidator) *HealthMetricHandler {
	return &HealthMetricHandler{
		healthMetricUsecase: healthMetricUsecase,
		validator:           validator,
	}
}

func (h *HealthMetricHandler) ListHealthMetrics(w http.ResponseWriter, r *http.Request) {
	metrics, err := h.healthMetricUsecase.ListHealthMetrics(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get health metrics")
		return
	}

	response.Success(w, http.StatusOK, "Health metrics retrieved successfully", metrics)
}

func (h *HealthMetricHandler) GetHealthMetric(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid health metric ID", nil)
		return
	}

	metric, err := h.healthMetricUsecase.GetHealthMetric(r.Context(), id)
	if err != nil {
		switch err {
		case usecase.ErrHealthMetricNotFound:
			response.NotFound(w, "Health metric not found")
		default:
			response.InternalServerError(w, "Failed to get health metric")
		}
		return
	}

	response.Success(w, http.StatusOK, "Health metric retrieved successfully", metric)
}

func (h *HealthMetricHandler) RecordHealthMetric(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateHealthMetricRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	metric, err := h.healthMetricUsecase.RecordHealthMetric(r.Context(), &req)
	if err != nil {
		switch err {
		case usecase.ErrOnlyPatientsRecord:
			response.Forbidden(w, "Only patients can record health metrics")
		default:
			response.InternalServerError(w, "Failed to record health metric")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Health metric recorded successfully", metric)
}
