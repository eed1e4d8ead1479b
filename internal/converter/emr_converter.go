package converter

import (
	"go-healthcare-records/internal/delivery/dto"
	"go-healthcare-records/internal/domain/entity"
)

// EMRToResponse converts an EMR entity to EMRResponse DTO
func EMRToResponse(emr *entity.EMR) *dto.EMRResponse {
	if emr == nil {
		return nil
	}

	return &dto.EMRResponse{
		ID:            emr.ID,
		PatientID:     emr.PatientID,
		DoctorID:      emr.DoctorID,
		Diagnosis:     emr.Diagnosis,
		TreatmentPlan: emr.TreatmentPlan,
		CreatedAt:     emr.CreatedAt,
		UpdatedAt:     emr.UpdatedAt,
	}
}

// EMRsToResponses converts a slice of EMR entities to response DTOs
func EMRsToResponses(emrs []entity.EMR) []dto.EMRResponse {
	responses := make([]dto.EMRResponse, 0, len(emrs))
	for i := range emrs {
		responses = append(responses, *EMRToResponse(&emrs[i]))
	}
	return responses
}

// PrescriptionToResponse converts a Prescription entity to response DTO
func PrescriptionToResponse(prescription *entity.Prescription) *dto.PrescriptionResponse {
	if prescription == nil {
		return nil
	}

	return &dto.PrescriptionResponse{
		ID:             prescription.ID,
		EMRID:          prescription.EMRID,
		MedicationName: prescription.MedicationName,
		Dosage:         prescription.Dosage,
		Instructions:   prescription.Instructions,
		RefillDate:     formatDate(prescription.RefillDate),
	}
}

// PrescriptionsToResponses converts a slice of Prescription entities to response DTOs
func PrescriptionsToResponses(prescriptions []entity.Prescription) []dto.PrescriptionResponse {
	responses := make([]dto.PrescriptionResponse, 0, len(prescriptions))
	for i := range prescriptions {
		responses = append(responses, *PrescriptionToResponse(&prescriptions[i]))
	}
	return responses
}

// LabResultToResponse converts a LabResult entity to response DTO
func LabResultToResponse(result *entity.LabResult) *dto.LabResultResponse {
	if result == nil {
		return nil
	}

	return &dto.LabResultResponse{
		ID:             result.ID,
		EMRID:          result.EMRID,
		TestName:       result.TestName,
		TestDate:       formatDate(result.TestDate),
		ResultFilePath: result.ResultFilePath,
		Notes:          result.Notes,
	}
}

// LabResultsToResponses converts a slice of LabResult entities to response DTOs
func LabResultsToResponses(results []entity.LabResult) []dto.LabResultResponse {
	responses := make([]dto.LabResultResponse, 0, len(results))
	for i := range results {
		responses = append(responses, *LabResultToResponse(&results[i]))
	}
	return responses
}
