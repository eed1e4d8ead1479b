package converter

import (
	"go-healthcare-records/internal/delivery/dto"
	"go-healthcare-records/internal/domain/entity"
)

// MessageToResponse converts a Message entity to response DTO
func MessageToResponse(message *entity.Message) *dto.MessageResponse {
	if message == nil {
		return nil
	}

	return &dto.MessageResponse{
		ID:         message.ID,
		SenderID:   message.SenderID,
		ReceiverID: message.ReceiverID,
		Body:       message.Body,
		SentAt:     message.SentAt,
	}
}

// MessagesToResponses converts a slice of Message entities to response DTOs
func MessagesToResponses(messages []entity.Message) []dto.MessageResponse {
	responses := make([]dto.MessageResponse, 0, len(messages))
	for i := range messages {
		responses = append(responses, *MessageToResponse(&messages[i]))
	}
	return responses
}

// HealthMetricToResponse converts a HealthMetric entity to response DTO
func HealthMetricToResponse(metric *entity.HealthMetric) *dto.HealthMetricResponse {
	if metric == nil {
		return nil
	}

	return &dto.HealthMetricResponse{
		ID:         metric.ID,
		PatientID:  metric.PatientID,
		MetricType: metric.MetricType,
		Value:      metric.Value,
		Unit:       metric.Unit,
		RecordedAt: metric.RecordedAt,
	}
}

// HealthMetricsToResponses converts a slice of HealthMetric entities to response DTOs
func HealthMetricsToResponses(metrics []entity.HealthMetric) []dto.HealthMetricResponse {
	responses := make([]dto.HealthMetricResponse, 0, len(metrics))
	for i := range metrics {
		responses = append(responses, *HealthMetricToResponse(&metrics[i]))
	}
	return responses
}
