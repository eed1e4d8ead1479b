package converter

import (
	"go-healthcare-records/internal/delivery/dto"
	"go-healthcare-records/internal/domain/entity"
)

// UserToResponse converts a User entity to UserResponse DTO. The password
// hash is never mapped.
func UserToResponse(user *entity.User) *dto.UserResponse {
	if user == nil {
		return nil
	}

	response := &dto.UserResponse{
		ID:        user.ID,
		Username:  user.Username,
		Email:     user.Email,
		Role:      string(user.Role),
		CreatedAt: user.CreatedAt,
	}

	if user.Patient != nil {
		response.Patient = PatientToResponse(user.Patient)
	}
	if user.Doctor != nil {
		response.Doctor = DoctorToResponse(user.Doctor)
	}

	return response
}
