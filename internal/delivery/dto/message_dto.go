package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs. The sender is always the authenticated user.

type CreateMessageRequest struct {
	ReceiverID uuid.UUID `json:"receiver_id" validate:"required"`
	Body       string    `json:"body" validate:"required"`
}

// Response DTOs

type MessageResponse struct {
	ID         uuid.UUID `json:"id"`
	SenderID   uuid.UUID `json:"sender_id"`
	ReceiverID uuid.UUID `json:"receiver_id"`
	Body       string    `json:"body"`
	SentAt     time.Time `json:"sent_at"`
}

type MessageListResponse struct {
	Messages []MessageResponse `json:"messages"`
	Total    int               `json:"total"`
}
