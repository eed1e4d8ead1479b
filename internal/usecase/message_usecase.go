package usecase

import (
	"context"
	"errors"

	"go-healthcare-records/internal/access"
	"go-healthcare-records/internal/converter"
	"go-healthcare-records/internal/delivery/dto"
	"go-healthcare-records/internal/domain/entity"
	"go-healthcare-records/internal/domain/repository"
	"go-healthcare-records/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrMessageNotFound  = errors.New("message not found")
	ErrReceiverNotFound = errors.New("receiver not found")
)

// MessageUsecase covers direct messages. Messages are immutable: there is
// no update or delete.
type MessageUsecase interface {
	ListMessages(ctx context.Context) (*dto.MessageListResponse, error)
	GetMessage(ctx context.Context, id uuid.UUID) (*dto.MessageResponse, error)
	SendMessage(ctx context.Context, req *dto.CreateMessageRequest) (*dto.MessageResponse, error)
}

type messageUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	userRepo     repository.UserRepository
	messageRepo  repository.MessageRepository
	auditService service.AuditService
}

func NewMessageUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	userRepo repository.UserRepository,
	messageRepo repository.MessageRepository,
	auditService service.AuditService,
) MessageUsecase {
	return &messageUsecase{
		db:           db,
		log:          log,
		userRepo:     userRepo,
		messageRepo:  messageRepo,
		auditService: auditService,
	}
}

func (u *messageUsecase) ListMessages(ctx context.Context) (*dto.MessageListResponse, error) {
	db := u.db.WithContext(ctx)
	actor, err := currentActor(ctx, db, u.userRepo)
	if err != nil {
		return nil, err
	}

	messages, err := u.messageRepo.FindVisible(db, actor)
	if err != nil {
		u.log.Warnf("Failed to list messages for %s: %+v", actor.UserID, err)
		return nil, err
	}

	return &dto.MessageListResponse{
		Messages: converter.MessagesToResponses(messages),
		Total:    len(messages),
	}, nil
}

func (u *messageUsecase) GetMessage(ctx context.Context, id uuid.UUID) (*dto.MessageResponse, error) {
	db := u.db.WithContext(ctx)
	actor, err := currentActor(ctx, db, u.userRepo)
	if err != nil {
		return nil, err
	}

	message, err := u.messageRepo.FindByID(db, id)
	if err != nil {
		u.log.Warnf("Failed to find message %s: %+v", id, err)
		return nil, err
	}
	if message == nil {
		return nil, ErrMessageNotFound
	}
	if !access.Participant(actor, message.SenderID, message.ReceiverID) {
		return nil, ErrMessageNotFound
	}

	return converter.MessageToResponse(message), nil
}

// SendMessage stamps the sender from the session; a sender supplied in the
// body is ignored.
func (u *messageUsecase) SendMessage(ctx context.Context, req *dto.CreateMessageRequest) (*dto.MessageResponse, error) {
	db := u.db.WithContext(ctx)
	actor, err := currentActor(ctx, db, u.userRepo)
	if err != nil {
		return nil, err
	}

	receiver, err := u.userRepo.FindByID(db, req.ReceiverID)
	if err != nil {
		u.log.Warnf("Failed to find receiver %s: %+v", req.ReceiverID, err)
		return nil, err
	}
	if receiver == nil {
		return nil, ErrReceiverNotFound
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	message := &entity.Message{
		SenderID:   actor.UserID,
		ReceiverID: req.ReceiverID,
		Body:       req.Body,
	}

	if err := u.messageRepo.Create(tx, message); err != nil {
		u.log.Warnf("Failed to create message: %+v", err)
		return nil, err
	}

	if err := u.auditService.Record(tx, actor.UserID, entity.AuditActionMessageSend, "message", message.ID.String(), map[string]interface{}{
		"receiver_id": req.ReceiverID.String(),
	}); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.MessageToResponse(message), nil
}
