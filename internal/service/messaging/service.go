package messaging

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/lifechef-health/careportal-api/internal/model"
	"github.com/lifechef-health/careportal-api/internal/repository"
	apperrors "github.com/lifechef-health/careportal-api/pkg/errors"
)

type MessagingService interface {
	Conversations(ctx context.Context, viewer uuid.UUID, search string) ([]*model.Conversation, error)
	Messages(ctx context.Context, conversationID uuid.UUID) ([]*model.Message, error)
	Send(ctx context.Context, conversationID, sender uuid.UUID, req *model.SendMessageRequest) (*model.Message, error)
}

type Service struct {
	repo repository.MessageRepository
}

func NewService(repo repository.MessageRepository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Conversations(ctx context.Context, viewer uuid.UUID, search string) ([]*model.Conversation, error) {
	conversations, err := s.repo.ListConversations(ctx, &model.ConversationFilter{
		Search: search,
		UserID: viewer,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list conversations: %w", err)
	}
	return conversations, nil
}

func (s *Service) Messages(ctx context.Context, conversationID uuid.UUID) ([]*model.Message, error) {
	messages, err := s.repo.ListMessages(ctx, conversationID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperrors.NotFound("conversation", err)
		}
		return nil, fmt.Errorf("failed to list messages: %w", err)
	}
	return messages, nil
}

// Send appends a message addressed to the conversation's other
// participant. A sender outside the conversation is rejected.
func (s *Service) Send(ctx context.Context, conversationID, sender uuid.UUID, req *model.SendMessageRequest) (*model.Message, error) {
	conv, err := s.repo.GetConversation(ctx, conversationID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperrors.NotFound("conversation", err)
		}
		return nil, fmt.Errorf("failed to get conversation: %w", err)
	}

	member := false
	for _, id := range conv.Participants {
		if id == sender {
			member = true
			break
		}
	}
	if !member {
		return nil, apperrors.BadRequest("sender is not part of the conversation", nil)
	}

	recipient, ok := conv.Other(sender)
	if !ok {
		return nil, apperrors.BadRequest("conversation has no other participant", nil)
	}

	msg := &model.Message{
		ID:          uuid.New(),
		SenderID:    sender,
		RecipientID: recipient,
		Content:     req.Content,
		Timestamp:   time.Now().UTC(),
		IsRead:      false,
	}

	if err := s.repo.Append(ctx, conversationID, msg); err != nil {
		return nil, fmt.Errorf("failed to append message: %w", err)
	}
	return msg, nil
}
