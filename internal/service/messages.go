package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/s21platform/messaging-service/internal/model"
	"github.com/s21platform/messaging-service/internal/pkg/apperr"
	"github.com/s21platform/messaging-service/internal/pkg/tx"
)

func (s *Service) Messages(ctx context.Context, identity uuid.UUID) ([]model.MessageView, error) {
	messages, err := s.repository.FindMessagesInvolving(ctx, identity)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch messages: %w", err)
	}

	return s.withProfiles(ctx, *messages)
}

// Conversation returns the live messages exchanged between identity and other, oldest first.
func (s *Service) Conversation(ctx context.Context, identity, other uuid.UUID) ([]model.MessageView, error) {
	messages, err := s.repository.FindMessagesBetween(ctx, identity, other)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch conversation: %w", err)
	}

	return s.withProfiles(ctx, *messages)
}

func (s *Service) CreateMessage(ctx context.Context, sender, receiver uuid.UUID, body string) (*model.Message, error) {
	ids := []uuid.UUID{sender}
	if receiver != sender {
		ids = append(ids, receiver)
	}

	users, err := s.repository.GetUsersByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to check message parties: %w", err)
	}

	usersByID := users.ByID()
	if _, ok := usersByID[sender]; !ok {
		return nil, apperr.NotFound("sender not found")
	}
	if _, ok := usersByID[receiver]; !ok {
		return nil, apperr.NotFound("receiver not found")
	}

	message := &model.Message{
		ID:         uuid.New(),
		SenderID:   sender,
		ReceiverID: receiver,
		Body:       body,
	}

	if err := s.repository.InsertMessage(ctx, message); err != nil {
		return nil, fmt.Errorf("failed to save message: %w", err)
	}

	return message, nil
}

// DeleteMessage soft deletes a message on behalf of its sender and returns it.
func (s *Service) DeleteMessage(ctx context.Context, id, requester uuid.UUID) (*model.Message, error) {
	var deleted *model.Message

	err := tx.TxExecute(ctx, func(ctx context.Context) error {
		message, err := s.repository.GetMessage(ctx, id, true)
		if err != nil {
			return err
		}

		if message.SenderID != requester {
			return apperr.Forbidden("only the sender can delete a message")
		}

		if err := s.repository.SoftDeleteMessage(ctx, id); err != nil {
			return err
		}

		deleted = message
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to delete message: %w", err)
	}

	return deleted, nil
}

// withProfiles resolves sender and receiver profiles with a single lookup.
// Parties that no longer exist are left nil.
func (s *Service) withProfiles(ctx context.Context, messages model.MessageList) ([]model.MessageView, error) {
	views := make([]model.MessageView, 0, len(messages))

	seen := make(map[uuid.UUID]struct{})
	var ids []uuid.UUID
	for _, m := range messages {
		if m.Deleted() {
			continue
		}
		for _, id := range []uuid.UUID{m.SenderID, m.ReceiverID} {
			if _, ok := seen[id]; !ok {
				seen[id] = struct{}{}
				ids = append(ids, id)
			}
		}
	}

	if len(ids) == 0 {
		return views, nil
	}

	users, err := s.repository.GetUsersByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve message parties: %w", err)
	}
	usersByID := users.ByID()

	for _, m := range messages {
		if m.Deleted() {
			continue
		}

		view := model.MessageView{Message: m}
		if u, ok := usersByID[m.SenderID]; ok {
			view.Sender = &u
		}
		if u, ok := usersByID[m.ReceiverID]; ok {
			view.Receiver = &u
		}
		views = append(views, view)
	}

	return views, nil
}
