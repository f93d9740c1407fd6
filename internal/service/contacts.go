package service

import (
	"bytes"
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"

	logger_lib "github.com/s21platform/logger-lib"

	"github.com/s21platform/messaging-service/internal/config"
	"github.com/s21platform/messaging-service/internal/model"
)

type latestMessage struct {
	id   uuid.UUID
	body string
	at   time.Time
}

// supersededBy reports whether m is more recent than l. Equal timestamps fall back to the
// greater message id so the winner does not depend on retrieval order.
func (l latestMessage) supersededBy(m model.Message) bool {
	if m.CreatedAt.Equal(l.at) {
		return bytes.Compare(m.ID[:], l.id[:]) > 0
	}
	return m.CreatedAt.After(l.at)
}

// foldLatest reduces the message log of identity to the latest live message per counterpart
// in one pass.
func foldLatest(identity uuid.UUID, messages model.MessageList) map[uuid.UUID]latestMessage {
	latest := make(map[uuid.UUID]latestMessage)

	for _, m := range messages {
		if m.Deleted() {
			continue
		}
		if m.SenderID != identity && m.ReceiverID != identity {
			continue
		}

		counterpart := m.Counterpart(identity)
		if cur, ok := latest[counterpart]; ok && !cur.supersededBy(m) {
			continue
		}

		latest[counterpart] = latestMessage{
			id:   m.ID,
			body: m.Body,
			at:   m.CreatedAt,
		}
	}

	return latest
}

func sortContacts(contacts []model.Contact) {
	sort.Slice(contacts, func(i, j int) bool {
		if !contacts[i].LastMessageTime.Equal(contacts[j].LastMessageTime) {
			return contacts[i].LastMessageTime.After(contacts[j].LastMessageTime)
		}
		return bytes.Compare(contacts[i].CounterpartID[:], contacts[j].CounterpartID[:]) < 0
	})
}

// Contacts lists the distinct conversation partners of identity, most recently active first,
// each with the latest message exchanged. Counterparts whose identity no longer exists are
// left out.
func (s *Service) Contacts(ctx context.Context, identity uuid.UUID) ([]model.Contact, error) {
	messages, err := s.repository.FindMessagesInvolving(ctx, identity)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch messages: %w", err)
	}

	latest := foldLatest(identity, *messages)
	if len(latest) == 0 {
		return []model.Contact{}, nil
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	counterpartIDs := make([]uuid.UUID, 0, len(latest))
	for id := range latest {
		counterpartIDs = append(counterpartIDs, id)
	}
	sort.Slice(counterpartIDs, func(i, j int) bool {
		return bytes.Compare(counterpartIDs[i][:], counterpartIDs[j][:]) < 0
	})

	profiles, err := s.repository.GetUsersByIDs(ctx, counterpartIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve counterparts: %w", err)
	}
	profilesByID := profiles.ByID()

	contacts := make([]model.Contact, 0, len(latest))
	for _, id := range counterpartIDs {
		profile, ok := profilesByID[id]
		if !ok {
			logger := logger_lib.FromContext(ctx, config.KeyLogger)
			logger.Warn(fmt.Sprintf("counterpart %s no longer exists, omitting from contacts", id))
			continue
		}

		last := latest[id]
		contacts = append(contacts, model.Contact{
			CounterpartID:   id,
			Profile:         profile,
			LastMessage:     last.body,
			LastMessageTime: last.at,
		})
	}

	sortContacts(contacts)

	return contacts, nil
}
