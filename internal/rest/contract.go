//go:generate mockgen -destination=mock_contract_test.go -package=${GOPACKAGE} -source=contract.go
package rest

import (
	"context"

	"github.com/google/uuid"

	api "github.com/s21platform/messaging-service/internal/generated"
	"github.com/s21platform/messaging-service/internal/model"
)

type MessagingService interface {
	Messages(ctx context.Context, identity uuid.UUID) ([]model.MessageView, error)
	Contacts(ctx context.Context, identity uuid.UUID) ([]model.Contact, error)
	Conversation(ctx context.Context, identity, other uuid.UUID) ([]model.MessageView, error)
	CreateMessage(ctx context.Context, sender, receiver uuid.UUID, body string) (*model.Message, error)
	DeleteMessage(ctx context.Context, id, requester uuid.UUID) (*model.Message, error)
	User(ctx context.Context, id uuid.UUID) (*model.UserProfile, error)
	Users(ctx context.Context, exceptID uuid.UUID) ([]model.UserProfile, error)
	SearchUsers(ctx context.Context, query string, limit int) ([]model.UserProfile, error)
}

type CetrifugeClient interface {
	Broadcast(ctx context.Context, channels []string, event model.MessageEvent) error
}

type Validator interface {
	ValidateCreateMessage(req *api.CreateMessageRequest) error
	ValidateSearchQuery(query string) error
}

type JWTGenerator interface {
	GenerateConnectToken(userID string) (string, int64, error)
}
