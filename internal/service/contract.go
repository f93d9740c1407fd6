//go:generate mockgen -destination=mock_contract_test.go -package=${GOPACKAGE} -source=contract.go
package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/s21platform/messaging-service/internal/model"
)

type DBRepo interface {
	FindMessagesInvolving(ctx context.Context, identity uuid.UUID) (*model.MessageList, error)
	FindMessagesBetween(ctx context.Context, identityA, identityB uuid.UUID) (*model.MessageList, error)
	InsertMessage(ctx context.Context, message *model.Message) error
	GetMessage(ctx context.Context, id uuid.UUID, forUpdate bool) (*model.Message, error)
	SoftDeleteMessage(ctx context.Context, id uuid.UUID) error

	GetUsersByIDs(ctx context.Context, ids []uuid.UUID) (*model.UserProfileList, error)
	GetUser(ctx context.Context, id uuid.UUID) (*model.UserProfile, error)
	ListUsers(ctx context.Context, exceptID uuid.UUID) (*model.UserProfileList, error)
	SearchUsers(ctx context.Context, search string, limit uint64) (*model.UserProfileList, error)

	WithTx(ctx context.Context, cb func(ctx context.Context) error) error
}
