package model

import (
	"time"

	"github.com/google/uuid"
)

const MaxMessageLength = 2000

type MessageList []Message

// Message is a directed text record between two identities.
// DeletedAt set means the message is soft deleted and invisible to every read path.
type Message struct {
	ID         uuid.UUID  `db:"id" json:"id"`
	SenderID   uuid.UUID  `db:"sender_id" json:"sender_id"`
	ReceiverID uuid.UUID  `db:"receiver_id" json:"receiver_id"`
	Body       string     `db:"body" json:"body"`
	CreatedAt  time.Time  `db:"created_at" json:"created_at"`
	DeletedAt  *time.Time `db:"deleted_at" json:"deleted_at,omitempty"`
}

func (m Message) Deleted() bool {
	return m.DeletedAt != nil
}

// Counterpart returns the other party of m relative to identity.
func (m Message) Counterpart(identity uuid.UUID) uuid.UUID {
	if m.SenderID == identity {
		return m.ReceiverID
	}
	return m.SenderID
}

// MessageView is a message with both parties' profiles resolved.
type MessageView struct {
	Message
	Sender   *UserProfile
	Receiver *UserProfile
}
