package model

import (
	"time"

	"github.com/google/uuid"
)

// Contact is the per-counterpart projection derived from the message log.
// It is recomputed on every read and never stored.
type Contact struct {
	CounterpartID   uuid.UUID
	Profile         UserProfile
	LastMessage     string
	LastMessageTime time.Time
}
