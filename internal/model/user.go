package model

import (
	"time"

	"github.com/google/uuid"
)

type UserProfileList []UserProfile

type UserProfile struct {
	ID        uuid.UUID `db:"id"`
	Firstname string    `db:"firstname"`
	Lastname  string    `db:"lastname"`
	Username  string    `db:"username"`
	CreatedAt time.Time `db:"created_at"`
}

// ByID indexes the list by identity.
func (l UserProfileList) ByID() map[uuid.UUID]UserProfile {
	res := make(map[uuid.UUID]UserProfile, len(l))
	for _, u := range l {
		res[u.ID] = u
	}
	return res
}
