package model

import "github.com/golang-jwt/jwt/v5"

const (
	MessageCreatedEvent = "message_created"
	MessageDeletedEvent = "message_deleted"
)

type CentrifugoEvent struct {
	Method string      `json:"method"`
	Params interface{} `json:"params"`
}

// PersonalChannel is the channel only userID may subscribe to.
func PersonalChannel(userID string) string {
	return "personal:#" + userID
}

type CentrifugoBroadcastParams struct {
	Channels []string     `json:"channels"`
	Data     MessageEvent `json:"data"`
}

// MessageEvent is the payload relayed to the personal channels of both parties.
type MessageEvent struct {
	Type    string  `json:"type"`
	Message Message `json:"message"`
}

type CentrifugoConnectClaims struct {
	jwt.RegisteredClaims

	// Server-side subscriptions applied by Centrifugo on connect.
	Channels []string `json:"channels,omitempty"`
}

// AccessClaims are carried by the bearer token issued by the auth service.
type AccessClaims struct {
	jwt.RegisteredClaims

	UserID string `json:"userId"`
}

// Identity returns the user id carried by the token, falling back to the subject.
func (c AccessClaims) Identity() string {
	if c.UserID != "" {
		return c.UserID
	}
	return c.Subject
}
