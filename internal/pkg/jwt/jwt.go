package jwt

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/s21platform/messaging-service/internal/model"
	"github.com/s21platform/messaging-service/internal/pkg/apperr"
)

const connectTokenTTL = 30 * time.Minute

type Generator struct {
	secret []byte
}

func New(secret string) *Generator {
	return &Generator{
		secret: []byte(secret),
	}
}

// GenerateConnectToken issues a Centrifugo connection token subscribed to the user's
// personal channel.
func (g *Generator) GenerateConnectToken(userID string) (string, int64, error) {
	now := time.Now()
	expiresAt := now.Add(connectTokenTTL)

	claims := model.CentrifugoConnectClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
		Channels: []string{model.PersonalChannel(userID)},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	tokenString, err := token.SignedString(g.secret)
	if err != nil {
		return "", 0, fmt.Errorf("failed to sign connect JWT token: %w", err)
	}

	return tokenString, expiresAt.Unix(), nil
}

func (g *Generator) ValidateConnectToken(tokenString string) (*model.CentrifugoConnectClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &model.CentrifugoConnectClaims{}, g.keyFunc)
	if err != nil {
		return nil, fmt.Errorf("failed to parse connect JWT token: %w", err)
	}

	if claims, ok := token.Claims.(*model.CentrifugoConnectClaims); ok && token.Valid {
		return claims, nil
	}

	return nil, fmt.Errorf("invalid connect JWT token")
}

// ValidateAccessToken verifies a bearer token and returns its claims. The identity it
// carries must be a valid user id.
func (g *Generator) ValidateAccessToken(tokenString string) (*model.AccessClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &model.AccessClaims{}, g.keyFunc, jwt.WithExpirationRequired())
	if err != nil {
		return nil, apperr.Wrap(apperr.CodeInvalidCredential, "missing or invalid token", err)
	}

	claims, ok := token.Claims.(*model.AccessClaims)
	if !ok || !token.Valid {
		return nil, apperr.InvalidCredential("missing or invalid token")
	}

	if _, err := uuid.Parse(claims.Identity()); err != nil {
		return nil, apperr.Wrap(apperr.CodeInvalidCredential, "missing or invalid token", err)
	}

	return claims, nil
}

func (g *Generator) keyFunc(token *jwt.Token) (interface{}, error) {
	if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
		return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
	}
	return g.secret, nil
}
