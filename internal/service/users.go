package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/s21platform/messaging-service/internal/model"
	"github.com/s21platform/messaging-service/internal/pkg/apperr"
)

const (
	defaultSearchLimit = 20
	maxSearchLimit     = 100
)

func (s *Service) User(ctx context.Context, id uuid.UUID) (*model.UserProfile, error) {
	user, err := s.repository.GetUser(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return user, nil
}

// Users lists every identity except the caller.
func (s *Service) Users(ctx context.Context, exceptID uuid.UUID) ([]model.UserProfile, error) {
	users, err := s.repository.ListUsers(ctx, exceptID)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	return *users, nil
}

func (s *Service) SearchUsers(ctx context.Context, query string, limit int) ([]model.UserProfile, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, apperr.Validation("search query is required")
	}

	if limit <= 0 {
		limit = defaultSearchLimit
	}
	if limit > maxSearchLimit {
		limit = maxSearchLimit
	}

	users, err := s.repository.SearchUsers(ctx, query, uint64(limit))
	if err != nil {
		return nil, fmt.Errorf("failed to search users: %w", err)
	}

	return *users, nil
}
