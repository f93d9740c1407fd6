package validator

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	api "github.com/s21platform/messaging-service/internal/generated"
	"github.com/s21platform/messaging-service/internal/model"
)

type Validator struct{}

func New() *Validator {
	return &Validator{}
}

func (v *Validator) ValidateCreateMessage(req *api.CreateMessageRequest) error {
	if strings.TrimSpace(req.ReceiverId) == "" {
		return fmt.Errorf("receiverId is required")
	}

	if _, err := uuid.Parse(req.ReceiverId); err != nil {
		return fmt.Errorf("invalid receiverId")
	}

	if strings.TrimSpace(req.Message) == "" {
		return fmt.Errorf("message cannot be empty")
	}

	if utf8.RuneCountInString(req.Message) > model.MaxMessageLength {
		return fmt.Errorf("message exceeds maximum length of %d characters", model.MaxMessageLength)
	}

	return nil
}

func (v *Validator) ValidateSearchQuery(query string) error {
	if strings.TrimSpace(query) == "" {
		return fmt.Errorf("search query is required")
	}

	return nil
}
