package rest

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/google/uuid"

	logger_lib "github.com/s21platform/logger-lib"

	"github.com/s21platform/messaging-service/internal/config"
	api "github.com/s21platform/messaging-service/internal/generated"
	"github.com/s21platform/messaging-service/internal/model"
	"github.com/s21platform/messaging-service/internal/pkg/apperr"
)

type Handler struct {
	service          MessagingService
	centrifugeClient CetrifugeClient
	validator        Validator
	jwtGenerator     JWTGenerator
}

var _ api.ServerInterface = (*Handler)(nil)

func New(
	service MessagingService,
	centrifugeClient CetrifugeClient,
	validator Validator,
	jwtGenerator JWTGenerator,
) *Handler {
	return &Handler{
		service:          service,
		centrifugeClient: centrifugeClient,
		validator:        validator,
		jwtGenerator:     jwtGenerator,
	}
}

func (h *Handler) GetMessages(w http.ResponseWriter, r *http.Request) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("GetMessages")

	identity, ok := identityFromContext(r.Context())
	if !ok {
		logger.Error("failed to get user UUID")
		h.writeError(w, "failed to get user UUID", http.StatusInternalServerError)
		return
	}

	views, err := h.service.Messages(r.Context(), identity)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to get messages: %v", err))
		h.writeAppError(w, err)
		return
	}

	h.writeJSON(w, toAPIMessages(views), http.StatusOK)
}

func (h *Handler) GetContacts(w http.ResponseWriter, r *http.Request) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("GetContacts")

	identity, ok := identityFromContext(r.Context())
	if !ok {
		logger.Error("failed to get user UUID")
		h.writeError(w, "failed to get user UUID", http.StatusInternalServerError)
		return
	}

	contacts, err := h.service.Contacts(r.Context(), identity)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to get contacts: %v", err))
		h.writeAppError(w, err)
		return
	}

	response := make([]api.Contact, len(contacts))
	for i, contact := range contacts {
		response[i] = api.Contact{
			CounterpartId:   contact.CounterpartID,
			Firstname:       contact.Profile.Firstname,
			Lastname:        contact.Profile.Lastname,
			Username:        contact.Profile.Username,
			CreatedAt:       contact.Profile.CreatedAt,
			LastMessage:     contact.LastMessage,
			LastMessageTime: contact.LastMessageTime,
		}
	}

	h.writeJSON(w, response, http.StatusOK)
}

func (h *Handler) GetConversation(w http.ResponseWriter, r *http.Request, otherId uuid.UUID) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("GetConversation")

	identity, ok := identityFromContext(r.Context())
	if !ok {
		logger.Error("failed to get user UUID")
		h.writeError(w, "failed to get user UUID", http.StatusInternalServerError)
		return
	}

	views, err := h.service.Conversation(r.Context(), identity, otherId)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to get conversation with %s: %v", otherId, err))
		h.writeAppError(w, err)
		return
	}

	h.writeJSON(w, toAPIMessages(views), http.StatusOK)
}

func (h *Handler) CreateMessage(w http.ResponseWriter, r *http.Request) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("CreateMessage")

	var req api.CreateMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Error(fmt.Sprintf("failed to decode request: %v", err))
		h.writeError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	senderID, ok := identityFromContext(r.Context())
	if !ok {
		logger.Error("failed to get sender ID")
		h.writeError(w, "failed to get sender ID", http.StatusInternalServerError)
		return
	}

	if err := h.validator.ValidateCreateMessage(&req); err != nil {
		logger.Error(fmt.Sprintf("message validation failed: %v", err))
		h.writeError(w, err.Error(), http.StatusBadRequest)
		return
	}

	message, err := h.service.CreateMessage(r.Context(), senderID, uuid.MustParse(req.ReceiverId), req.Message)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to create message: %v", err))
		h.writeAppError(w, err)
		return
	}

	h.publish(r.Context(), logger, model.MessageCreatedEvent, *message)

	response := api.CreateMessageResponse{
		Message: "message created",
		Data:    toAPIMessage(*message, nil, nil),
	}

	h.writeJSON(w, response, http.StatusCreated)
}

func (h *Handler) DeleteMessage(w http.ResponseWriter, r *http.Request, id uuid.UUID) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("DeleteMessage")

	requester, ok := identityFromContext(r.Context())
	if !ok {
		logger.Error("failed to get user UUID")
		h.writeError(w, "failed to get user UUID", http.StatusInternalServerError)
		return
	}

	message, err := h.service.DeleteMessage(r.Context(), id, requester)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to delete message %s: %v", id, err))
		h.writeAppError(w, err)
		return
	}

	h.publish(r.Context(), logger, model.MessageDeletedEvent, *message)

	h.writeJSON(w, api.DeleteMessageResponse{Message: "message deleted"}, http.StatusOK)
}

func (h *Handler) GetUsers(w http.ResponseWriter, r *http.Request) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("GetUsers")

	identity, ok := identityFromContext(r.Context())
	if !ok {
		logger.Error("failed to get user UUID")
		h.writeError(w, "failed to get user UUID", http.StatusInternalServerError)
		return
	}

	users, err := h.service.Users(r.Context(), identity)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to list users: %v", err))
		h.writeAppError(w, err)
		return
	}

	h.writeJSON(w, toAPIProfiles(users), http.StatusOK)
}

func (h *Handler) SearchUsers(w http.ResponseWriter, r *http.Request, params api.SearchUsersParams) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("SearchUsers")

	if err := h.validator.ValidateSearchQuery(params.Query); err != nil {
		logger.Error(fmt.Sprintf("search validation failed: %v", err))
		h.writeError(w, err.Error(), http.StatusBadRequest)
		return
	}

	limit := 0
	if params.Limit != nil {
		limit = *params.Limit
	}

	users, err := h.service.SearchUsers(r.Context(), params.Query, limit)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to search users: %v", err))
		h.writeAppError(w, err)
		return
	}

	h.writeJSON(w, toAPIProfiles(users), http.StatusOK)
}

func (h *Handler) GetUserById(w http.ResponseWriter, r *http.Request, userId uuid.UUID) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("GetUserById")

	user, err := h.service.User(r.Context(), userId)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to get user %s: %v", userId, err))
		h.writeAppError(w, err)
		return
	}

	h.writeJSON(w, toAPIProfile(user), http.StatusOK)
}

func (h *Handler) GetConnectAccessToken(w http.ResponseWriter, r *http.Request) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("GetConnectAccessToken")

	userUUID, ok := r.Context().Value(config.KeyUUID).(string)
	if !ok {
		logger.Error("failed to get user UUID")
		h.writeError(w, "failed to get user UUID", http.StatusInternalServerError)
		return
	}

	token, expiresAt, err := h.jwtGenerator.GenerateConnectToken(userUUID)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to generate access token: %v", err))
		h.writeError(w, "failed to generate access token", http.StatusInternalServerError)
		return
	}

	logger.Info(fmt.Sprintf("generated access token for user %s", userUUID))

	response := api.GetConnectAccessTokenResponse{
		Token:     token,
		ExpiresAt: expiresAt,
		Channel:   model.PersonalChannel(userUUID),
	}

	h.writeJSON(w, response, http.StatusOK)
}

// publish relays the event to both parties. The write has already committed,
// so a relay failure is only logged.
func (h *Handler) publish(ctx context.Context, logger logger_lib.LoggerInterface, eventType string, message model.Message) {
	channels := []string{model.PersonalChannel(message.SenderID.String())}
	if message.ReceiverID != message.SenderID {
		channels = append(channels, model.PersonalChannel(message.ReceiverID.String()))
	}

	err := h.centrifugeClient.Broadcast(ctx, channels, model.MessageEvent{
		Type:    eventType,
		Message: message,
	})
	if err != nil {
		logger.Error(fmt.Sprintf("failed to publish %s event for message %s: %v", eventType, message.ID, err))
	}
}

// ----------------------------- helpers -----------------------------

func identityFromContext(ctx context.Context) (uuid.UUID, bool) {
	raw, ok := ctx.Value(config.KeyUUID).(string)
	if !ok {
		return uuid.Nil, false
	}

	identity, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, false
	}

	return identity, true
}

func toAPIMessages(views []model.MessageView) []api.Message {
	res := make([]api.Message, len(views))
	for i, view := range views {
		res[i] = toAPIMessage(view.Message, view.Sender, view.Receiver)
	}
	return res
}

func toAPIMessage(message model.Message, sender, receiver *model.UserProfile) api.Message {
	return api.Message{
		Id:         message.ID,
		SenderId:   message.SenderID,
		ReceiverId: message.ReceiverID,
		Message:    message.Body,
		CreatedAt:  message.CreatedAt,
		Sender:     toAPIProfile(sender),
		Receiver:   toAPIProfile(receiver),
	}
}

func toAPIProfiles(users []model.UserProfile) []api.UserProfile {
	res := make([]api.UserProfile, len(users))
	for i := range users {
		res[i] = *toAPIProfile(&users[i])
	}
	return res
}

func toAPIProfile(user *model.UserProfile) *api.UserProfile {
	if user == nil {
		return nil
	}

	return &api.UserProfile{
		Id:        user.ID,
		Firstname: user.Firstname,
		Lastname:  user.Lastname,
		Username:  user.Username,
		CreatedAt: user.CreatedAt,
	}
}

func statusFor(code apperr.Code) int {
	switch code {
	case apperr.CodeInvalidCredential:
		return http.StatusUnauthorized
	case apperr.CodeValidation:
		return http.StatusBadRequest
	case apperr.CodeNotFound:
		return http.StatusNotFound
	case apperr.CodeForbidden:
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}

// WriteBindError reports parameter binding failures from the generated router.
func WriteBindError(w http.ResponseWriter, _ *http.Request, err error) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusBadRequest)
	_ = json.NewEncoder(w).Encode(api.Error{Error: err.Error()})
}

func (h *Handler) writeAppError(w http.ResponseWriter, err error) {
	h.writeError(w, apperr.MessageOf(err), statusFor(apperr.CodeOf(err)))
}

func (h *Handler) writeJSON(w http.ResponseWriter, data interface{}, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
	}
}

func (h *Handler) writeError(w http.ResponseWriter, message string, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(api.Error{Error: message})
}
