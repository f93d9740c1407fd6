package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"github.com/s21platform/messaging-service/internal/config"
	"github.com/s21platform/messaging-service/internal/model"
	"github.com/s21platform/messaging-service/internal/pkg/apperr"
)

var (
	messageColumns = []string{"id", "sender_id", "receiver_id", "body", "created_at", "deleted_at"}
	userColumns    = []string{"id", "firstname", "lastname", "username", "created_at"}
)

type Repository struct {
	connection *sqlx.DB
}

func New(cfg *config.Config) *Repository {
	conStr := fmt.Sprintf("user=%s password=%s dbname=%s host=%s port=%s sslmode=disable",
		cfg.Postgres.User, cfg.Postgres.Password, cfg.Postgres.Database, cfg.Postgres.Host, cfg.Postgres.Port)

	conn, err := sqlx.Connect("postgres", conStr)
	if err != nil {
		log.Fatal("error connect: ", err)
	}

	return &Repository{
		connection: conn,
	}
}

// NewWithDB wraps an already opened connection.
func NewWithDB(conn *sqlx.DB) *Repository {
	return &Repository{
		connection: conn,
	}
}

func (r *Repository) Close() {
	_ = r.connection.Close()
}

func (r *Repository) Ping(ctx context.Context) error {
	return r.connection.PingContext(ctx)
}

func (r *Repository) FindMessagesInvolving(ctx context.Context, identity uuid.UUID) (*model.MessageList, error) {
	query, args, err := sq.Select(messageColumns...).
		From("messages").
		Where(sq.Eq{"deleted_at": nil}).
		Where(sq.Or{
			sq.Eq{"sender_id": identity},
			sq.Eq{"receiver_id": identity},
		}).
		OrderBy("created_at ASC", "id ASC").
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build sql query: %v", err)
	}

	messages := model.MessageList{}
	err = r.Chk(ctx).SelectContext(ctx, &messages, query, args...)
	if err != nil {
		return nil, apperr.StoreUnavailable("failed to fetch messages", err)
	}

	return &messages, nil
}

func (r *Repository) FindMessagesBetween(ctx context.Context, identityA, identityB uuid.UUID) (*model.MessageList, error) {
	query, args, err := sq.Select(messageColumns...).
		From("messages").
		Where(sq.Eq{"deleted_at": nil}).
		Where(sq.Or{
			sq.Eq{"sender_id": identityA, "receiver_id": identityB},
			sq.Eq{"sender_id": identityB, "receiver_id": identityA},
		}).
		OrderBy("created_at ASC", "id ASC").
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build sql query: %v", err)
	}

	messages := model.MessageList{}
	err = r.Chk(ctx).SelectContext(ctx, &messages, query, args...)
	if err != nil {
		return nil, apperr.StoreUnavailable("failed to fetch conversation", err)
	}

	return &messages, nil
}

func (r *Repository) InsertMessage(ctx context.Context, message *model.Message) error {
	query, args, err := sq.Insert("messages").
		Columns("id", "sender_id", "receiver_id", "body").
		Values(message.ID, message.SenderID, message.ReceiverID, message.Body).
		Suffix("RETURNING created_at").
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build sql query: %v", err)
	}

	err = r.Chk(ctx).GetContext(ctx, &message.CreatedAt, query, args...)
	if err != nil {
		return apperr.StoreUnavailable("failed to save message", err)
	}

	return nil
}

// GetMessage returns a live message. With forUpdate the row stays locked until the
// surrounding transaction ends.
func (r *Repository) GetMessage(ctx context.Context, id uuid.UUID, forUpdate bool) (*model.Message, error) {
	queryBuilder := sq.Select(messageColumns...).
		From("messages").
		Where(sq.Eq{"id": id, "deleted_at": nil})

	if forUpdate {
		queryBuilder = queryBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := queryBuilder.PlaceholderFormat(sq.Dollar).ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build sql query: %v", err)
	}

	var message model.Message
	err = r.Chk(ctx).GetContext(ctx, &message, query, args...)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperr.NotFound("message not found")
		}
		return nil, apperr.StoreUnavailable("failed to get message", err)
	}

	return &message, nil
}

func (r *Repository) SoftDeleteMessage(ctx context.Context, id uuid.UUID) error {
	query, args, err := sq.Update("messages").
		Set("deleted_at", sq.Expr("now()")).
		Where(sq.Eq{"id": id, "deleted_at": nil}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build sql query: %v", err)
	}

	res, err := r.Chk(ctx).ExecContext(ctx, query, args...)
	if err != nil {
		return apperr.StoreUnavailable("failed to delete message", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return apperr.StoreUnavailable("failed to delete message", err)
	}
	if affected == 0 {
		return apperr.NotFound("message not found")
	}

	return nil
}

func (r *Repository) GetUsersByIDs(ctx context.Context, ids []uuid.UUID) (*model.UserProfileList, error) {
	users := model.UserProfileList{}
	if len(ids) == 0 {
		return &users, nil
	}

	query, args, err := sq.Select(userColumns...).
		From("users").
		Where(sq.Eq{"id": ids}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build sql query: %v", err)
	}

	err = r.Chk(ctx).SelectContext(ctx, &users, query, args...)
	if err != nil {
		return nil, apperr.StoreUnavailable("failed to get users", err)
	}

	return &users, nil
}

func (r *Repository) GetUser(ctx context.Context, id uuid.UUID) (*model.UserProfile, error) {
	query, args, err := sq.Select(userColumns...).
		From("users").
		Where(sq.Eq{"id": id}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build sql query: %v", err)
	}

	var user model.UserProfile
	err = r.Chk(ctx).GetContext(ctx, &user, query, args...)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperr.NotFound("user not found")
		}
		return nil, apperr.StoreUnavailable("failed to get user", err)
	}

	return &user, nil
}

func (r *Repository) ListUsers(ctx context.Context, exceptID uuid.UUID) (*model.UserProfileList, error) {
	query, args, err := sq.Select(userColumns...).
		From("users").
		Where(sq.NotEq{"id": exceptID}).
		OrderBy("username ASC").
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build sql query: %v", err)
	}

	users := model.UserProfileList{}
	err = r.Chk(ctx).SelectContext(ctx, &users, query, args...)
	if err != nil {
		return nil, apperr.StoreUnavailable("failed to list users", err)
	}

	return &users, nil
}

func (r *Repository) SearchUsers(ctx context.Context, search string, limit uint64) (*model.UserProfileList, error) {
	pattern := "%" + escapeLike(search) + "%"

	query, args, err := sq.Select(userColumns...).
		From("users").
		Where(sq.Or{
			sq.ILike{"firstname": pattern},
			sq.ILike{"lastname": pattern},
			sq.ILike{"username": pattern},
		}).
		OrderBy("username ASC").
		Limit(limit).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build sql query: %v", err)
	}

	users := model.UserProfileList{}
	err = r.Chk(ctx).SelectContext(ctx, &users, query, args...)
	if err != nil {
		return nil, apperr.StoreUnavailable("failed to search users", err)
	}

	return &users, nil
}

func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}
