package repository

import (
	"context"

	"relay-chat/internal/domain/message"
	"relay-chat/internal/domain/user"
)

// UserRepository is the injected store handle for user records. Lookups by
// a username with no matching record return relay_errors.ErrNotFound.
type UserRepository interface {
	Create(ctx context.Context, u *user.User) error
	GetByUsername(ctx context.Context, username string) (user.User, error)
	Update(ctx context.Context, username string, changes user.Update) (user.User, error)
	DeleteByUsername(ctx context.Context, username string) error
}

// MessageRepository is the injected store handle for message records.
type MessageRepository interface {
	Create(ctx context.Context, m *message.Message) error
	GetAll(ctx context.Context) ([]message.Message, error)
}
