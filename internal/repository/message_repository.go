package repository

import (
	"context"

	"relay-chat/internal/domain/message"

	"gorm.io/gorm"
)

type PostgresMessageRepository struct {
	db *gorm.DB
}

func NewMessageRepository(db *gorm.DB) MessageRepository {
	return &PostgresMessageRepository{db: db}
}

func (r *PostgresMessageRepository) Create(ctx context.Context, m *message.Message) error {
	return r.db.WithContext(ctx).Create(m).Error
}

func (r *PostgresMessageRepository) GetAll(ctx context.Context) ([]message.Message, error) {
	var messages []message.Message
	err := r.db.WithContext(ctx).
		Order("msg_date_time ASC").
		Find(&messages).Error
	if err != nil {
		return nil, err
	}
	return messages, nil
}
