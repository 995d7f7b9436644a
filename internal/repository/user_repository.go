package repository

import (
	"context"
	"errors"

	"relay-chat/internal/domain/user"
	relay_errors "relay-chat/pkg/errors"

	"gorm.io/gorm"
)

type PostgresUserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &PostgresUserRepository{db: db}
}

func (r *PostgresUserRepository) Create(ctx context.Context, u *user.User) error {
	return r.db.WithContext(ctx).Create(u).Error
}

func (r *PostgresUserRepository) GetByUsername(ctx context.Context, username string) (user.User, error) {
	var u user.User
	err := r.db.WithContext(ctx).
		Where("username = ?", username).
		First(&u).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return user.User{}, relay_errors.ErrNotFound
		}
		return user.User{}, err
	}

	return u, nil
}

func (r *PostgresUserRepository) Update(ctx context.Context, username string, changes user.Update) (user.User, error) {
	var u user.User
	err := r.db.WithContext(ctx).
		Where("username = ?", username).
		First(&u).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return user.User{}, relay_errors.ErrNotFound
		}
		return user.User{}, err
	}

	if changes.Username != nil {
		u.Username = *changes.Username
	}
	if changes.Password != nil {
		u.Password = *changes.Password
	}

	if err := r.db.WithContext(ctx).Save(&u).Error; err != nil {
		return user.User{}, err
	}
	return u, nil
}

func (r *PostgresUserRepository) DeleteByUsername(ctx context.Context, username string) error {
	res := r.db.WithContext(ctx).
		Where("username = ?", username).
		Delete(&user.User{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return relay_errors.ErrNotFound
	}
	return nil
}
