package user

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User represents the users table. Password is stored exactly as supplied
// and never serialized to JSON.
type User struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Username   string    `gorm:"not null" json:"username"`
	Password   string    `gorm:"not null" json:"-"`
	DateJoined time.Time `json:"dateJoined"`
}

// BeforeCreate assigns the record id at the store layer.
func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}

// Update carries a partial field change. Nil fields are left untouched.
// DateJoined is set once at signup and is not updatable.
type Update struct {
	Username *string
	Password *string
}
