package message

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Message represents the messages table. Messages are immutable once
// created: there is no update or delete path.
type Message struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Msg         string    `gorm:"not null" json:"msg"`
	MsgFrom     string    `gorm:"not null" json:"msgFrom"`
	MsgDateTime time.Time `json:"msgDateTime"`
}

// BeforeCreate assigns the record id at the store layer.
func (m *Message) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}
