package models

import (
	"time"

	"github.com/google/uuid"
)

// Message is immutable once created. IsUser is 1 for a user message and
// 0 for an automated reply.
type Message struct {
	ID             uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	ConversationID uuid.UUID `json:"conversation_id" gorm:"type:uuid;not null;index"`
	Content        string    `json:"content" gorm:"type:text;not null"`
	IsUser         int       `json:"is_user" gorm:"not null;default:1"`
	CreatedAt      time.Time `json:"created_at"`
}

func (Message) TableName() string {
	return "messages"
}
