package models

import (
	"time"

	"github.com/google/uuid"
)

const (
	StatusActive   = "active"
	StatusResolved = "resolved"
	StatusPending  = "pending"
)

// ValidStatus reports whether s is one of the three conversation states.
func ValidStatus(s string) bool {
	return s == StatusActive || s == StatusResolved || s == StatusPending
}

type Conversation struct {
	ID       uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	UserName string    `json:"user_name" gorm:"type:varchar(255);not null"`
	Status   string    `json:"status" gorm:"type:varchar(50);not null;default:'active'"`
	CreatedAt time.Time `json:"created_at"`
	// UpdatedAt is refreshed whenever a message is appended or the
	// status changes.
	UpdatedAt time.Time `json:"updated_at" gorm:"autoUpdateTime:false"`
}

func (Conversation) TableName() string {
	return "conversations"
}
