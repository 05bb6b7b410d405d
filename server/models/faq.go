package models

import (
	"time"

	"github.com/google/uuid"
)

// Faq is a stored question/answer pair used to auto-answer chat messages.
// Keywords are caller-supplied search terms and are kept exactly as given,
// order and duplicates included.
type Faq struct {
	ID         uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	Question   string    `json:"question" gorm:"type:text;not null"`
	Answer     string    `json:"answer" gorm:"type:text;not null"`
	Category   string    `json:"category" gorm:"type:varchar(255);not null"`
	Keywords   []string  `json:"keywords" gorm:"serializer:json;type:text"`
	UsageCount int       `json:"usage_count" gorm:"not null;default:0"`
	CreatedAt  time.Time `json:"created_at"`
	// UpdatedAt is managed by the store: refreshed on field updates,
	// left alone on usage increments.
	UpdatedAt time.Time `json:"updated_at" gorm:"autoUpdateTime:false"`
}

func (Faq) TableName() string {
	return "faqs"
}
