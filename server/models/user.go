package models

import "github.com/google/uuid"

type User struct {
	ID       uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	Username string    `json:"username" gorm:"type:varchar(255);not null;uniqueIndex"`
	Password string    `json:"-" gorm:"type:varchar(255);not null"`
}

func (User) TableName() string {
	return "users"
}
