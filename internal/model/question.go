package model

import (
	"time"

	"gorm.io/gorm"
)

type Question struct {
	ID         uint           `gorm:"primarykey" json:"id"`
	Question   string         `json:"question" gorm:"type:text;not null"`
	Answer     string         `json:"answer" gorm:"type:text;not null"`
	Category   uint           `json:"category" gorm:"not null;index"` // references categories.id
	Difficulty int            `json:"difficulty" gorm:"not null"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
	DeletedAt  gorm.DeletedAt `gorm:"index" json:"-"`
}
