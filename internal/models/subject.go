package models

import "time"

type Subject struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"size:255;not null" json:"name"`
	Grade     string    `gorm:"size:100" json:"grade"`
	Term      string    `gorm:"size:100" json:"term"`
	CreatedAt time.Time `json:"created_at"`
}
