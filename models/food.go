package models

import "time"

type Food struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	UserID    uint      `json:"user_id" gorm:"index;not null"`
	Name      string    `json:"name" gorm:"not null"`
	Brand     string    `json:"brand" gorm:"not null"`
	Type      string    `json:"type"` // wet, dry, treat, …
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
