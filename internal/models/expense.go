package models

import "time"

type Expense struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Category    string    `gorm:"not null" json:"category"`
	Description string    `json:"description"`
	Amount      float64   `gorm:"not null" json:"amount"`
	SpentAt     time.Time `gorm:"not null" json:"spent_at"`
	CreatedAt   time.Time `json:"created_at"`
}
