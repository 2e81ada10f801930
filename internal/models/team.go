package models

import "time"

type Team struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"not null" json:"name"`
	Sport     string    `json:"sport"`
	Players   []Player  `gorm:"constraint:OnDelete:CASCADE" json:"players,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

type Player struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	TeamID   uint   `gorm:"index;not null" json:"team_id"`
	FullName string `gorm:"not null" json:"full_name"`
	Position string `json:"position"`
}

type Assessment struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	PlayerID   uint      `gorm:"index;not null" json:"player_id"`
	Metric     string    `gorm:"not null" json:"metric"`
	Value      float64   `gorm:"not null" json:"value"`
	Unit       string    `json:"unit"`
	RecordedAt time.Time `gorm:"not null" json:"recorded_at"`
}
