package models

import "time"

type Routine struct {
	ID           uint          `gorm:"primaryKey" json:"id"`
	Name         string        `gorm:"not null" json:"name"`
	ActivityType string        `gorm:"not null" json:"activity_type"`
	Notes        string        `json:"notes"`
	Structure    string        `json:"structure"`
	TargetRPE    string        `json:"target_rpe"`
	AssignedTo   *uint         `gorm:"index" json:"assigned_to,omitempty"`
	CreatedBy    uint          `gorm:"not null" json:"created_by"`
	Items        []RoutineItem `gorm:"constraint:OnDelete:CASCADE" json:"items,omitempty"`
	CreatedAt    time.Time     `json:"created_at"`
	UpdatedAt    time.Time     `json:"updated_at"`
}

type RoutineItem struct {
	ID         uint   `gorm:"primaryKey" json:"id"`
	RoutineID  uint   `gorm:"index;not null" json:"routine_id"`
	ExerciseID uint   `gorm:"not null" json:"exercise_id"`
	DayNumber  int    `gorm:"not null;default:1" json:"day_number"`
	OrderIndex int    `gorm:"not null;default:0" json:"order_index"`
	Sets       int    `gorm:"not null" json:"sets"`
	Reps       string `gorm:"not null" json:"reps"`
	TargetRPE  int    `json:"target_rpe"`
	BlockType  string `json:"block_type"`
	Notes      string `json:"notes"`
}

type Exercise struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"uniqueIndex;not null" json:"name"`
	MuscleGroup string    `json:"muscle_group"`
	VideoURL    string    `json:"video_url"`
	CreatedAt   time.Time `json:"created_at"`
}
