package models

import "time"

// Benchmark is a single progress measurement a student (or an admin on their
// behalf) records against an exercise.
type Benchmark struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	UserID     uint      `gorm:"index;not null" json:"user_id"`
	ExerciseID uint      `gorm:"not null" json:"exercise_id"`
	Value      float64   `gorm:"not null" json:"value"`
	Unit       string    `json:"unit"`
	RecordedAt time.Time `gorm:"not null" json:"recorded_at"`
}

// SessionLog records one workout session. Elapsed time is always recomputed
// from StartedAt, never accumulated tick by tick.
type SessionLog struct {
	ID              uint       `gorm:"primaryKey" json:"id"`
	UserID          uint       `gorm:"index;not null" json:"user_id"`
	RoutineID       uint       `gorm:"not null" json:"routine_id"`
	StartedAt       time.Time  `gorm:"not null" json:"started_at"`
	FinishedAt      *time.Time `json:"finished_at,omitempty"`
	DurationSeconds int        `gorm:"not null;default:0" json:"duration_seconds"`
}
