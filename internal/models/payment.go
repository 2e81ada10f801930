package models

import "time"

const (
	PaymentStatusPaid    = "paid"
	PaymentStatusPending = "pending"
	PaymentStatusOverdue = "overdue"
)

const (
	PaymentMethodCash     = "cash"
	PaymentMethodTransfer = "transfer"
)

type Payment struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"index;not null" json:"user_id"`
	Amount    float64   `gorm:"not null" json:"amount"`
	Method    string    `gorm:"not null" json:"method"`
	Status    string    `gorm:"not null;default:pending" json:"status"`
	Activity  string    `json:"activity"`
	ProofURL  string    `json:"proof_url"`
	PaidAt    time.Time `gorm:"not null" json:"paid_at"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type ActivityPrice struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	ActivityType string    `gorm:"uniqueIndex;not null" json:"activity_type"`
	Price        float64   `gorm:"not null" json:"price"`
	UpdatedAt    time.Time `json:"updated_at"`
}
