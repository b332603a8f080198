package models

import (
	"time"
)

// Transaction statuses
const (
	TransactionStatusPending   = "pending"
	TransactionStatusCompleted = "completed"
	TransactionStatusFailed    = "failed"
)

// Transaction is the ledger record for every wallet movement. Fee is the
// engine-computed platform fee applied in the same database transaction as
// the balance change.
type Transaction struct {
	ID          uint                `gorm:"primarykey"`
	Reference   string              `gorm:"uniqueIndex;not null"`
	Category    TransactionCategory `gorm:"not null"`
	SenderID    uint                `gorm:"index"`
	ReceiverID  uint                `gorm:"index"`
	Amount      float64             `gorm:"not null"`
	Fee         float64             `gorm:"default:0"`
	Description string
	Status      string   `gorm:"not null;default:'pending'"`
	Metadata    Metadata `gorm:"type:jsonb"`
	Currency    string   `gorm:"default:'KES'"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
