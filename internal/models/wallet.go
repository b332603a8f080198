package models

import (
	"time"

	"gorm.io/gorm"
)

type Wallet struct {
	ID        uint    `gorm:"primarykey"`
	UserID    uint    `gorm:"uniqueIndex;not null"`
	Balance   float64 `gorm:"default:0"`
	Currency  string  `gorm:"default:'KES'"`
	Status    string  `gorm:"default:'active'"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (w *Wallet) BeforeCreate(tx *gorm.DB) error {
	// Balance always starts at 0; funds arrive through deposits only.
	w.Balance = 0.0
	return nil
}
