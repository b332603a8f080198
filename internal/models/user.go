package models

import (
	"time"

	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	Email               string         `gorm:"uniqueIndex;not null"`
	Password            string         `gorm:"not null"`
	Name                string         `gorm:"not null"`
	Phone               string         `gorm:"uniqueIndex;not null"`
	Tier                SubscriberTier `gorm:"default:'basic'"`
	Role                string         `gorm:"default:'user'"`
	WalletID            *uint          `gorm:"unique;default:null"`
	Wallet              *Wallet        `gorm:"foreignKey:WalletID"`
	Status              string         `gorm:"default:'active'"`
	StripeCustomerID    string         `gorm:"default:''"`
	LastLoginAt         time.Time
	FailedLoginAttempts int `gorm:"default:0"`
	TokenVersion        int `gorm:"default:1"`
}
