package models

import (
	"time"
)

// Savings account statuses
const (
	SavingsStatusActive    = "active"
	SavingsStatusWithdrawn = "withdrawn"
)

// AllowedLockPeriods are the only lock durations a savings account may be
// opened with, in months.
var AllowedLockPeriods = []int{1, 3, 6, 12}

// SavingsAccount is a locked savings deposit. Principal and AnnualRate are
// fixed at creation; the rate is resolved from the owner's tier at opening
// and is never re-derived if the tier later changes. Accounts are never
// deleted: a withdrawn account stays as historical record.
type SavingsAccount struct {
	ID               uint      `gorm:"primarykey" json:"id"`
	UserID           uint      `gorm:"index;not null" json:"user_id"`
	Principal        float64   `gorm:"not null" json:"principal"`
	AnnualRate       float64   `gorm:"not null" json:"annual_rate"`
	LockPeriodMonths int       `gorm:"not null" json:"lock_period_months"`
	StartDate        time.Time `gorm:"not null" json:"start_date"`
	MaturityDate     time.Time `gorm:"not null" json:"maturity_date"`
	Status           string    `gorm:"not null;default:'active'" json:"status"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// Matured reports whether the lock period has elapsed at the given time.
func (a *SavingsAccount) Matured(now time.Time) bool {
	return !now.Before(a.MaturityDate)
}

// Active reports whether the account can still accrue and be withdrawn.
func (a *SavingsAccount) Active() bool {
	return a.Status == SavingsStatusActive
}
