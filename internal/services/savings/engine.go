// Package savings implements locked savings accounts: compound interest
// accrual, maturity, early-withdrawal penalties and loan eligibility
// against savings collateral.
//
// The engine functions in this file are pure. Each takes a complete
// snapshot of the account and the current time, computes on demand, and
// performs no I/O; there is no background accrual process. They are safe
// to call concurrently with different snapshots, but concurrent
// withdrawals of the same account need external locking — the status
// check here is advisory, assuming a single writer per account record.
package savings

import (
	"math"
	"time"

	"pochi/internal/models"
)

// Settlement is the outcome of a withdrawal: what the customer is paid
// and what the platform keeps as penalty.
type Settlement struct {
	Payout  float64 `json:"payout"`
	Penalty float64 `json:"penalty"`
}

// NewAccount validates inputs and builds an active savings account
// starting at now. The annual rate is the caller's resolution of the
// owner's tier at this moment; it is stored on the account and never
// re-derived.
func NewAccount(userID uint, principal float64, lockPeriodMonths int, annualRate float64, now time.Time) (*models.SavingsAccount, error) {
	if principal < MinimumDeposit {
		return nil, ErrBelowMinimumDeposit
	}
	if !validLockPeriod(lockPeriodMonths) {
		return nil, ErrInvalidLockPeriod
	}

	return &models.SavingsAccount{
		UserID:           userID,
		Principal:        principal,
		AnnualRate:       annualRate,
		LockPeriodMonths: lockPeriodMonths,
		StartDate:        now,
		MaturityDate:     now.AddDate(0, lockPeriodMonths, 0),
		Status:           models.SavingsStatusActive,
	}, nil
}

// AccruedValue compounds the principal monthly over n whole months:
// principal * (1 + annualRate/12)^n. Negative n is treated as zero.
func AccruedValue(principal, annualRate float64, months int) float64 {
	if months <= 0 {
		return principal
	}
	monthlyRate := annualRate / 12
	return principal * math.Pow(1+monthlyRate, float64(months))
}

// ElapsedMonths counts whole months from start to now. Partial months
// are truncated, never interpolated.
func ElapsedMonths(start, now time.Time) int {
	if now.Before(start) {
		return 0
	}
	months := 0
	for !start.AddDate(0, months+1, 0).After(now) {
		months++
	}
	return months
}

// CurrentValue evaluates the account's worth at the given time. Interest
// stops compounding at maturity: the lock period is the ceiling on the
// number of accruing months.
func CurrentValue(acc *models.SavingsAccount, now time.Time) float64 {
	months := ElapsedMonths(acc.StartDate, now)
	if months > acc.LockPeriodMonths {
		months = acc.LockPeriodMonths
	}
	return AccruedValue(acc.Principal, acc.AnnualRate, months)
}

// Withdraw settles the account at the given time and flips its status to
// withdrawn.
//
// A matured account always pays the full-term accrued value with no
// penalty, regardless of the early flag. Before maturity the caller must
// set early=true; the settlement is then principal minus a 5% penalty on
// the principal, with all accrued interest forfeited.
func Withdraw(acc *models.SavingsAccount, now time.Time, early bool) (Settlement, error) {
	if !acc.Active() {
		return Settlement{}, ErrAccountAlreadyWithdrawn
	}

	if acc.Matured(now) {
		payout := roundToCents(AccruedValue(acc.Principal, acc.AnnualRate, acc.LockPeriodMonths))
		acc.Status = models.SavingsStatusWithdrawn
		return Settlement{Payout: payout, Penalty: 0}, nil
	}

	if !early {
		return Settlement{}, ErrAccountNotMature
	}

	penalty := roundToCents(acc.Principal * EarlyPenaltyRate)
	acc.Status = models.SavingsStatusWithdrawn
	return Settlement{Payout: acc.Principal - penalty, Penalty: penalty}, nil
}

// MaxLoan returns the largest principal P such that P plus a half-year
// of interest at tierLoanRate stays within the account's current value,
// less a one-unit guard. Non-active or empty accounts borrow nothing.
func MaxLoan(acc *models.SavingsAccount, tierLoanRate float64, now time.Time) float64 {
	if acc == nil || !acc.Active() || acc.Principal <= 0 {
		return 0
	}

	collateral := CurrentValue(acc, now) - collateralGuard
	if collateral <= 0 {
		return 0
	}

	amount := collateral / (1 + tierLoanRate*loanTermFactor)
	// floor to cents so principal plus interest never exceeds collateral
	return math.Floor(amount*100) / 100
}

func validLockPeriod(months int) bool {
	for _, allowed := range models.AllowedLockPeriods {
		if months == allowed {
			return true
		}
	}
	return false
}

func roundToCents(v float64) float64 {
	return math.Round(v*100) / 100
}
