package savings

import (
	"testing"
	"time"

	"pochi/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testStart = time.Date(2025, time.January, 15, 10, 0, 0, 0, time.UTC)

func newTestAccount(t *testing.T, principal float64, lockMonths int, annualRate float64) *models.SavingsAccount {
	t.Helper()
	acc, err := NewAccount(1, principal, lockMonths, annualRate, testStart)
	require.NoError(t, err)
	return acc
}

func TestNewAccount_MinimumDeposit(t *testing.T) {
	_, err := NewAccount(1, 499, 3, 0.12, testStart)
	assert.ErrorIs(t, err, ErrBelowMinimumDeposit)

	acc, err := NewAccount(1, 500, 3, 0.12, testStart)
	require.NoError(t, err)
	assert.Equal(t, 500.0, acc.Principal)
	assert.Equal(t, models.SavingsStatusActive, acc.Status)
	assert.Equal(t, testStart.AddDate(0, 3, 0), acc.MaturityDate)
}

func TestNewAccount_LockPeriods(t *testing.T) {
	for _, months := range []int{1, 3, 6, 12} {
		acc, err := NewAccount(1, 1000, months, 0.06, testStart)
		require.NoError(t, err)
		assert.Equal(t, months, acc.LockPeriodMonths)
	}

	for _, months := range []int{0, 2, 4, 5, 9, 24, -1} {
		_, err := NewAccount(1, 1000, months, 0.06, testStart)
		assert.ErrorIsf(t, err, ErrInvalidLockPeriod, "lock period %d must be rejected", months)
	}
}

func TestAccruedValue_ZeroMonthsIsIdentity(t *testing.T) {
	assert.Equal(t, 10000.0, AccruedValue(10000, 0.12, 0))
	assert.Equal(t, 10000.0, AccruedValue(10000, 0.12, -3))
}

func TestAccruedValue_CompoundsMonthly(t *testing.T) {
	// 12% annual = 1% monthly; six months on 10,000
	assert.InDelta(t, 10615.20, AccruedValue(10000, 0.12, 6), 0.005)

	// value never decreases as months pass
	prev := 0.0
	for months := 0; months <= 12; months++ {
		v := AccruedValue(10000, 0.12, months)
		assert.Greater(t, v, prev-1e-9)
		prev = v
	}
}

func TestElapsedMonths_TruncatesPartials(t *testing.T) {
	tests := []struct {
		name string
		now  time.Time
		want int
	}{
		{"same instant", testStart, 0},
		{"one day in", testStart.AddDate(0, 0, 1), 0},
		{"day before first month", time.Date(2025, time.February, 14, 10, 0, 0, 0, time.UTC), 0},
		{"exactly one month", time.Date(2025, time.February, 15, 10, 0, 0, 0, time.UTC), 1},
		{"one month and change", time.Date(2025, time.February, 28, 0, 0, 0, 0, time.UTC), 1},
		{"three months", time.Date(2025, time.April, 15, 10, 0, 0, 0, time.UTC), 3},
		{"before start", testStart.AddDate(0, -2, 0), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ElapsedMonths(testStart, tt.now))
		})
	}
}

func TestCurrentValue_StopsAtMaturity(t *testing.T) {
	acc := newTestAccount(t, 10000, 6, 0.12)

	atMaturity := CurrentValue(acc, acc.MaturityDate)
	wellPast := CurrentValue(acc, acc.MaturityDate.AddDate(2, 0, 0))
	assert.Equal(t, atMaturity, wellPast, "interest must stop compounding at maturity")
}

func TestWithdraw_AtMaturity(t *testing.T) {
	acc := newTestAccount(t, 10000, 6, 0.12)

	settlement, err := Withdraw(acc, acc.MaturityDate, false)
	require.NoError(t, err)

	assert.Equal(t, 10615.20, settlement.Payout)
	assert.Zero(t, settlement.Penalty)
	assert.Equal(t, models.SavingsStatusWithdrawn, acc.Status)
}

func TestWithdraw_MaturedIgnoresEarlyFlag(t *testing.T) {
	acc := newTestAccount(t, 10000, 6, 0.12)

	settlement, err := Withdraw(acc, acc.MaturityDate.AddDate(0, 1, 0), true)
	require.NoError(t, err)
	assert.Zero(t, settlement.Penalty, "a matured account cannot be penalized")
	assert.Equal(t, 10615.20, settlement.Payout)
}

func TestWithdraw_EarlyForfeitsInterest(t *testing.T) {
	acc := newTestAccount(t, 10000, 6, 0.12)
	monthThree := testStart.AddDate(0, 3, 0)

	settlement, err := Withdraw(acc, monthThree, true)
	require.NoError(t, err)

	assert.Equal(t, 500.0, settlement.Penalty)
	assert.Equal(t, 9500.0, settlement.Payout)
	assert.Equal(t, models.SavingsStatusWithdrawn, acc.Status)
}

func TestWithdraw_EarlyPayoutPlusPenaltyEqualsPrincipal(t *testing.T) {
	for _, principal := range []float64{500, 777.77, 10000, 123456.78} {
		acc := newTestAccount(t, principal, 12, 0.18)

		settlement, err := Withdraw(acc, testStart.AddDate(0, 5, 0), true)
		require.NoError(t, err)

		assert.InDelta(t, principal, settlement.Payout+settlement.Penalty, 1e-9, "no interest leakage on early withdrawal")
		assert.LessOrEqual(t, settlement.Penalty, principal)
		assert.GreaterOrEqual(t, settlement.Payout, 0.0)
	}
}

func TestWithdraw_NotMatureWithoutEarlyFlag(t *testing.T) {
	acc := newTestAccount(t, 10000, 6, 0.12)

	_, err := Withdraw(acc, testStart.AddDate(0, 3, 0), false)
	assert.ErrorIs(t, err, ErrAccountNotMature)
	assert.Equal(t, models.SavingsStatusActive, acc.Status, "failed withdrawal must not mutate the account")
}

func TestWithdraw_AlreadyWithdrawn(t *testing.T) {
	acc := newTestAccount(t, 10000, 1, 0.06)

	_, err := Withdraw(acc, acc.MaturityDate, false)
	require.NoError(t, err)

	_, err = Withdraw(acc, acc.MaturityDate, false)
	assert.ErrorIs(t, err, ErrAccountAlreadyWithdrawn)
}

func TestMaxLoan_WithinCollateral(t *testing.T) {
	acc := newTestAccount(t, 10000, 12, 0.12)
	sixMonthsIn := testStart.AddDate(0, 6, 0)

	for _, tier := range []models.SubscriberTier{models.TierBasic, models.TierPlus, models.TierVIP} {
		rate := tier.LoanRate()
		loan := MaxLoan(acc, rate, sixMonthsIn)

		require.Greater(t, loan, 0.0)
		collateral := CurrentValue(acc, sixMonthsIn) - 1
		assert.LessOrEqualf(t, loan+loan*rate*0.5, collateral+1e-6,
			"%s loan plus interest must stay within collateral", tier)
	}
}

func TestMaxLoan_BetterTiersBorrowMore(t *testing.T) {
	acc := newTestAccount(t, 10000, 12, 0.12)

	basic := MaxLoan(acc, models.TierBasic.LoanRate(), testStart)
	plus := MaxLoan(acc, models.TierPlus.LoanRate(), testStart)
	vip := MaxLoan(acc, models.TierVIP.LoanRate(), testStart)

	assert.Greater(t, plus, basic, "plus borrows cheaper than basic")
	assert.Greater(t, vip, plus, "vip borrows cheaper than plus")
	assert.InDelta(t, 9999.0/1.09, plus, 0.011)
}

func TestMaxLoan_InactiveOrEmptyAccount(t *testing.T) {
	acc := newTestAccount(t, 10000, 6, 0.12)
	_, err := Withdraw(acc, acc.MaturityDate, false)
	require.NoError(t, err)

	assert.Zero(t, MaxLoan(acc, 0.20, acc.MaturityDate))
	assert.Zero(t, MaxLoan(nil, 0.20, testStart))
}
