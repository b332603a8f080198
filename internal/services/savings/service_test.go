package savings

import (
	"context"
	"testing"
	"time"

	"pochi/internal/models"
	"pochi/internal/repositories"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockSavingsRepo struct {
	mock.Mock
}

func (m *MockSavingsRepo) Create(account *models.SavingsAccount) error {
	args := m.Called(account)
	return args.Error(0)
}

func (m *MockSavingsRepo) GetByID(id uint) (*models.SavingsAccount, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.SavingsAccount), args.Error(1)
}

func (m *MockSavingsRepo) GetByUserID(userID uint) ([]models.SavingsAccount, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.SavingsAccount), args.Error(1)
}

func (m *MockSavingsRepo) Update(account *models.SavingsAccount) error {
	args := m.Called(account)
	return args.Error(0)
}

func (m *MockSavingsRepo) ExecuteInTransaction(fn func(repositories.SavingsRepository) error) error {
	m.Called(fn)
	return fn(m)
}

type MockWallet struct {
	mock.Mock
}

func (m *MockWallet) Credit(ctx context.Context, userID uint, amount float64) error {
	args := m.Called(ctx, userID, amount)
	return args.Error(0)
}

func (m *MockWallet) Debit(ctx context.Context, userID uint, amount float64) error {
	args := m.Called(ctx, userID, amount)
	return args.Error(0)
}

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func TestService_Open(t *testing.T) {
	now := time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC)

	t.Run("locks principal and stores tier rate", func(t *testing.T) {
		repo := new(MockSavingsRepo)
		walletOp := new(MockWallet)
		svc := NewService(repo, walletOp, fixedClock(now))

		walletOp.On("Debit", mock.Anything, uint(7), 1000.0).Return(nil)
		repo.On("Create", mock.Anything).Return(nil)

		acc, err := svc.Open(context.Background(), 7, 1000, 6, models.TierPlus)
		require.NoError(t, err)

		assert.Equal(t, 0.12, acc.AnnualRate, "plus tier saves at 12%")
		assert.Equal(t, now.AddDate(0, 6, 0), acc.MaturityDate)
		repo.AssertExpectations(t)
		walletOp.AssertExpectations(t)
	})

	t.Run("rejects below minimum without touching the wallet", func(t *testing.T) {
		repo := new(MockSavingsRepo)
		walletOp := new(MockWallet)
		svc := NewService(repo, walletOp, fixedClock(now))

		_, err := svc.Open(context.Background(), 7, 499, 3, models.TierBasic)
		assert.ErrorIs(t, err, ErrBelowMinimumDeposit)
		walletOp.AssertNotCalled(t, "Debit", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("refunds principal when persistence fails", func(t *testing.T) {
		repo := new(MockSavingsRepo)
		walletOp := new(MockWallet)
		svc := NewService(repo, walletOp, fixedClock(now))

		walletOp.On("Debit", mock.Anything, uint(7), 1000.0).Return(nil)
		repo.On("Create", mock.Anything).Return(assert.AnError)
		walletOp.On("Credit", mock.Anything, uint(7), 1000.0).Return(nil)

		_, err := svc.Open(context.Background(), 7, 1000, 6, models.TierPlus)
		assert.Error(t, err)
		walletOp.AssertExpectations(t)
	})
}

func TestService_Withdraw(t *testing.T) {
	start := time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC)

	newAccount := func() *models.SavingsAccount {
		return &models.SavingsAccount{
			ID:               3,
			UserID:           7,
			Principal:        10000,
			AnnualRate:       0.12,
			LockPeriodMonths: 6,
			StartDate:        start,
			MaturityDate:     start.AddDate(0, 6, 0),
			Status:           models.SavingsStatusActive,
		}
	}

	t.Run("matured settlement credits full accrued value", func(t *testing.T) {
		repo := new(MockSavingsRepo)
		walletOp := new(MockWallet)
		svc := NewService(repo, walletOp, fixedClock(start.AddDate(0, 6, 0)))

		acc := newAccount()
		repo.On("ExecuteInTransaction", mock.Anything).Return(nil)
		repo.On("GetByID", uint(3)).Return(acc, nil)
		repo.On("Update", acc).Return(nil)
		walletOp.On("Credit", mock.Anything, uint(7), 10615.20).Return(nil)

		settlement, err := svc.Withdraw(context.Background(), 7, 3, false)
		require.NoError(t, err)

		assert.Equal(t, 10615.20, settlement.Payout)
		assert.Zero(t, settlement.Penalty)
		assert.Equal(t, models.SavingsStatusWithdrawn, acc.Status)
		walletOp.AssertExpectations(t)
	})

	t.Run("early settlement pays principal minus penalty", func(t *testing.T) {
		repo := new(MockSavingsRepo)
		walletOp := new(MockWallet)
		svc := NewService(repo, walletOp, fixedClock(start.AddDate(0, 3, 0)))

		acc := newAccount()
		repo.On("ExecuteInTransaction", mock.Anything).Return(nil)
		repo.On("GetByID", uint(3)).Return(acc, nil)
		repo.On("Update", acc).Return(nil)
		walletOp.On("Credit", mock.Anything, uint(7), 9500.0).Return(nil)

		settlement, err := svc.Withdraw(context.Background(), 7, 3, true)
		require.NoError(t, err)

		assert.Equal(t, 500.0, settlement.Penalty)
		assert.Equal(t, 9500.0, settlement.Payout)
	})

	t.Run("reopens the account when the payout credit fails", func(t *testing.T) {
		repo := new(MockSavingsRepo)
		walletOp := new(MockWallet)
		svc := NewService(repo, walletOp, fixedClock(start.AddDate(0, 6, 0)))

		acc := newAccount()
		repo.On("ExecuteInTransaction", mock.Anything).Return(nil)
		repo.On("GetByID", uint(3)).Return(acc, nil)
		repo.On("Update", acc).Return(nil)
		walletOp.On("Credit", mock.Anything, uint(7), 10615.20).Return(assert.AnError)

		_, err := svc.Withdraw(context.Background(), 7, 3, false)
		require.ErrorIs(t, err, assert.AnError)

		assert.Equal(t, models.SavingsStatusActive, acc.Status, "failed payout must leave the account active")
		repo.AssertNumberOfCalls(t, "Update", 2)
	})

	t.Run("rejects a foreign account", func(t *testing.T) {
		repo := new(MockSavingsRepo)
		walletOp := new(MockWallet)
		svc := NewService(repo, walletOp, fixedClock(start.AddDate(0, 6, 0)))

		repo.On("ExecuteInTransaction", mock.Anything).Return(nil)
		repo.On("GetByID", uint(3)).Return(newAccount(), nil)

		_, err := svc.Withdraw(context.Background(), 99, 3, false)
		assert.ErrorIs(t, err, ErrNotAccountOwner)
		walletOp.AssertNotCalled(t, "Credit", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestService_LoanEligibility(t *testing.T) {
	start := time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC)
	repo := new(MockSavingsRepo)
	walletOp := new(MockWallet)
	svc := NewService(repo, walletOp, fixedClock(start))

	acc := &models.SavingsAccount{
		ID:               3,
		UserID:           7,
		Principal:        10000,
		AnnualRate:       0.12,
		LockPeriodMonths: 12,
		StartDate:        start,
		MaturityDate:     start.AddDate(0, 12, 0),
		Status:           models.SavingsStatusActive,
	}
	repo.On("GetByID", uint(3)).Return(acc, nil)

	basic, err := svc.LoanEligibility(context.Background(), 7, 3, models.TierBasic)
	require.NoError(t, err)
	vip, err := svc.LoanEligibility(context.Background(), 7, 3, models.TierVIP)
	require.NoError(t, err)

	assert.Greater(t, vip, basic, "vip collateralizes a larger loan")
	assert.InDelta(t, 9999.0/1.10, basic, 0.011)
}
