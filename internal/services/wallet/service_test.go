package wallet

import (
	"context"
	"testing"

	"pochi/internal/models"
	"pochi/internal/repositories"
	"pochi/internal/services/fees"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockWalletRepo struct {
	mock.Mock
	wallets map[uint]*models.Wallet
	ledger  []*models.Transaction
}

func newMockRepo(wallets ...*models.Wallet) *MockWalletRepo {
	repo := &MockWalletRepo{wallets: map[uint]*models.Wallet{}}
	for _, w := range wallets {
		repo.wallets[w.UserID] = w
	}
	return repo
}

func (m *MockWalletRepo) Create(wallet *models.Wallet) error {
	m.wallets[wallet.UserID] = wallet
	return nil
}

func (m *MockWalletRepo) GetByID(id uint) (*models.Wallet, error) {
	for _, w := range m.wallets {
		if w.ID == id {
			return w, nil
		}
	}
	return nil, repositories.ErrWalletNotFound
}

func (m *MockWalletRepo) GetByUserID(userID uint) (*models.Wallet, error) {
	if w, ok := m.wallets[userID]; ok {
		return w, nil
	}
	return nil, repositories.ErrWalletNotFound
}

func (m *MockWalletRepo) Update(wallet *models.Wallet) error {
	m.wallets[wallet.UserID] = wallet
	return nil
}

func (m *MockWalletRepo) CreateTransaction(tx *models.Transaction) error {
	m.ledger = append(m.ledger, tx)
	return nil
}

func (m *MockWalletRepo) GetTransactionHistory(ctx context.Context, userID uint, limit, offset int) ([]models.Transaction, error) {
	var out []models.Transaction
	for _, tx := range m.ledger {
		if tx.SenderID == userID || tx.ReceiverID == userID {
			out = append(out, *tx)
		}
	}
	return out, nil
}

func (m *MockWalletRepo) ExecuteInTransaction(fn func(repositories.WalletRepository) error) error {
	return fn(m)
}

type MockCache struct {
	mock.Mock
}

func (m *MockCache) GetWallet(ctx context.Context, userID uint) (*models.Wallet, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Wallet), args.Error(1)
}

func (m *MockCache) SetWallet(ctx context.Context, wallet *models.Wallet) error {
	args := m.Called(ctx, wallet)
	return args.Error(0)
}

func (m *MockCache) InvalidateWallet(ctx context.Context, userID uint) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

func permissiveCache() *MockCache {
	cache := new(MockCache)
	cache.On("GetWallet", mock.Anything, mock.Anything).Return(nil, assert.AnError)
	cache.On("SetWallet", mock.Anything, mock.Anything).Return(nil)
	cache.On("InvalidateWallet", mock.Anything, mock.Anything).Return(nil)
	return cache
}

func newTestService(repo *MockWalletRepo) Service {
	return NewService(repo, permissiveCache(), fees.NewCalculator(), Config{})
}

func TestTransfer_AppliesBracketFee(t *testing.T) {
	repo := newMockRepo(
		&models.Wallet{ID: 1, UserID: 1, Balance: 2000, Status: "active"},
		&models.Wallet{ID: 2, UserID: 2, Balance: 0, Status: "active"},
	)
	svc := newTestService(repo)

	// 1000 in the 500.01-1000 bracket: base fee 14 for basic tier
	tx, err := svc.Transfer(context.Background(), 1, 2, 1000, models.TierBasic)
	require.NoError(t, err)

	assert.Equal(t, 14.0, tx.Fee)
	assert.Equal(t, models.TransactionStatusCompleted, tx.Status)
	assert.Equal(t, 2000-1000-14.0, repo.wallets[1].Balance)
	assert.Equal(t, 1000.0, repo.wallets[2].Balance)
	require.Len(t, repo.ledger, 1)
}

func TestTransfer_VIPPaysHalfTheFee(t *testing.T) {
	repo := newMockRepo(
		&models.Wallet{ID: 1, UserID: 1, Balance: 2000, Status: "active"},
		&models.Wallet{ID: 2, UserID: 2, Balance: 0, Status: "active"},
	)
	svc := newTestService(repo)

	tx, err := svc.Transfer(context.Background(), 1, 2, 1000, models.TierVIP)
	require.NoError(t, err)
	assert.Equal(t, 7.0, tx.Fee)
}

func TestTransfer_InsufficientForAmountPlusFee(t *testing.T) {
	repo := newMockRepo(
		&models.Wallet{ID: 1, UserID: 1, Balance: 1010, Status: "active"},
		&models.Wallet{ID: 2, UserID: 2, Balance: 0, Status: "active"},
	)
	svc := newTestService(repo)

	// balance covers the amount but not amount + 14 fee
	_, err := svc.Transfer(context.Background(), 1, 2, 1000, models.TierBasic)
	assert.ErrorIs(t, err, ErrInsufficientBalance)
	assert.Equal(t, 1010.0, repo.wallets[1].Balance, "failed transfer must not move money")
	assert.Empty(t, repo.ledger)
}

func TestTransfer_ToSelf(t *testing.T) {
	repo := newMockRepo(&models.Wallet{ID: 1, UserID: 1, Balance: 500, Status: "active"})
	svc := newTestService(repo)

	_, err := svc.Transfer(context.Background(), 1, 1, 100, models.TierBasic)
	assert.ErrorIs(t, err, ErrSameWallet)
}

func TestWithdraw_FeeDiscountedByTier(t *testing.T) {
	tests := []struct {
		name    string
		tier    models.SubscriberTier
		wantFee float64
	}{
		{"basic pays full withdrawal fee", models.TierBasic, 35},
		{"plus gets thirty percent off", models.TierPlus, 24.5},
		{"vip gets sixty percent off", models.TierVIP, 14},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newMockRepo(&models.Wallet{ID: 1, UserID: 1, Balance: 5000, Status: "active"})
			svc := newTestService(repo)

			tx, err := svc.Withdraw(context.Background(), 1, 1000, tt.tier)
			require.NoError(t, err)

			assert.Equal(t, tt.wantFee, tx.Fee)
			assert.Equal(t, 5000-1000-tt.wantFee, repo.wallets[1].Balance)
		})
	}
}

func TestDeposit_IsFree(t *testing.T) {
	repo := newMockRepo(&models.Wallet{ID: 1, UserID: 1, Balance: 0, Status: "active"})
	svc := newTestService(repo)

	tx, err := svc.Deposit(context.Background(), 1, 3000, models.TierBasic)
	require.NoError(t, err)

	assert.Zero(t, tx.Fee)
	assert.Equal(t, 3000.0, repo.wallets[1].Balance)
}

func TestPay_ScheduledPaymentFreeForVIP(t *testing.T) {
	repo := newMockRepo(&models.Wallet{ID: 1, UserID: 1, Balance: 5000, Status: "active"})
	svc := newTestService(repo)

	tx, err := svc.Pay(context.Background(), 1, 2000, models.CategoryScheduledPayment, models.TierVIP)
	require.NoError(t, err)

	assert.Zero(t, tx.Fee)
	assert.Equal(t, 3000.0, repo.wallets[1].Balance)
}

func TestPay_RejectsNonPayableCategory(t *testing.T) {
	repo := newMockRepo(&models.Wallet{ID: 1, UserID: 1, Balance: 5000, Status: "active"})
	svc := newTestService(repo)

	_, err := svc.Pay(context.Background(), 1, 100, models.CategoryPeerTransfer, models.TierBasic)
	assert.Error(t, err)
}

func TestApply_LockedWalletRejected(t *testing.T) {
	repo := newMockRepo(&models.Wallet{ID: 1, UserID: 1, Balance: 5000, Status: "locked"})
	svc := newTestService(repo)

	_, err := svc.Withdraw(context.Background(), 1, 100, models.TierBasic)
	assert.ErrorIs(t, err, ErrWalletLocked)
}

func TestApply_InvalidAmount(t *testing.T) {
	repo := newMockRepo(&models.Wallet{ID: 1, UserID: 1, Balance: 5000, Status: "active"})
	svc := newTestService(repo)

	_, err := svc.Withdraw(context.Background(), 1, 0, models.TierBasic)
	assert.ErrorIs(t, err, ErrInvalidAmount)

	_, err = svc.Transfer(context.Background(), 1, 2, -10, models.TierBasic)
	assert.ErrorIs(t, err, ErrInvalidAmount)
}
