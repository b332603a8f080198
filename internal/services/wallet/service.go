package wallet

import (
	"context"
	"fmt"
	"time"

	"pochi/internal/models"
	"pochi/internal/repositories"

	"github.com/google/uuid"
)

const (
	DefaultCurrency             = "KES"
	DefaultMaxTransactionAmount = 500000.0
)

type service struct {
	repo   repositories.WalletRepository
	cache  CacheOperator
	quoter FeeQuoter
	config Config
}

// NewService creates a new wallet service.
func NewService(repo repositories.WalletRepository, cache CacheOperator, quoter FeeQuoter, config Config) Service {
	if repo == nil {
		panic("repo is required")
	}
	if cache == nil {
		panic("cache is required")
	}
	if quoter == nil {
		panic("fee quoter is required")
	}

	if config.Currency == "" {
		config.Currency = DefaultCurrency
	}
	if config.MaxTransactionAmount == 0 {
		config.MaxTransactionAmount = DefaultMaxTransactionAmount
	}

	return &service{
		repo:   repo,
		cache:  cache,
		quoter: quoter,
		config: config,
	}
}

func (s *service) GetWallet(ctx context.Context, userID uint) (*models.Wallet, error) {
	if wallet, err := s.cache.GetWallet(ctx, userID); err == nil {
		return wallet, nil
	}

	wallet, err := s.repo.GetByUserID(userID)
	if err != nil {
		if err == repositories.ErrWalletNotFound {
			return nil, ErrWalletNotFound
		}
		return nil, fmt.Errorf("failed to get wallet: %w", err)
	}

	s.cache.SetWallet(ctx, wallet)
	return wallet, nil
}

func (s *service) CreateWallet(ctx context.Context, userID uint) (*models.Wallet, error) {
	wallet := &models.Wallet{
		UserID:   userID,
		Balance:  0,
		Status:   "active",
		Currency: s.config.Currency,
	}

	if err := s.repo.Create(wallet); err != nil {
		return nil, fmt.Errorf("failed to create wallet: %w", err)
	}

	s.cache.SetWallet(ctx, wallet)
	return wallet, nil
}

// Deposit credits the wallet. Deposits are free, but the fee still goes
// through the engine so a pricing change cannot be silently bypassed.
func (s *service) Deposit(ctx context.Context, userID uint, amount float64, tier models.SubscriberTier) (*models.Transaction, error) {
	return s.apply(ctx, operation{
		category:   models.CategoryDeposit,
		senderID:   0,
		receiverID: userID,
		amount:     amount,
		tier:       tier,
	})
}

// Transfer moves funds between two users, charging the sender the
// bracketed peer-transfer fee.
func (s *service) Transfer(ctx context.Context, fromUserID, toUserID uint, amount float64, tier models.SubscriberTier) (*models.Transaction, error) {
	if fromUserID == toUserID {
		return nil, ErrSameWallet
	}
	return s.apply(ctx, operation{
		category:   models.CategoryPeerTransfer,
		senderID:   fromUserID,
		receiverID: toUserID,
		amount:     amount,
		tier:       tier,
	})
}

// Withdraw debits the wallet for a cash-out, charging the withdrawal fee.
func (s *service) Withdraw(ctx context.Context, userID uint, amount float64, tier models.SubscriberTier) (*models.Transaction, error) {
	return s.apply(ctx, operation{
		category:   models.CategoryWithdrawal,
		senderID:   userID,
		receiverID: 0,
		amount:     amount,
		tier:       tier,
	})
}

// Pay debits the wallet for a purchase: airtime, data bundles, merchant
// scans and scheduled payments all route through here with their own fee
// category.
func (s *service) Pay(ctx context.Context, userID uint, amount float64, category models.TransactionCategory, tier models.SubscriberTier) (*models.Transaction, error) {
	switch category {
	case models.CategoryAirtime, models.CategoryDataBundle,
		models.CategoryMerchantScan, models.CategoryScheduledPayment:
	default:
		return nil, fmt.Errorf("category %q is not payable through Pay", category)
	}
	return s.apply(ctx, operation{
		category:   category,
		senderID:   userID,
		receiverID: 0,
		amount:     amount,
		tier:       tier,
	})
}

func (s *service) GetTransactionHistory(ctx context.Context, userID uint, limit, offset int) ([]models.Transaction, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	return s.repo.GetTransactionHistory(ctx, userID, limit, offset)
}

func (s *service) Credit(ctx context.Context, userID uint, amount float64) error {
	if amount <= 0 {
		return ErrInvalidAmount
	}
	err := s.repo.ExecuteInTransaction(func(tx repositories.WalletRepository) error {
		wallet, err := tx.GetByUserID(userID)
		if err != nil {
			return err
		}
		if wallet.Status != "active" {
			return ErrWalletLocked
		}
		wallet.Balance += amount
		return tx.Update(wallet)
	})
	if err != nil {
		return err
	}
	return s.cache.InvalidateWallet(ctx, userID)
}

func (s *service) Debit(ctx context.Context, userID uint, amount float64) error {
	if amount <= 0 {
		return ErrInvalidAmount
	}
	err := s.repo.ExecuteInTransaction(func(tx repositories.WalletRepository) error {
		wallet, err := tx.GetByUserID(userID)
		if err != nil {
			return err
		}
		if wallet.Status != "active" {
			return ErrWalletLocked
		}
		if wallet.Balance < amount {
			return ErrInsufficientBalance
		}
		wallet.Balance -= amount
		return tx.Update(wallet)
	})
	if err != nil {
		return err
	}
	return s.cache.InvalidateWallet(ctx, userID)
}

// operation is one fee-bearing wallet movement.
type operation struct {
	category   models.TransactionCategory
	senderID   uint
	receiverID uint
	amount     float64
	tier       models.SubscriberTier
}

// apply computes the fee, validates balances, and persists the balance
// changes and ledger record in a single database transaction. The engine
// call happens first; a fee error aborts before anything is written.
func (s *service) apply(ctx context.Context, op operation) (*models.Transaction, error) {
	if op.amount <= 0 {
		return nil, ErrInvalidAmount
	}
	if op.amount > s.config.MaxTransactionAmount {
		return nil, fmt.Errorf("amount exceeds maximum of %v", s.config.MaxTransactionAmount)
	}

	breakdown, err := s.quoter.Quote(op.amount, op.category, op.tier)
	if err != nil {
		return nil, err
	}

	record := &models.Transaction{
		Reference:  fmt.Sprintf("TX-%d-%s", time.Now().Unix(), uuid.NewString()[:8]),
		Category:   op.category,
		SenderID:   op.senderID,
		ReceiverID: op.receiverID,
		Amount:     op.amount,
		Fee:        breakdown.Fee,
		Status:     models.TransactionStatusPending,
		Currency:   s.config.Currency,
		Metadata: models.Metadata{
			"base_fee":      breakdown.BaseFee,
			"discount_rate": breakdown.DiscountRate,
			"tier":          string(op.tier),
		},
	}

	err = s.repo.ExecuteInTransaction(func(tx repositories.WalletRepository) error {
		if op.senderID != 0 {
			sender, err := tx.GetByUserID(op.senderID)
			if err != nil {
				return err
			}
			if sender.Status != "active" {
				return ErrWalletLocked
			}
			if sender.Balance < op.amount+breakdown.Fee {
				return ErrInsufficientBalance
			}
			sender.Balance -= op.amount + breakdown.Fee
			if err := tx.Update(sender); err != nil {
				return err
			}
		}

		if op.receiverID != 0 {
			receiver, err := tx.GetByUserID(op.receiverID)
			if err != nil {
				return err
			}
			if receiver.Status != "active" {
				return ErrWalletLocked
			}
			receiver.Balance += op.amount
			if op.senderID == 0 && breakdown.Fee > 0 {
				// deposit-style flows take the fee off the credited amount
				receiver.Balance -= breakdown.Fee
			}
			if err := tx.Update(receiver); err != nil {
				return err
			}
		}

		record.Status = models.TransactionStatusCompleted
		return tx.CreateTransaction(record)
	})
	if err != nil {
		return nil, err
	}

	if op.senderID != 0 {
		s.cache.InvalidateWallet(ctx, op.senderID)
	}
	if op.receiverID != 0 {
		s.cache.InvalidateWallet(ctx, op.receiverID)
	}

	return record, nil
}
