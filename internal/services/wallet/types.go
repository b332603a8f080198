package wallet

import (
	"context"

	"pochi/internal/models"
	"pochi/internal/services/fees"
)

// Service is the wallet operations surface consumed by handlers. Every
// money movement computes its fee through the fee engine and applies the
// balance change, the fee and the ledger record in one database
// transaction.
type Service interface {
	GetWallet(ctx context.Context, userID uint) (*models.Wallet, error)
	CreateWallet(ctx context.Context, userID uint) (*models.Wallet, error)

	Deposit(ctx context.Context, userID uint, amount float64, tier models.SubscriberTier) (*models.Transaction, error)
	Transfer(ctx context.Context, fromUserID, toUserID uint, amount float64, tier models.SubscriberTier) (*models.Transaction, error)
	Withdraw(ctx context.Context, userID uint, amount float64, tier models.SubscriberTier) (*models.Transaction, error)
	Pay(ctx context.Context, userID uint, amount float64, category models.TransactionCategory, tier models.SubscriberTier) (*models.Transaction, error)

	GetTransactionHistory(ctx context.Context, userID uint, limit, offset int) ([]models.Transaction, error)

	// Credit and Debit are balance primitives used by sibling services
	// (savings settlements, loan disbursements); they bypass fees.
	Credit(ctx context.Context, userID uint, amount float64) error
	Debit(ctx context.Context, userID uint, amount float64) error
}

// FeeQuoter is the slice of the fee engine the wallet service needs.
type FeeQuoter interface {
	Quote(amount float64, category models.TransactionCategory, tier models.SubscriberTier) (*fees.Breakdown, error)
}

// CacheOperator defines the caching operations the service uses for hot
// wallet reads.
type CacheOperator interface {
	GetWallet(ctx context.Context, userID uint) (*models.Wallet, error)
	SetWallet(ctx context.Context, wallet *models.Wallet) error
	InvalidateWallet(ctx context.Context, userID uint) error
}

// Config holds wallet service configuration.
type Config struct {
	Currency             string
	MaxTransactionAmount float64
}
