package repositories

import (
	"context"

	"pochi/internal/models"
)

// WalletRepository defines wallet-related database operations. The
// ExecuteInTransaction hook is how callers keep a fee computation, the
// balance mutation and the ledger record inside one database transaction.
type WalletRepository interface {
	Create(wallet *models.Wallet) error
	GetByID(id uint) (*models.Wallet, error)
	GetByUserID(userID uint) (*models.Wallet, error)
	Update(wallet *models.Wallet) error

	CreateTransaction(tx *models.Transaction) error
	GetTransactionHistory(ctx context.Context, userID uint, limit, offset int) ([]models.Transaction, error)

	ExecuteInTransaction(fn func(WalletRepository) error) error
}
