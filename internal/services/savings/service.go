package savings

import (
	"context"
	"fmt"
	"time"

	"pochi/internal/models"
	"pochi/internal/repositories"
)

// WalletOperator is the slice of the wallet service used to move the
// principal and settlement amounts.
type WalletOperator interface {
	Credit(ctx context.Context, userID uint, amount float64) error
	Debit(ctx context.Context, userID uint, amount float64) error
}

// AccountView is an account with its engine-computed derived values.
type AccountView struct {
	Account      *models.SavingsAccount `json:"account"`
	CurrentValue float64                `json:"current_value"`
	Matured      bool                   `json:"matured"`
}

// Service persists what the pure engine computes: it owns the lifecycle
// of savings accounts and the wallet movements around them.
type Service interface {
	Open(ctx context.Context, userID uint, principal float64, lockPeriodMonths int, tier models.SubscriberTier) (*models.SavingsAccount, error)
	List(ctx context.Context, userID uint) ([]AccountView, error)
	Withdraw(ctx context.Context, userID, accountID uint, early bool) (Settlement, error)
	LoanEligibility(ctx context.Context, userID, accountID uint, tier models.SubscriberTier) (float64, error)
}

type service struct {
	repo   repositories.SavingsRepository
	wallet WalletOperator
	now    func() time.Time
}

// NewService creates a new savings service. The clock is injectable so
// maturity behavior is testable.
func NewService(repo repositories.SavingsRepository, wallet WalletOperator, now func() time.Time) Service {
	if repo == nil {
		panic("repo is required")
	}
	if wallet == nil {
		panic("wallet operator is required")
	}
	if now == nil {
		now = time.Now
	}

	return &service{
		repo:   repo,
		wallet: wallet,
		now:    now,
	}
}

// Open locks principal from the user's wallet into a new savings account.
// The annual rate is resolved from the tier right now and fixed on the
// account for its whole life.
func (s *service) Open(ctx context.Context, userID uint, principal float64, lockPeriodMonths int, tier models.SubscriberTier) (*models.SavingsAccount, error) {
	account, err := NewAccount(userID, principal, lockPeriodMonths, tier.SavingsRate(), s.now())
	if err != nil {
		return nil, err
	}

	if err := s.wallet.Debit(ctx, userID, principal); err != nil {
		return nil, fmt.Errorf("failed to lock principal: %w", err)
	}

	if err := s.repo.Create(account); err != nil {
		// put the principal back; the deposit never took effect
		if crErr := s.wallet.Credit(ctx, userID, principal); crErr != nil {
			return nil, fmt.Errorf("failed to create account and to refund principal: %v, %v", err, crErr)
		}
		return nil, err
	}

	return account, nil
}

func (s *service) List(ctx context.Context, userID uint) ([]AccountView, error) {
	accounts, err := s.repo.GetByUserID(userID)
	if err != nil {
		return nil, err
	}

	now := s.now()
	views := make([]AccountView, 0, len(accounts))
	for i := range accounts {
		acc := &accounts[i]
		views = append(views, AccountView{
			Account:      acc,
			CurrentValue: CurrentValue(acc, now),
			Matured:      acc.Matured(now),
		})
	}
	return views, nil
}

// Withdraw settles the account through the engine and credits the payout
// to the user's wallet. The status flip and the settlement are persisted
// in one database transaction; the wallet credit follows it, and a failed
// credit reopens the account so no payout is ever swallowed.
func (s *service) Withdraw(ctx context.Context, userID, accountID uint, early bool) (Settlement, error) {
	var settlement Settlement
	var account *models.SavingsAccount

	err := s.repo.ExecuteInTransaction(func(tx repositories.SavingsRepository) error {
		acc, err := tx.GetByID(accountID)
		if err != nil {
			if err == repositories.ErrSavingsAccountNotFound {
				return ErrAccountNotFound
			}
			return err
		}
		if acc.UserID != userID {
			return ErrNotAccountOwner
		}

		account = acc
		settlement, err = Withdraw(account, s.now(), early)
		if err != nil {
			return err
		}

		return tx.Update(account)
	})
	if err != nil {
		return Settlement{}, err
	}

	if settlement.Payout > 0 {
		if err := s.wallet.Credit(ctx, userID, settlement.Payout); err != nil {
			// the payout never reached the wallet; reopen the account
			account.Status = models.SavingsStatusActive
			if revErr := s.repo.Update(account); revErr != nil {
				return Settlement{}, fmt.Errorf("payout credit failed and withdrawal could not be reverted: %v, %v", err, revErr)
			}
			return Settlement{}, fmt.Errorf("payout credit failed, withdrawal reverted: %w", err)
		}
	}

	return settlement, nil
}

// LoanEligibility reports the maximum loan the account can collateralize
// at the tier's loan rate. Nothing is persisted; eligibility is derived
// on demand.
func (s *service) LoanEligibility(ctx context.Context, userID, accountID uint, tier models.SubscriberTier) (float64, error) {
	account, err := s.repo.GetByID(accountID)
	if err != nil {
		if err == repositories.ErrSavingsAccountNotFound {
			return 0, ErrAccountNotFound
		}
		return 0, err
	}
	if account.UserID != userID {
		return 0, ErrNotAccountOwner
	}

	return MaxLoan(account, tier.LoanRate(), s.now()), nil
}
