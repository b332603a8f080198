package repositories

import (
	"fmt"

	"pochi/internal/models"

	"gorm.io/gorm"
)

// SavingsRepository defines savings-account database operations.
// Accounts are never deleted; a withdrawn account remains as history.
type SavingsRepository interface {
	Create(account *models.SavingsAccount) error
	GetByID(id uint) (*models.SavingsAccount, error)
	GetByUserID(userID uint) ([]models.SavingsAccount, error)
	Update(account *models.SavingsAccount) error
	ExecuteInTransaction(fn func(SavingsRepository) error) error
}

type savingsRepository struct {
	db *gorm.DB
}

func NewSavingsRepository(db *gorm.DB) SavingsRepository {
	return &savingsRepository{db: db}
}

func (r *savingsRepository) Create(account *models.SavingsAccount) error {
	if err := r.db.Create(account).Error; err != nil {
		return fmt.Errorf("failed to create savings account: %w", err)
	}
	return nil
}

func (r *savingsRepository) GetByID(id uint) (*models.SavingsAccount, error) {
	var account models.SavingsAccount
	if err := r.db.First(&account, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrSavingsAccountNotFound
		}
		return nil, fmt.Errorf("failed to get savings account: %w", err)
	}
	return &account, nil
}

func (r *savingsRepository) GetByUserID(userID uint) ([]models.SavingsAccount, error) {
	var accounts []models.SavingsAccount
	err := r.db.Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&accounts).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list savings accounts: %w", err)
	}
	return accounts, nil
}

func (r *savingsRepository) Update(account *models.SavingsAccount) error {
	if err := r.db.Save(account).Error; err != nil {
		return fmt.Errorf("failed to update savings account: %w", err)
	}
	return nil
}

func (r *savingsRepository) ExecuteInTransaction(fn func(SavingsRepository) error) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		return fn(&savingsRepository{db: tx})
	})
}
