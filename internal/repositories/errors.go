package repositories

import "errors"

var (
	ErrWalletNotFound         = errors.New("wallet not found")
	ErrUserNotFound           = errors.New("user not found")
	ErrSavingsAccountNotFound = errors.New("savings account not found")
	ErrTransactionNotFound    = errors.New("transaction not found")
	ErrDuplicateWallet        = errors.New("wallet already exists")
)
