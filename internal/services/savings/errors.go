package savings

import "errors"

// Engine errors
var (
	ErrBelowMinimumDeposit     = errors.New("principal is below the minimum deposit")
	ErrInvalidLockPeriod       = errors.New("lock period must be 1, 3, 6 or 12 months")
	ErrAccountNotMature        = errors.New("account has not reached maturity; early withdrawal must be explicit")
	ErrAccountAlreadyWithdrawn = errors.New("account has already been withdrawn")
	ErrAccountNotFound         = errors.New("savings account not found")
	ErrNotAccountOwner         = errors.New("savings account belongs to another user")
)
